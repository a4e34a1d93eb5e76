package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "ethos/internal/domain/errors"
	"ethos/internal/domain/service"
	mockSvc "ethos/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, newDiscardLogger())

	userID := uuid.New()
	tokenSvc.EXPECT().VerifyToken("good.token").Return(&service.Claims{UserID: userID.String(), Email: "ada@example.com"}, nil)

	c, rec := newContext("Bearer good.token")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	gotID, ok := GetUserID(c)
	require.True(t, ok)
	assert.Equal(t, userID, gotID)

	email, ok := GetEmail(c)
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", email)
}

func TestAuthMiddleware_Authenticate_Rejections(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		verifyErr     error
		claims        *service.Claims
		wantCode      string
	}{
		{name: "missing header", wantCode: "MISSING_TOKEN"},
		{name: "wrong scheme", authorization: "Basic YWxhZGRpbjpvcGVu", wantCode: "MISSING_TOKEN"},
		{name: "empty bearer", authorization: "Bearer   ", wantCode: "MISSING_TOKEN"},
		{name: "expired", authorization: "Bearer old", verifyErr: domainerrors.TokenExpired(nil), wantCode: "TOKEN_EXPIRED"},
		{name: "invalid", authorization: "Bearer forged", verifyErr: domainerrors.TokenInvalid(nil), wantCode: "TOKEN_INVALID"},
		{name: "non uuid subject", authorization: "Bearer odd", claims: &service.Claims{UserID: "42"}, wantCode: "TOKEN_INVALID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			m := NewAuthMiddleware(tokenSvc, newDiscardLogger())

			if tt.verifyErr != nil || tt.claims != nil {
				tokenSvc.EXPECT().VerifyToken(mockTokenOf(tt.authorization)).Return(tt.claims, tt.verifyErr)
			}

			c, rec := newContext(tt.authorization)

			require.NoError(t, m.Authenticate(okHandler)(c))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, rec))

			_, ok := GetUserID(c)
			assert.False(t, ok)
		})
	}
}

func mockTokenOf(authorization string) string {
	return authorization[len(bearerPrefix):]
}

func TestAuthMiddleware_Authenticate_CaseInsensitiveScheme(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, newDiscardLogger())

	tokenSvc.EXPECT().VerifyToken("tok").Return(&service.Claims{UserID: uuid.NewString()}, nil)

	c, rec := newContext("bearer tok")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Identify(t *testing.T) {
	t.Run("valid token sets identity", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		m := NewAuthMiddleware(tokenSvc, newDiscardLogger())

		userID := uuid.New()
		tokenSvc.EXPECT().VerifyToken("tok").Return(&service.Claims{UserID: userID.String()}, nil)

		c, rec := newContext("Bearer tok")

		require.NoError(t, m.Identify(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		gotID, ok := GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, userID, gotID)
	})

	t.Run("invalid token passes through anonymously", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		m := NewAuthMiddleware(tokenSvc, newDiscardLogger())

		tokenSvc.EXPECT().VerifyToken("tok").Return(nil, domainerrors.TokenInvalid(nil))

		c, rec := newContext("Bearer tok")

		require.NoError(t, m.Identify(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		_, ok := GetUserID(c)
		assert.False(t, ok)
	})

	t.Run("no header", func(t *testing.T) {
		m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), newDiscardLogger())

		c, rec := newContext("")

		require.NoError(t, m.Identify(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
