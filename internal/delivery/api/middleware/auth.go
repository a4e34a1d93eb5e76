package middleware

import (
	"log/slog"
	"strings"

	"ethos/internal/delivery/api/response"
	domainerrors "ethos/internal/domain/errors"
	"ethos/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyEmail  = "email"

	bearerPrefix = "Bearer "
)

// AuthMiddleware resolves the caller from a Bearer token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Identify stores the caller's identity when a valid token is present and never rejects.
// It runs ahead of the rate limiter so authenticated callers are limited per user.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token, ok := bearerToken(c); ok {
			if userID, email, err := m.verify(token); err == nil {
				SetIdentity(c, userID, email)
			}
		}

		return next(c)
	}
}

// Authenticate rejects requests without a valid token with 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrMissingToken)
		}

		userID, email, err := m.verify(token)
		if err != nil {
			m.logger.Debug("Token rejected",
				slog.String("kind", domainerrors.KindOf(err).String()),
				slog.String("path", c.Request().URL.Path),
			)

			return response.HandleAppError(c, err)
		}

		SetIdentity(c, userID, email)

		return next(c)
	}
}

func (m *AuthMiddleware) verify(token string) (uuid.UUID, string, error) {
	claims, err := m.tokenSvc.VerifyToken(token)
	if err != nil {
		return uuid.Nil, "", err
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, "", domainerrors.TokenInvalid(err)
	}

	return userID, claims.Email, nil
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}

// SetIdentity records the authenticated caller on c.
func SetIdentity(c echo.Context, userID uuid.UUID, email string) {
	c.Set(contextKeyUserID, userID)
	c.Set(contextKeyEmail, email)
}

// GetUserID returns the authenticated user's ID set by Identify or Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetEmail returns the authenticated user's email.
func GetEmail(c echo.Context) (string, bool) {
	email, ok := c.Get(contextKeyEmail).(string)

	return email, ok
}
