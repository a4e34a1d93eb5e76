package handler

import (
	"net/http"
	"testing"

	"ethos/internal/domain/entity"
	domainerrors "ethos/internal/domain/errors"
	mockUC "ethos/internal/mocks/usecase"
	"ethos/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserHandler(t *testing.T) (*UserHandler, *mockUC.MockUserUsecase) {
	userUC := mockUC.NewMockUserUsecase(t)

	return NewUserHandler(UserHandlerParams{UserUC: userUC}), userUC
}

func TestUserHandler_CreateUser(t *testing.T) {
	h, userUC := newUserHandler(t)

	user := &entity.User{ID: uuid.New(), Email: "grace@example.com", Name: "Grace"}
	userUC.EXPECT().
		CreateUser(mock.Anything, &usecase.CreateUserInput{Name: "Grace", Email: "grace@example.com", Password: "compilers"}).
		Return(user, nil)

	c, rec := newRequest(http.MethodPost, "/api/users",
		`{"name":"Grace","email":"grace@example.com","password":"compilers"}`, uuid.New())

	require.NoError(t, h.CreateUser(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body UserResponse
	decode(t, rec, &body)
	assert.Equal(t, user.ID, body.ID)
}

func TestUserHandler_ListUsers(t *testing.T) {
	h, userUC := newUserHandler(t)

	userUC.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	c, rec := newRequest(http.MethodGet, "/api/users", "", uuid.New())

	require.NoError(t, h.ListUsers(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body []UserResponse
	decode(t, rec, &body)
	assert.Len(t, body, 2)
}

func TestUserHandler_ListUsers_EmptyIsArray(t *testing.T) {
	h, userUC := newUserHandler(t)

	userUC.EXPECT().ListUsers(mock.Anything).Return(nil, nil)

	c, rec := newRequest(http.MethodGet, "/api/users", "", uuid.New())

	require.NoError(t, h.ListUsers(c))
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestUserHandler_GetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, userUC := newUserHandler(t)

		id := uuid.New()
		userUC.EXPECT().GetUser(mock.Anything, id).Return(&entity.User{ID: id}, nil)

		c, rec := newRequest(http.MethodGet, "/api/users/"+id.String(), "", uuid.New())

		require.NoError(t, h.GetUser(withID(c, id.String())))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		h, userUC := newUserHandler(t)

		id := uuid.New()
		userUC.EXPECT().GetUser(mock.Anything, id).Return(nil, domainerrors.ErrUserNotFound)

		c, rec := newRequest(http.MethodGet, "/api/users/"+id.String(), "", uuid.New())

		require.NoError(t, h.GetUser(withID(c, id.String())))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "USER_NOT_FOUND", decode(t, rec, nil).Error.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		h, _ := newUserHandler(t)

		c, rec := newRequest(http.MethodGet, "/api/users/abc", "", uuid.New())

		require.NoError(t, h.GetUser(withID(c, "abc")))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec, nil).Error.Code)
	})
}

func TestUserHandler_UpdateUser(t *testing.T) {
	h, userUC := newUserHandler(t)

	id := uuid.New()
	userUC.EXPECT().
		UpdateUser(mock.Anything, mock.MatchedBy(func(in *usecase.UpdateUserInput) bool {
			return in.ID == id && in.Name != nil && *in.Name == "Admiral" && in.Password == nil
		})).
		Return(&entity.User{ID: id, Name: "Admiral"}, nil)

	c, rec := newRequest(http.MethodPut, "/api/users/"+id.String(), `{"name":"Admiral"}`, uuid.New())

	require.NoError(t, h.UpdateUser(withID(c, id.String())))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_UpdateUser_RequiresAField(t *testing.T) {
	h, _ := newUserHandler(t)

	id := uuid.New()
	c, rec := newRequest(http.MethodPut, "/api/users/"+id.String(), `{}`, uuid.New())

	require.NoError(t, h.UpdateUser(withID(c, id.String())))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec, nil).Error.Code)
}

func TestUserHandler_DeleteUser(t *testing.T) {
	h, userUC := newUserHandler(t)

	id := uuid.New()
	userUC.EXPECT().DeleteUser(mock.Anything, id).Return(nil)

	c, rec := newRequest(http.MethodDelete, "/api/users/"+id.String(), "", uuid.New())

	require.NoError(t, h.DeleteUser(withID(c, id.String())))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
