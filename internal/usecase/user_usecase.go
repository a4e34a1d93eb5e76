package usecase

import (
	"context"

	"ethos/internal/domain/entity"

	"github.com/google/uuid"
)

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateUserInput changes only the non-nil fields.
type UpdateUserInput struct {
	ID       uuid.UUID
	Name     *string
	Password *string
}

// UserUsecase manages user accounts.
type UserUsecase interface {
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	UpdateUser(ctx context.Context, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
