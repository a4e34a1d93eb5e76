// Package usecase declares the application operations and their DTOs.
// Implementations live in usecase/impl.
package usecase

import (
	"context"

	"ethos/internal/domain/entity"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthOutput is returned by both Register and Login.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase signs users up and in.
type AuthUsecase interface {
	// Register creates an account and issues a token for it.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login checks the credentials and issues a token. Unknown email and wrong
	// password both fail with ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
