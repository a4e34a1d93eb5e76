// Package repository declares the persistence ports used by the use cases.
// Implementations return domainerrors.ErrUserNotFound / ErrProjectNotFound for missing rows.
package repository

import (
	"context"

	"ethos/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository persists users. Soft-deleted users are invisible to every method.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll returns every live user, newest first.
	FindAll(ctx context.Context) ([]*entity.User, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error

	// Delete soft-deletes the user and reports whether a live user was found.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
