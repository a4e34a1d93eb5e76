package repository

import (
	"context"

	"ethos/internal/domain/entity"

	"github.com/google/uuid"
)

// ProjectRepository persists projects.
type ProjectRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// FindByUserID returns the projects owned by userID, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Project, error)
	FindAll(ctx context.Context) ([]*entity.Project, error)
	Create(ctx context.Context, project *entity.Project) error
	Update(ctx context.Context, project *entity.Project) error

	// Delete removes the project and reports whether it existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
