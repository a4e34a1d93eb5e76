package usecase

import (
	"context"

	"ethos/internal/domain/entity"

	"github.com/google/uuid"
)

type CreateProjectInput struct {
	UserID      uuid.UUID
	Name        string
	Description *string
}

// UpdateProjectInput changes only the non-nil fields; at least one is required.
// An empty Description clears it.
type UpdateProjectInput struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        *string
	Description *string
}

// ProjectUsecase manages projects on behalf of their owner. Every operation that
// addresses a single project fails with ErrProjectOwnershipViolation when userID
// is not the owner.
type ProjectUsecase interface {
	CreateProject(ctx context.Context, input *CreateProjectInput) (*entity.Project, error)
	GetProject(ctx context.Context, id, userID uuid.UUID) (*entity.Project, error)
	ListProjects(ctx context.Context, userID uuid.UUID) ([]*entity.Project, error)
	UpdateProject(ctx context.Context, input *UpdateProjectInput) (*entity.Project, error)
	DeleteProject(ctx context.Context, id, userID uuid.UUID) error
}
