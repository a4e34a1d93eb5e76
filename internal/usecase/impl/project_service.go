package impl

import (
	"context"
	"log/slog"

	deliverycontext "ethos/internal/delivery/context"
	"ethos/internal/domain/entity"
	domainerrors "ethos/internal/domain/errors"
	"ethos/internal/domain/repository"
	"ethos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type projectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// ProjectServiceParams holds dependencies for ProjectService, injected by Fx.
type ProjectServiceParams struct {
	fx.In

	ProjectRepo repository.ProjectRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

func NewProjectService(params ProjectServiceParams) usecase.ProjectUsecase {
	return &projectService{
		projectRepo: params.ProjectRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

func (srv *projectService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *projectService) CreateProject(ctx context.Context, input *usecase.CreateProjectInput) (*entity.Project, error) {
	if _, err := srv.userRepo.FindByID(ctx, input.UserID); err != nil {
		return nil, errors.Wrap(err, "failed to find project owner")
	}

	project, err := entity.NewProject(input.Name, input.Description, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := srv.projectRepo.Create(ctx, project); err != nil {
		return nil, errors.Wrap(err, "failed to create project")
	}

	srv.log(ctx).Info("Project created",
		slog.String("projectID", project.ID.String()),
		slog.String("userID", input.UserID.String()),
	)

	return project, nil
}

func (srv *projectService) GetProject(ctx context.Context, id, userID uuid.UUID) (*entity.Project, error) {
	return srv.findOwned(ctx, id, userID)
}

func (srv *projectService) ListProjects(ctx context.Context, userID uuid.UUID) ([]*entity.Project, error) {
	projects, err := srv.projectRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	return projects, nil
}

func (srv *projectService) UpdateProject(ctx context.Context, input *usecase.UpdateProjectInput) (*entity.Project, error) {
	if input.Name == nil && input.Description == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one field must be provided")
	}

	project, err := srv.findOwned(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	name := project.Name
	if input.Name != nil {
		name = *input.Name
	}
	description := project.Description
	if input.Description != nil {
		description = input.Description
	}

	if err := project.Update(name, description); err != nil {
		return nil, err
	}

	if err := srv.projectRepo.Update(ctx, project); err != nil {
		return nil, errors.Wrap(err, "failed to update project")
	}

	return project, nil
}

func (srv *projectService) DeleteProject(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := srv.findOwned(ctx, id, userID); err != nil {
		return err
	}

	deleted, err := srv.projectRepo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete project")
	}
	if !deleted {
		return domainerrors.ErrProjectNotFound
	}

	srv.log(ctx).Info("Project deleted", slog.String("projectID", id.String()))

	return nil
}

// findOwned loads a project and checks that userID owns it.
func (srv *projectService) findOwned(ctx context.Context, id, userID uuid.UUID) (*entity.Project, error) {
	project, err := srv.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find project")
	}

	if !project.BelongsTo(userID) {
		srv.log(ctx).Warn("Project access denied",
			slog.String("projectID", id.String()),
			slog.String("userID", userID.String()),
		)

		return nil, domainerrors.ErrProjectOwnershipViolation
	}

	return project, nil
}
