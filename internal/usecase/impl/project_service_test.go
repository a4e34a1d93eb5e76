package impl

import (
	"context"
	"testing"

	"ethos/internal/domain/entity"
	domainerrors "ethos/internal/domain/errors"
	mockRepo "ethos/internal/mocks/repository"
	"ethos/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type projectServiceFixtures struct {
	service     usecase.ProjectUsecase
	projectRepo *mockRepo.MockProjectRepository
	userRepo    *mockRepo.MockUserRepository
}

func createTestProjectService(t *testing.T) projectServiceFixtures {
	projectRepo := mockRepo.NewMockProjectRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	srv := NewProjectService(ProjectServiceParams{
		ProjectRepo: projectRepo,
		UserRepo:    userRepo,
		Logger:      newDiscardLogger(),
	})

	return projectServiceFixtures{
		service:     srv,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

func TestProjectService_CreateProject(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, ownerID).Return(&entity.User{ID: ownerID}, nil)
	fx.projectRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Project) bool {
			return p.UserID == ownerID && p.Name == "Apollo" && p.Description == nil
		})).
		Return(nil)

	project, err := fx.service.CreateProject(ctx, &usecase.CreateProjectInput{
		UserID:      ownerID,
		Name:        " Apollo ",
		Description: strPtr("  "),
	})

	require.NoError(t, err)
	assert.Equal(t, "Apollo", project.Name)
}

func TestProjectService_CreateProject_UnknownOwner(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, ownerID).Return(nil, domainerrors.ErrUserNotFound)

	_, err := fx.service.CreateProject(ctx, &usecase.CreateProjectInput{UserID: ownerID, Name: "Apollo"})

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProjectService_CreateProject_BlankName(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, ownerID).Return(&entity.User{ID: ownerID}, nil)

	_, err := fx.service.CreateProject(ctx, &usecase.CreateProjectInput{UserID: ownerID, Name: ""})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProjectService_GetProject_Ownership(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	project := &entity.Project{ID: uuid.New(), Name: "Apollo", UserID: ownerID}

	t.Run("owner", func(t *testing.T) {
		fx := createTestProjectService(t)
		fx.projectRepo.EXPECT().FindByID(ctx, project.ID).Return(project, nil)

		got, err := fx.service.GetProject(ctx, project.ID, ownerID)

		require.NoError(t, err)
		assert.Same(t, project, got)
	})

	t.Run("stranger", func(t *testing.T) {
		fx := createTestProjectService(t)
		fx.projectRepo.EXPECT().FindByID(ctx, project.ID).Return(project, nil)

		got, err := fx.service.GetProject(ctx, project.ID, uuid.New())

		require.ErrorIs(t, err, domainerrors.ErrProjectOwnershipViolation)
		assert.Nil(t, got)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestProjectService(t)
		fx.projectRepo.EXPECT().FindByID(ctx, project.ID).Return(nil, domainerrors.ErrProjectNotFound)

		_, err := fx.service.GetProject(ctx, project.ID, ownerID)

		require.ErrorIs(t, err, domainerrors.ErrProjectNotFound)
	})
}

func TestProjectService_ListProjects(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.projectRepo.EXPECT().FindByUserID(ctx, ownerID).Return([]*entity.Project{{ID: uuid.New(), UserID: ownerID}}, nil)

	projects, err := fx.service.ListProjects(ctx, ownerID)

	require.NoError(t, err)
	assert.Len(t, projects, 1)
}

func TestProjectService_UpdateProject(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	project := &entity.Project{ID: uuid.New(), Name: "Apollo", Description: strPtr("moon"), UserID: ownerID}

	fx.projectRepo.EXPECT().FindByID(ctx, project.ID).Return(project, nil)
	fx.projectRepo.EXPECT().Update(ctx, project).Return(nil)

	got, err := fx.service.UpdateProject(ctx, &usecase.UpdateProjectInput{
		ID:     project.ID,
		UserID: ownerID,
		Name:   strPtr("Artemis"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Artemis", got.Name)
	require.NotNil(t, got.Description)
	assert.Equal(t, "moon", *got.Description)
}

func TestProjectService_UpdateProject_ClearsDescription(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	project := &entity.Project{ID: uuid.New(), Name: "Apollo", Description: strPtr("moon"), UserID: ownerID}

	fx.projectRepo.EXPECT().FindByID(ctx, project.ID).Return(project, nil)
	fx.projectRepo.EXPECT().Update(ctx, project).Return(nil)

	got, err := fx.service.UpdateProject(ctx, &usecase.UpdateProjectInput{
		ID:          project.ID,
		UserID:      ownerID,
		Description: strPtr(""),
	})

	require.NoError(t, err)
	assert.Nil(t, got.Description)
	assert.Equal(t, "Apollo", got.Name)
}

func TestProjectService_UpdateProject_NoFields(t *testing.T) {
	fx := createTestProjectService(t)

	_, err := fx.service.UpdateProject(context.Background(), &usecase.UpdateProjectInput{
		ID:     uuid.New(),
		UserID: uuid.New(),
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProjectService_UpdateProject_Stranger(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	project := &entity.Project{ID: uuid.New(), Name: "Apollo", UserID: uuid.New()}

	fx.projectRepo.EXPECT().FindByID(ctx, project.ID).Return(project, nil)

	_, err := fx.service.UpdateProject(ctx, &usecase.UpdateProjectInput{
		ID:     project.ID,
		UserID: uuid.New(),
		Name:   strPtr("Hijacked"),
	})

	require.ErrorIs(t, err, domainerrors.ErrProjectOwnershipViolation)
	assert.Equal(t, "Apollo", project.Name)
}

func TestProjectService_DeleteProject(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	project := &entity.Project{ID: uuid.New(), Name: "Apollo", UserID: ownerID}

	t.Run("owner", func(t *testing.T) {
		fx := createTestProjectService(t)
		fx.projectRepo.EXPECT().FindByID(ctx, project.ID).Return(project, nil)
		fx.projectRepo.EXPECT().Delete(ctx, project.ID).Return(true, nil)

		require.NoError(t, fx.service.DeleteProject(ctx, project.ID, ownerID))
	})

	t.Run("stranger", func(t *testing.T) {
		fx := createTestProjectService(t)
		fx.projectRepo.EXPECT().FindByID(ctx, project.ID).Return(project, nil)

		err := fx.service.DeleteProject(ctx, project.ID, uuid.New())

		require.ErrorIs(t, err, domainerrors.ErrProjectOwnershipViolation)
	})

	t.Run("vanished between lookup and delete", func(t *testing.T) {
		fx := createTestProjectService(t)
		fx.projectRepo.EXPECT().FindByID(ctx, project.ID).Return(project, nil)
		fx.projectRepo.EXPECT().Delete(ctx, project.ID).Return(false, nil)

		err := fx.service.DeleteProject(ctx, project.ID, ownerID)

		require.ErrorIs(t, err, domainerrors.ErrProjectNotFound)
	})
}
