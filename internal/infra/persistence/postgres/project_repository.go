package postgres

import (
	"context"

	"ethos/internal/domain/entity"
	domainerrors "ethos/internal/domain/errors"
	"ethos/internal/domain/repository"
	"ethos/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

func (repo *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectM model.ProjectModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&projectM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project by id")
	}

	return toProjectDomain(&projectM), nil
}

func (repo *projectRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Project, error) {
	return repo.find(repo.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (repo *projectRepository) FindAll(ctx context.Context) ([]*entity.Project, error) {
	return repo.find(repo.db.WithContext(ctx))
}

func (repo *projectRepository) find(tx *gorm.DB) ([]*entity.Project, error) {
	var projectModels []*model.ProjectModel

	if err := tx.Order("created_at DESC").Find(&projectModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	projects := make([]*entity.Project, 0, len(projectModels))
	for _, projectM := range projectModels {
		projects = append(projects, toProjectDomain(projectM))
	}

	return projects, nil
}

func (repo *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)

	if err := repo.db.WithContext(ctx).Create(projectM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("project owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create project")
	}

	project.CreatedAt = projectM.CreatedAt
	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

// Update writes name and description. A nil description is stored as NULL.
func (repo *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Where("id = ?", project.ID).
		Updates(map[string]any{
			"name":        project.Name,
			"description": project.Description,
			"updated_at":  project.UpdatedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update project")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrProjectNotFound
	}

	return nil
}

func (repo *projectRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProjectModel{})

	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete project")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

func toProjectDomain(data *model.ProjectModel) *entity.Project {
	if data == nil {
		return nil
	}

	return &entity.Project{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProjectDomain(data *entity.Project) *model.ProjectModel {
	if data == nil {
		return nil
	}

	return &model.ProjectModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
