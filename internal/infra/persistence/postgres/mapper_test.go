package postgres

import (
	"testing"
	"time"

	"ethos/internal/domain/entity"
	"ethos/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserMapper_RoundTripKeepsSoftDelete(t *testing.T) {
	t.Parallel()

	deletedAt := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "ada@example.com",
		Name:         "Ada",
		PasswordHash: "$2a$10$hash",
		DeletedAt:    &deletedAt,
	}

	userM := fromUserDomain(user)
	require.True(t, userM.DeletedAt.Valid)

	back := toUserDomain(userM)
	assert.Equal(t, user, back)

	user.DeletedAt = nil
	assert.False(t, fromUserDomain(user).DeletedAt.Valid)
	assert.Nil(t, toUserDomain(nil))
}

func TestProjectMapper_KeepsNilDescription(t *testing.T) {
	t.Parallel()

	project := &entity.Project{ID: uuid.New(), Name: "Engine", UserID: uuid.New()}

	back := toProjectDomain(fromProjectDomain(project))

	assert.Equal(t, project, back)
	assert.Nil(t, back.Description)
}

func TestConstraintViolationDetection(t *testing.T) {
	t.Parallel()

	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("timeout")))

	assert.True(t, isForeignKeyConstraintViolation(errors.Wrap(gorm.ErrForeignKeyViolated, "insert")))
	assert.False(t, isForeignKeyConstraintViolation(gorm.ErrDuplicatedKey))
}
