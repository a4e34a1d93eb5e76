package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Project is a named piece of work owned by exactly one user.
type Project struct {
	ID          uuid.UUID
	Name        string
	Description *string // nil when empty
	UserID      uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProject creates a project owned by userID.
func NewProject(name string, description *string, userID uuid.UUID) (*Project, error) {
	trimmedName, err := validateName(name, "project name")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &Project{
		ID:          uuid.New(),
		Name:        trimmedName,
		Description: normalizeDescription(description),
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update replaces name and description. A blank description clears it.
func (p *Project) Update(name string, description *string) error {
	trimmedName, err := validateName(name, "project name")
	if err != nil {
		return err
	}

	p.Name = trimmedName
	p.Description = normalizeDescription(description)
	p.UpdatedAt = time.Now().UTC()

	return nil
}

func (p *Project) BelongsTo(userID uuid.UUID) bool {
	return p.UserID == userID
}

func normalizeDescription(description *string) *string {
	if description == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*description)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
