// Package entity contains the core business objects of the project.
package entity

import (
	"regexp"
	"strings"
	"time"

	domainerrors "ethos/internal/domain/errors"

	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User is an account that can sign in and own projects.
type User struct {
	ID           uuid.UUID
	Email        string // always normalized, see NormalizeEmail
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // set by soft delete
}

// NewUser creates a user with a fresh ID. passwordHash must already be produced by a PasswordHasher.
func NewUser(email, name, passwordHash string) (*User, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	trimmedName, err := validateName(name, "user name")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &User{
		ID:           uuid.New(),
		Email:        normalized,
		Name:         trimmedName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// NormalizeEmail lowercases and trims email and checks its shape.
func NormalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(normalized) {
		return "", domainerrors.ErrValidationFailed.WithDetails("invalid email format")
	}

	return normalized, nil
}

// Rename replaces the display name.
func (u *User) Rename(name string) error {
	trimmed, err := validateName(name, "user name")
	if err != nil {
		return err
	}

	u.Name = trimmed
	u.UpdatedAt = time.Now().UTC()

	return nil
}

// ChangePasswordHash replaces the stored hash wholesale.
func (u *User) ChangePasswordHash(hash string) {
	u.PasswordHash = hash
	u.UpdatedAt = time.Now().UTC()
}

func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

func validateName(name, field string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails(field + " cannot be empty")
	}

	return trimmed, nil
}
