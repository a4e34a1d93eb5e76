// Package auth implements the credential and token services declared in domain/service.
package auth

import (
	"strings"
	"unicode/utf8"

	"ethos/config"
	domainerrors "ethos/internal/domain/errors"
	"ethos/internal/domain/service"
	"ethos/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

type bcryptHasher struct {
	cost      int
	minLength int
}

// NewBcryptHasher builds the PasswordHasher from the auth section of the config.
func NewBcryptHasher(cfg *config.Config) (service.PasswordHasher, error) {
	if cfg.Auth == nil {
		return nil, domainerrors.Configuration("auth config must be provided")
	}

	return NewBcryptHasherWithCost(cfg.Auth.BcryptCost, cfg.Auth.PasswordMinLength)
}

// NewBcryptHasherWithCost returns a hasher using the given bcrypt cost and minimum
// password length (counted in runes, after trimming).
func NewBcryptHasherWithCost(cost, minLength int) (service.PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, domainerrors.Configuration("bcrypt cost must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, cost)
	}
	if minLength < 1 {
		return nil, domainerrors.Configuration("password minimum length must be positive, got %d", minLength)
	}

	return &bcryptHasher{cost: cost, minLength: minLength}, nil
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	password = strings.TrimSpace(password)
	if utf8.RuneCountInString(password) < h.minLength {
		return "", domainerrors.InvalidInput("password must be at least %d characters", h.minLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", domainerrors.InvalidInput("password must be at most 72 bytes")
		}

		return "", errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}

	return string(hash), nil
}

// Compare trims password the same way Hash does. Any bcrypt failure, including a
// malformed hash, counts as a mismatch.
func (h *bcryptHasher) Compare(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(strings.TrimSpace(password))) == nil
}
