// Package impl implements the use cases declared in package usecase.
package impl

import (
	"context"
	"log/slog"

	"ethos/internal/domain/entity"
	domainerrors "ethos/internal/domain/errors"
	"ethos/internal/domain/repository"
	"ethos/internal/domain/service"
	"ethos/internal/errors"
)

// createAccount validates and hashes the credentials, then inserts the user after
// checking the email inside one transaction. Shared by registration and user creation.
func createAccount(
	ctx context.Context,
	logger *slog.Logger,
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	name, email, password string,
) (*entity.User, error) {
	user, err := entity.NewUser(email, name, "")
	if err != nil {
		return nil, err
	}

	hash, err := hashPassword(logger, hasher, password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash

	err = txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		exists, err := userRepo.ExistsByEmail(ctx, user.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email availability")
		}
		if exists {
			return domainerrors.ErrUserAlreadyExists
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			logger.Info("Account creation rejected: email in use", slog.String("email", user.Email))

			return nil, err
		}
		logger.Error("Failed to create account", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute account creation transaction")
	}

	return user, nil
}

// hashPassword keeps invalid-input errors from the hasher and joins anything else with
// ErrPasswordHashFailed so both stay matchable. The password itself is never logged.
func hashPassword(logger *slog.Logger, hasher service.PasswordHasher, password string) (string, error) {
	hash, err := hasher.Hash(password)
	if err == nil {
		return hash, nil
	}

	if domainerrors.KindOf(err) == domainerrors.KindInvalidInput {
		return "", err
	}

	logger.Error("Failed to hash password", slog.Any("error", err))

	return "", errors.Join(domainerrors.ErrPasswordHashFailed, err)
}
