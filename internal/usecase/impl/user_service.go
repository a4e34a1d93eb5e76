package impl

import (
	"context"
	"log/slog"

	deliverycontext "ethos/internal/delivery/context"
	"ethos/internal/domain/entity"
	domainerrors "ethos/internal/domain/errors"
	"ethos/internal/domain/repository"
	"ethos/internal/domain/service"
	"ethos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	return createAccount(ctx, srv.log(ctx), srv.txManager, srv.hasher, input.Name, input.Email, input.Password)
}

func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *userService) UpdateUser(ctx context.Context, input *usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if input.Name != nil {
		if err := user.Rename(*input.Name); err != nil {
			return nil, err
		}
	}

	if input.Password != nil {
		hash, err := hashPassword(srv.log(ctx), srv.hasher, *input.Password)
		if err != nil {
			return nil, err
		}
		user.ChangePasswordHash(hash)
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Info("User updated",
		slog.String("userID", user.ID.String()),
		slog.Bool("passwordChanged", input.Password != nil),
	)

	return user, nil
}

func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	deleted, err := srv.userRepo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete user")
	}
	if !deleted {
		return domainerrors.ErrUserNotFound
	}

	srv.log(ctx).Info("User deleted", slog.String("userID", id.String()))

	return nil
}
