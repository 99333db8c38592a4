package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mebelart/admin-service/internal/model"
	"github.com/mebelart/admin-service/internal/user"
	"github.com/mebelart/admin-service/internal/user/dto"
)

type userUseCase struct {
	repo     user.Repository
	accounts user.Accounts
	logger   *zap.Logger
}

func NewUserUseCase(repo user.Repository, accounts user.Accounts, logger *zap.Logger) user.UseCase {
	return &userUseCase{
		repo:     repo,
		accounts: accounts,
		logger:   logger,
	}
}

func (uc *userUseCase) CreateUser(ctx context.Context, input *dto.CreateUserInput) (*model.User, error) {
	if !model.ValidRole(input.Role) {
		return nil, user.ErrInvalidRole
	}

	uid, err := uc.accounts.CreateAccount(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}
	if err := uc.accounts.SetRole(ctx, uid, input.Role); err != nil {
		return nil, err
	}

	u := &model.User{
		ID:          uid,
		Email:       input.Email,
		DisplayName: input.DisplayName,
		Role:        input.Role,
		CreatedAt:   time.Now(),
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (uc *userUseCase) ListUsers(ctx context.Context) ([]model.User, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *userUseCase) DeleteUser(ctx context.Context, id string) error {
	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return user.ErrNotFound
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	// The profile is authoritative; a dangling auth account is harmless and
	// can be cleaned up by a later retry.
	if err := uc.accounts.DeleteAccount(ctx, id); err != nil {
		uc.logger.Warn("auth account not deleted", zap.String("uid", id), zap.Error(err))
	}
	return nil
}
