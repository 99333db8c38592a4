package user

import (
	"context"
	"errors"

	"github.com/mebelart/admin-service/internal/model"
	"github.com/mebelart/admin-service/internal/user/dto"
)

var (
	ErrNotFound    = errors.New("user not found")
	ErrInvalidRole = errors.New("invalid role")
)

// Accounts is the boundary to the external authentication service.
type Accounts interface {
	// CreateAccount provisions a credentials-based account and returns its UID.
	CreateAccount(ctx context.Context, email, password string) (string, error)
	SetRole(ctx context.Context, uid, role string) error
	DeleteAccount(ctx context.Context, uid string) error
}

type UseCase interface {
	CreateUser(ctx context.Context, input *dto.CreateUserInput) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, id string) error
}
