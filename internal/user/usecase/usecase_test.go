package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mebelart/admin-service/internal/model"
	"github.com/mebelart/admin-service/internal/store"
	"github.com/mebelart/admin-service/internal/user"
	"github.com/mebelart/admin-service/internal/user/dto"
	"github.com/mebelart/admin-service/internal/user/repository"
)

type fakeAccounts struct {
	next    int
	roles   map[string]string
	deleted []string
	failDel bool
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{roles: make(map[string]string)}
}

func (f *fakeAccounts) CreateAccount(_ context.Context, _, _ string) (string, error) {
	f.next++
	return fmt.Sprintf("uid-%d", f.next), nil
}

func (f *fakeAccounts) SetRole(_ context.Context, uid, role string) error {
	f.roles[uid] = role
	return nil
}

func (f *fakeAccounts) DeleteAccount(_ context.Context, uid string) error {
	if f.failDel {
		return errors.New("auth unavailable")
	}
	f.deleted = append(f.deleted, uid)
	return nil
}

func TestCreateUserProvisionsAccountAndRole(t *testing.T) {
	ctx := context.Background()
	accounts := newFakeAccounts()
	repo := repository.NewStoreRepository(store.NewMemory())
	uc := NewUserUseCase(repo, accounts, zap.NewNop())

	created, err := uc.CreateUser(ctx, &dto.CreateUserInput{
		Email:       "manager@mebelart.by",
		Password:    "secret-password",
		DisplayName: "Ольга",
		Role:        model.RoleManager,
	})
	require.NoError(t, err)
	assert.Equal(t, "uid-1", created.ID)
	assert.Equal(t, model.RoleManager, accounts.roles["uid-1"])

	list, err := uc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "manager@mebelart.by", list[0].Email)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	uc := NewUserUseCase(repository.NewStoreRepository(store.NewMemory()), newFakeAccounts(), zap.NewNop())

	_, err := uc.CreateUser(context.Background(), &dto.CreateUserInput{
		Email:    "x@example.com",
		Password: "secret-password",
		Role:     "superadmin",
	})
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestDeleteUserSurvivesAuthFailure(t *testing.T) {
	ctx := context.Background()
	accounts := newFakeAccounts()
	accounts.failDel = true
	repo := repository.NewStoreRepository(store.NewMemory())
	uc := NewUserUseCase(repo, accounts, zap.NewNop())

	created, err := uc.CreateUser(ctx, &dto.CreateUserInput{
		Email:    "admin@mebelart.by",
		Password: "secret-password",
		Role:     model.RoleAdmin,
	})
	require.NoError(t, err)

	// The profile delete wins even when the auth backend is down.
	require.NoError(t, uc.DeleteUser(ctx, created.ID))

	list, err := uc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeleteUserNotFound(t *testing.T) {
	uc := NewUserUseCase(repository.NewStoreRepository(store.NewMemory()), newFakeAccounts(), zap.NewNop())

	err := uc.DeleteUser(context.Background(), "missing")
	assert.ErrorIs(t, err, user.ErrNotFound)
}
