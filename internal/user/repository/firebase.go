package repository

import (
	"context"

	fbauth "firebase.google.com/go/v4/auth"
)

// FirebaseAccounts implements user.Accounts over the Firebase Auth admin
// client.
type FirebaseAccounts struct {
	client *fbauth.Client
}

func NewFirebaseAccounts(client *fbauth.Client) *FirebaseAccounts {
	return &FirebaseAccounts{client: client}
}

func (a *FirebaseAccounts) CreateAccount(ctx context.Context, email, password string) (string, error) {
	params := (&fbauth.UserToCreate{}).Email(email).Password(password)
	record, err := a.client.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}
	return record.UID, nil
}

func (a *FirebaseAccounts) SetRole(ctx context.Context, uid, role string) error {
	return a.client.SetCustomUserClaims(ctx, uid, map[string]any{"role": role})
}

func (a *FirebaseAccounts) DeleteAccount(ctx context.Context, uid string) error {
	return a.client.DeleteUser(ctx, uid)
}
