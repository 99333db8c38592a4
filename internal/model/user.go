package model

import "time"

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleManager
}

// User is the admin profile document; its ID equals the auth account UID.
type User struct {
	ID          string    `firestore:"-" json:"id"`
	Email       string    `firestore:"email" json:"email"`
	DisplayName string    `firestore:"displayName" json:"displayName,omitempty"`
	Role        string    `firestore:"role" json:"role"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
}

func (u *User) SetID(id string) { u.ID = id }
