package model

import "time"

// BaseModel carries the document ID and audit timestamps shared by all
// entities. The ID is the store-level document key, not a data field.
type BaseModel struct {
	ID        string    `firestore:"-" json:"id"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// SetID is used by the generic repository to attach the document key after
// decoding.
func (b *BaseModel) SetID(id string) { b.ID = id }
