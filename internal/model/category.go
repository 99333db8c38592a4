package model

type Category struct {
	BaseModel   `firestore:",squash"`
	Name        string `firestore:"name" json:"name"`
	Slug        string `firestore:"slug" json:"slug"` // unique within the collection, enforced by the usecase
	Description string `firestore:"description" json:"description"`
	SortOrder   int    `firestore:"order" json:"order"`
}
