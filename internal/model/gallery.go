package model

type GalleryItem struct {
	BaseModel   `firestore:",squash"`
	Title       string `firestore:"title" json:"title"`
	Description string `firestore:"description" json:"description"`
	ImageURL    string `firestore:"imageUrl" json:"imageUrl"`
	Category    string `firestore:"category" json:"category"`
	SortOrder   int    `firestore:"order" json:"order"`
}
