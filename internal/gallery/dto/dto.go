package dto

type CreateGalleryItemInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl" binding:"required"`
	Category    string `json:"category"`
	SortOrder   int    `json:"order"`
}

type UpdateGalleryItemInput struct {
	ID          string `json:"-"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl" binding:"required"`
	Category    string `json:"category"`
	SortOrder   int    `json:"order"`
}
