package dto

type CreateCategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"` // derived from name when empty
	Description string `json:"description"`
	SortOrder   int    `json:"order"`
}

type UpdateCategoryInput struct {
	ID          string `json:"-"`
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	SortOrder   int    `json:"order"`
}
