package model

// Category groups products. Name is the internal identifier and is immutable
// after creation; DisplayName is what the storefront shows.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Image       string `json:"image"`
	IsActive    bool   `json:"isActive"`
	SortOrder   int    `json:"sortOrder"`
}

type CategoryInput struct {
	Name        string `validate:"required"`
	DisplayName string `validate:"required"`
	Description string
	Icon        string
	SortOrder   int
	IsActive    bool
	Image       *ImageRef
}

type CategoryPage struct {
	Categories []Category
	Total      int
}
