package model

// ImageKind distinguishes a freshly picked file from a remote URL reference.
type ImageKind string

const (
	ImageKindFile ImageKind = "file"
	ImageKindURL  ImageKind = "url"
)

// ImageRef points at an image either as raw upload bytes or a plain URL.
type ImageRef struct {
	Kind    ImageKind
	URL     string
	Name    string
	Content []byte
}

// Variant is a sellable quantity of a product (500gm, 1L, ...). Variants are
// owned by their product and have no lifecycle of their own.
type Variant struct {
	Label string    `json:"label" validate:"required"`
	Value float64   `json:"value"`
	Unit  string    `json:"unit" validate:"omitempty,variant_unit"`
	Price float64   `json:"price"`
	Stock int       `json:"stock"`
	Image *ImageRef `json:"-"`
}

// Product as returned by the list/get endpoints.
type Product struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Price             float64   `json:"price"`
	Cost              float64   `json:"cost"`
	Stock             int       `json:"stock"`
	Unit              string    `json:"unit"`
	Volume            string    `json:"volume"`
	Description       string    `json:"description"`
	Image             string    `json:"image"`
	AvailableForOrder bool      `json:"availableForOrder"`
	Vegetarian        bool      `json:"vegetarian"`
	IsVIP             bool      `json:"isVIP"`
	IsActive          bool      `json:"isActive"`
	Variants          []Variant `json:"availableQuantities"`
}

// ProductInput is the client-side shape for create/update calls; the service
// layer maps it onto the multipart wire format.
type ProductInput struct {
	Name              string `validate:"required"`
	Category          string
	Cost              float64
	Description       string
	PreparationTime   string
	Calories          string
	AvailableForOrder bool
	Vegetarian        bool
	IsVIP             bool
	MainImage         *ImageRef
	Variants          []Variant `validate:"dive"`
}

// ProductPage is the normalized list result.
type ProductPage struct {
	Products []Product
	Total    int
}
