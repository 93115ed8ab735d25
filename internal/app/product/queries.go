package product

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shoplite/shoplite/internal/domain"
)

// GetProducts searches the catalog by title with paging and an optional
// category filter.
type GetProducts struct {
	Title       string     `json:"title" validate:"required,min=3,max=100"`
	CurrentPage int        `json:"currentPage" validate:"gt=0"`
	PageCount   int        `json:"pageCount" validate:"gt=0"`
	CategoryID  *uuid.UUID `json:"categoryId"`
}

func (GetProducts) ValidationMessages() map[string]string {
	return map[string]string{
		"Title":       "Title must be between 3 and 100 characters.",
		"CurrentPage": "CurrentPage must be greater than 0.",
		"PageCount":   "PageCount must be greater than 0.",
	}
}

// GetProductDetailByID fetches one product with owner, category and all
// image URLs.
type GetProductDetailByID struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// ImageRef is a stored image resolved to a public URL.
type ImageRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Summary is a catalog listing row.
type Summary struct {
	ProductID uuid.UUID       `json:"productId"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     *ImageRef       `json:"image,omitempty"`
}

// Owner is the seller projection embedded in a product detail.
type Owner struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName,omitempty"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
}

// Detail is the full product projection.
type Detail struct {
	ProductID     uuid.UUID           `json:"productId"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Price         decimal.Decimal     `json:"price"`
	Quantity      int                 `json:"quantity"`
	State         domain.ProductState `json:"state"`
	CategoryID    *uuid.UUID          `json:"categoryId,omitempty"`
	CategoryTitle string              `json:"categoryTitle,omitempty"`
	Owner         Owner               `json:"owner"`
	Images        []ImageRef          `json:"images"`
}
