// Package product holds the catalog product feature: commands, queries and
// their handlers.
package product

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shoplite/shoplite/internal/domain"
)

// ImageUpload is a base64-encoded image submitted with a product command.
type ImageUpload struct {
	Content     string `json:"content" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
}

// CreateProduct adds a product to the catalog, optionally with images.
type CreateProduct struct {
	UserID      uuid.UUID           `json:"userId" validate:"required"`
	CategoryID  *uuid.UUID          `json:"categoryId"`
	Title       string              `json:"title" validate:"required,max=100"`
	Description string              `json:"description" validate:"max=1000"`
	Price       decimal.Decimal     `json:"price" validate:"gt=0"`
	Quantity    int                 `json:"quantity" validate:"gte=0"`
	State       domain.ProductState `json:"state" validate:"omitempty,oneof=active inactive"`
	Images      []ImageUpload       `json:"images" validate:"dive"`
}

func (CreateProduct) ValidationMessages() map[string]string {
	return map[string]string{
		"Price": "Price must be greater than zero.",
	}
}

// EditProduct replaces a product's editable attributes and adjusts its
// images.
type EditProduct struct {
	ProductID     uuid.UUID            `json:"productId" validate:"required"`
	CategoryID    *uuid.UUID           `json:"categoryId"`
	Title         string               `json:"title" validate:"required,max=100"`
	Description   string               `json:"description" validate:"max=1000"`
	Price         decimal.Decimal      `json:"price" validate:"gt=0"`
	Quantity      int                  `json:"quantity" validate:"gte=0"`
	State         *domain.ProductState `json:"state" validate:"omitempty"`
	AddedImages   []ImageUpload        `json:"addedImages" validate:"dive"`
	RemovedImages []string             `json:"removedImages"`
}

// DeleteProduct removes a product and its stored images.
type DeleteProduct struct {
	ID uuid.UUID `json:"id" validate:"required"`
}
