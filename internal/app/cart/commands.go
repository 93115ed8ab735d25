// Package cart holds the cart feature: command and query types, their
// handlers, and the read-model port the queries consume.
package cart

import "github.com/google/uuid"

// AddProductToCart puts a product in the user's cart, creating the cart on
// first use and merging quantities when the product is already present.
type AddProductToCart struct {
	UserID    uuid.UUID `json:"userId" validate:"required"`
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gt=0"`
}

func (AddProductToCart) ValidationMessages() map[string]string {
	return map[string]string{
		"UserID":    "User identifier is required.",
		"ProductID": "Product identifier is required.",
		"Quantity":  "Quantity must be greater than zero.",
	}
}

// RemoveItemFromCart removes the line item for a product from the user's
// cart.
type RemoveItemFromCart struct {
	UserID    uuid.UUID `json:"userId" validate:"required"`
	ProductID uuid.UUID `json:"productId" validate:"required"`
}

// UpdateCartItemQuantity overwrites the quantity of the line item for a
// product in the user's cart.
type UpdateCartItemQuantity struct {
	UserID      uuid.UUID `json:"userId" validate:"required"`
	ProductID   uuid.UUID `json:"productId" validate:"required"`
	NewQuantity int       `json:"newQuantity" validate:"gt=0"`
}

func (UpdateCartItemQuantity) ValidationMessages() map[string]string {
	return map[string]string{
		"NewQuantity": "Quantity must be greater than zero.",
	}
}

// ClearCart empties the user's cart. Clearing a nonexistent cart succeeds.
type ClearCart struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}
