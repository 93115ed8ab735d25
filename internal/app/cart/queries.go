package cart

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GetCartDetails projects the user's cart with product titles and images.
// A user without a cart gets a successful nil payload, not a not-found: an
// absent cart is just an empty cart to the read side.
type GetCartDetails struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}

// GetCartItemCount returns the total quantity across the user's cart, zero
// when no cart exists.
type GetCartItemCount struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}

// Details is the cart projection returned by GetCartDetails.
type Details struct {
	CartID uuid.UUID    `json:"cartId"`
	Items  []DetailItem `json:"items"`
}

// DetailItem is one cart line joined with its product's title and first
// image.
type DetailItem struct {
	CartItemID   uuid.UUID       `json:"cartItemId"`
	ProductID    uuid.UUID       `json:"productId"`
	ProductTitle string          `json:"productTitle"`
	ProductImage string          `json:"productImage,omitempty"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
}

// GrandTotal is the sum of quantity times unit price over all items.
func (d *Details) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range d.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// TotalItems is the sum of quantities over all items.
func (d *Details) TotalItems() int {
	var count int
	for _, item := range d.Items {
		count += item.Quantity
	}
	return count
}

// MarshalJSON includes the derived totals so API clients never recompute
// them.
func (d Details) MarshalJSON() ([]byte, error) {
	type plain Details
	return json.Marshal(struct {
		plain
		GrandTotal decimal.Decimal `json:"grandTotal"`
		TotalItems int             `json:"totalItems"`
	}{plain(d), d.GrandTotal(), d.TotalItems()})
}

// ReadModel is the query-side projection source for carts. Implementations
// read committed state only and never track aggregates.
type ReadModel interface {
	// Details returns the user's cart projection, or nil when the user has
	// no cart.
	Details(ctx context.Context, userID uuid.UUID) (*Details, error)
	// ItemCount returns the summed quantity across the user's cart, zero
	// when no cart exists.
	ItemCount(ctx context.Context, userID uuid.UUID) (int, error)
}
