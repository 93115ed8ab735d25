package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is the aggregate root for a user's shopping cart. All mutation goes
// through its methods; the item slice is never handed out directly.
//
// A cart holds at most one line item per product: adding a product that is
// already present merges quantities instead of appending a second line.
type Cart struct {
	id      uuid.UUID
	userID  uuid.UUID
	version int64
	items   []*CartItem
}

// NewCart creates an empty cart owned by the given user.
func NewCart(userID uuid.UUID) (*Cart, error) {
	if userID == uuid.Nil {
		return nil, ErrUserIDRequired
	}
	return &Cart{
		id:      uuid.New(),
		userID:  userID,
		version: 1,
	}, nil
}

// RehydrateCart reconstructs a cart from persisted state. It performs no
// guard checks; the persistence layer is trusted to hand back what was stored.
func RehydrateCart(id, userID uuid.UUID, version int64, items []*CartItem) *Cart {
	return &Cart{
		id:      id,
		userID:  userID,
		version: version,
		items:   items,
	}
}

func (c *Cart) ID() uuid.UUID     { return c.id }
func (c *Cart) UserID() uuid.UUID { return c.userID }

// Version is the optimistic concurrency token, bumped by the persistence
// layer on every successful commit.
func (c *Cart) Version() int64 { return c.version }

// Items returns a snapshot of the current line items. Mutating the returned
// slice does not affect the cart.
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, len(c.items))
	for i, item := range c.items {
		items[i] = *item
	}
	return items
}

// ItemByProduct returns the line item for the given product, if present.
func (c *Cart) ItemByProduct(productID uuid.UUID) (CartItem, bool) {
	for _, item := range c.items {
		if item.productID == productID {
			return *item, true
		}
	}
	return CartItem{}, false
}

// AddItem adds a product to the cart. If a line item for the product already
// exists its quantity is increased and its unit price is left untouched;
// otherwise a new item is appended capturing the given unit price.
func (c *Cart) AddItem(productID uuid.UUID, quantity int, unitPrice decimal.Decimal) error {
	if productID == uuid.Nil {
		return ErrProductIDRequired
	}
	if quantity <= 0 {
		return ErrQuantityNotPositive
	}
	if !unitPrice.IsPositive() {
		return ErrUnitPriceNotPositive
	}

	for _, item := range c.items {
		if item.productID == productID {
			return item.increaseQuantity(quantity)
		}
	}

	item, err := newCartItem(productID, quantity, unitPrice)
	if err != nil {
		return err
	}
	c.items = append(c.items, item)
	return nil
}

// RemoveItem removes the line item with the given identity. Removing an item
// that is not in the cart is a no-op.
func (c *Cart) RemoveItem(cartItemID uuid.UUID) error {
	if cartItemID == uuid.Nil {
		return ErrCartItemIDRequired
	}
	for i, item := range c.items {
		if item.id == cartItemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// UpdateItemQuantity overwrites the quantity of the line item with the given
// identity. Updating an item that is not in the cart is a no-op.
func (c *Cart) UpdateItemQuantity(cartItemID uuid.UUID, newQuantity int) error {
	if cartItemID == uuid.Nil {
		return ErrCartItemIDRequired
	}
	if newQuantity <= 0 {
		return ErrQuantityNotPositive
	}
	for _, item := range c.items {
		if item.id == cartItemID {
			return item.setQuantity(newQuantity)
		}
	}
	return nil
}

// Clear empties the cart. The cart record itself survives; clearing an
// already-empty cart is a no-op.
func (c *Cart) Clear() {
	c.items = nil
}

// TotalPrice is the sum of quantity times unit price over all items.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.unitPrice.Mul(decimal.NewFromInt(int64(item.quantity))))
	}
	return total
}

// TotalItems is the sum of quantities over all items.
func (c *Cart) TotalItems() int {
	var count int
	for _, item := range c.items {
		count += item.quantity
	}
	return count
}

// Equal compares carts by identity.
func (c *Cart) Equal(other *Cart) bool {
	return other != nil && c.id == other.id
}

// CartItem is a line item owned by a Cart. It has no lifecycle of its own
// outside its cart: the aggregate root creates, mutates and removes it.
type CartItem struct {
	id        uuid.UUID
	productID uuid.UUID
	quantity  int
	unitPrice decimal.Decimal
}

func newCartItem(productID uuid.UUID, quantity int, unitPrice decimal.Decimal) (*CartItem, error) {
	if productID == uuid.Nil {
		return nil, ErrProductIDRequired
	}
	if quantity <= 0 {
		return nil, ErrQuantityNotPositive
	}
	if !unitPrice.IsPositive() {
		return nil, ErrUnitPriceNotPositive
	}
	return &CartItem{
		id:        uuid.New(),
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

// RehydrateCartItem reconstructs a line item from persisted state.
func RehydrateCartItem(id, productID uuid.UUID, quantity int, unitPrice decimal.Decimal) *CartItem {
	return &CartItem{
		id:        id,
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}
}

func (i *CartItem) ID() uuid.UUID              { return i.id }
func (i *CartItem) ProductID() uuid.UUID       { return i.productID }
func (i *CartItem) Quantity() int              { return i.quantity }
func (i *CartItem) UnitPrice() decimal.Decimal { return i.unitPrice }

// LineTotal is quantity times unit price.
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *CartItem) increaseQuantity(quantityToAdd int) error {
	if quantityToAdd <= 0 {
		return ErrQuantityNotPositive
	}
	i.quantity += quantityToAdd
	return nil
}

func (i *CartItem) setQuantity(newQuantity int) error {
	if newQuantity <= 0 {
		return ErrQuantityNotPositive
	}
	i.quantity = newQuantity
	return nil
}
