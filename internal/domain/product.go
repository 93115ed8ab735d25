package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductState is the catalog lifecycle state of a product.
type ProductState string

const (
	ProductStateActive   ProductState = "active"
	ProductStateInactive ProductState = "inactive"
)

// Valid reports whether s is a known product state.
func (s ProductState) Valid() bool {
	return s == ProductStateActive || s == ProductStateInactive
}

// ProductImage is an image value object attached to a product. FileName is
// the storage key; resolving it to a URL is the file store's concern.
type ProductImage struct {
	FileName string
	FileType string
}

// Product is a catalog product owned by a seller, optionally placed in a
// category.
type Product struct {
	id          uuid.UUID
	title       string
	description string
	price       decimal.Decimal
	quantity    int
	state       ProductState
	userID      uuid.UUID
	categoryID  *uuid.UUID
	images      []ProductImage
}

// NewProduct creates a product after guard-checking its inputs. Quantity is
// the available stock and may be zero; price must be positive.
func NewProduct(title, description string, price decimal.Decimal, quantity int, state ProductState, userID uuid.UUID, categoryID *uuid.UUID) (*Product, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}
	if !price.IsPositive() {
		return nil, ErrPriceNotPositive
	}
	if quantity < 0 {
		return nil, ErrQuantityNegative
	}
	if userID == uuid.Nil {
		return nil, ErrUserIDRequired
	}
	if categoryID != nil && *categoryID == uuid.Nil {
		return nil, ErrCategoryIDRequired
	}
	if !state.Valid() {
		state = ProductStateActive
	}
	return &Product{
		id:          uuid.New(),
		title:       title,
		description: description,
		price:       price,
		quantity:    quantity,
		state:       state,
		userID:      userID,
		categoryID:  categoryID,
	}, nil
}

// RehydrateProduct reconstructs a product from persisted state.
func RehydrateProduct(id uuid.UUID, title, description string, price decimal.Decimal, quantity int, state ProductState, userID uuid.UUID, categoryID *uuid.UUID, images []ProductImage) *Product {
	return &Product{
		id:          id,
		title:       title,
		description: description,
		price:       price,
		quantity:    quantity,
		state:       state,
		userID:      userID,
		categoryID:  categoryID,
		images:      images,
	}
}

func (p *Product) ID() uuid.UUID          { return p.id }
func (p *Product) Title() string          { return p.title }
func (p *Product) Description() string    { return p.description }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) Quantity() int          { return p.quantity }
func (p *Product) State() ProductState    { return p.state }
func (p *Product) UserID() uuid.UUID      { return p.userID }
func (p *Product) CategoryID() *uuid.UUID { return p.categoryID }

// Images returns a snapshot of the product's images.
func (p *Product) Images() []ProductImage {
	images := make([]ProductImage, len(p.images))
	copy(images, p.images)
	return images
}

// Edit replaces the product's editable attributes, applying the same guards
// as creation.
func (p *Product) Edit(title, description string, price decimal.Decimal, quantity int, categoryID *uuid.UUID) error {
	if title == "" {
		return ErrTitleRequired
	}
	if !price.IsPositive() {
		return ErrPriceNotPositive
	}
	if quantity < 0 {
		return ErrQuantityNegative
	}
	if categoryID != nil && *categoryID == uuid.Nil {
		return ErrCategoryIDRequired
	}
	p.title = title
	p.description = description
	p.price = price
	p.quantity = quantity
	p.categoryID = categoryID
	return nil
}

// ChangeState moves the product to a new lifecycle state.
func (p *Product) ChangeState(state ProductState) error {
	if !state.Valid() {
		return ErrInvalidProductState
	}
	p.state = state
	return nil
}

// AddImage attaches an image to the product.
func (p *Product) AddImage(image ProductImage) {
	p.images = append(p.images, image)
}

// RemoveImages detaches the images with the given file names. Unknown names
// are ignored.
func (p *Product) RemoveImages(fileNames []string) {
	if len(fileNames) == 0 {
		return
	}
	remove := make(map[string]struct{}, len(fileNames))
	for _, name := range fileNames {
		remove[name] = struct{}{}
	}
	kept := p.images[:0]
	for _, img := range p.images {
		if _, ok := remove[img.FileName]; !ok {
			kept = append(kept, img)
		}
	}
	p.images = kept
}

// Equal compares products by identity.
func (p *Product) Equal(other *Product) bool {
	return other != nil && p.id == other.id
}
