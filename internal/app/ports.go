package app

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/shoplite/shoplite/internal/domain"
)

// ErrConflict is returned by UnitOfWork.Commit when an aggregate was
// modified concurrently and the staged changes would overwrite a newer
// version. The transport layer maps it to a conflict response.
var ErrConflict = errors.New("concurrent modification conflict")

// UnitOfWorkFactory produces a fresh unit of work for a single request.
// Aggregates loaded through it are tracked; nothing is durable until Commit.
type UnitOfWorkFactory func() UnitOfWork

// UnitOfWork exposes the write-side repositories and the single commit
// point. Commit persists all staged changes atomically; a handler calls it
// at most once, only on its success path.
type UnitOfWork interface {
	Carts() CartRepository
	Products() ProductRepository
	Categories() CategoryRepository
	Commit(ctx context.Context) error
}

// CartRepository loads and stages cart aggregates.
type CartRepository interface {
	// GetByUserID returns the user's cart tracked for mutation, or nil when
	// the user has no cart.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Cart, error)
	// Create stages a new cart; it becomes durable on Commit.
	Create(ctx context.Context, cart *domain.Cart) error
}

// ProductFilter narrows a product listing.
type ProductFilter struct {
	Title      string
	Page       int
	PerPage    int
	CategoryID *uuid.UUID
}

// ProductRepository loads and stages product aggregates.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	// GetByID returns an untracked snapshot, or nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	// GetByIDTracked returns the product tracked for mutation, or nil when
	// absent.
	GetByIDTracked(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	// Delete stages removal of a previously loaded product.
	Delete(ctx context.Context, product *domain.Product) error
}

// CategoryRepository loads and stages categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	GetAll(ctx context.Context) ([]*domain.Category, error)
}

// UserDirectory is the account store. Unlike the unit-of-work repositories
// its writes are immediate; account management is not part of any aggregate
// transaction.
type UserDirectory interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// FindByID returns nil when no such user exists; same for the other
	// finders.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUserName(ctx context.Context, userName string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User, passwordHash string) error
	// ConfirmEmail marks the user's email address as verified.
	ConfirmEmail(ctx context.Context, id uuid.UUID) error
	// VerifyPassword checks the given plaintext password against the stored
	// hash. A wrong password is (false, nil), not an error.
	VerifyPassword(ctx context.Context, id uuid.UUID, password string) (bool, error)
}
