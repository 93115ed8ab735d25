package domain

import "errors"

// Guard errors returned by aggregate constructors and mutation methods.
// These signal invalid primitive inputs, not business-rule failures; the
// application layer converts them into failure results when they can arise
// from user input.
var (
	ErrUserIDRequired       = errors.New("user ID is required")
	ErrProductIDRequired    = errors.New("product ID is required")
	ErrCartItemIDRequired   = errors.New("cart item ID is required")
	ErrQuantityNotPositive  = errors.New("quantity must be positive")
	ErrUnitPriceNotPositive = errors.New("unit price must be positive")

	ErrTitleRequired       = errors.New("title is required")
	ErrInvalidProductState = errors.New("invalid product state")
	ErrPriceNotPositive    = errors.New("price must be positive")
	ErrQuantityNegative    = errors.New("quantity must not be negative")
	ErrCategoryIDRequired  = errors.New("category ID is required")

	ErrFirstNameRequired = errors.New("first name is required")
	ErrUserNameRequired  = errors.New("user name is required")
	ErrEmailRequired     = errors.New("email is required")
)
