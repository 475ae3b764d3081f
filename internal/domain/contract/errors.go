package contract

import "errors"

// Repository sentinel errors. Implementations wrap or return these so use cases
// can classify failures with errors.Is.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCartNotFound      = errors.New("cart not found")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrCartItemExists    = errors.New("product already in cart")
	ErrOrderNotFound     = errors.New("order not found")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrStaleToken        = errors.New("stored token changed")
)
