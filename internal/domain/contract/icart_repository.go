package contract

import (
	"context"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
)

type ICartRepository interface {
	GetCartByUserID(ctx context.Context, userID string) (*entity.Cart, error)
	// EnsureCart creates cart if its user has none yet.
	EnsureCart(ctx context.Context, cart *entity.Cart) error
	// AddItem appends a line unless the product is already present,
	// in which case it returns ErrCartItemExists.
	AddItem(ctx context.Context, userID string, item entity.CartItem) error
	// IncrementItem adds delta to the quantity of an existing line.
	IncrementItem(ctx context.Context, userID, productID string, delta int) error
	RemoveItem(ctx context.Context, userID, productID string) error
	ClearCart(ctx context.Context, userID string) error
}
