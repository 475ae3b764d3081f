package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
)

// CartLine is a cart item joined with its product. Product is nil when the
// product no longer exists.
type CartLine struct {
	Product  *entity.Product
	Quantity int
}

type CartDetails struct {
	Cart  *entity.Cart
	Lines []CartLine
}

type ICartUseCase interface {
	AddItem(ctx context.Context, userID, productID string, quantity int) (*entity.Cart, error)
	UpdateItem(ctx context.Context, userID, productID string, quantity int, action entity.CartAction) (*entity.Cart, error)
	RemoveItem(ctx context.Context, userID, productID string) (*entity.Cart, error)
	ClearCart(ctx context.Context, userID string) error
	GetCart(ctx context.Context, userID string) (*CartDetails, error)
}
