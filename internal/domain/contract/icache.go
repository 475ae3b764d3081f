package contract

import (
	"context"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
)

// IProductCache caches products by id.
type IProductCache interface {
	GetProduct(ctx context.Context, id string) (*entity.Product, bool, error)
	SetProduct(ctx context.Context, product *entity.Product) error
	InvalidateProduct(ctx context.Context, id string) error
}
