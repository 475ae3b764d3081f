package contract

import (
	"context"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
)

type IProductRepository interface {
	CreateProduct(ctx context.Context, product *entity.Product) error
	GetProductByID(ctx context.Context, id string) (*entity.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error)
	GetProductByName(ctx context.Context, name string) (*entity.Product, error)
	// GetProductsByIDs returns the products that exist, in no particular order.
	GetProductsByIDs(ctx context.Context, ids []string) ([]*entity.Product, error)
	ListProducts(ctx context.Context, filter entity.ProductListFilter) ([]*entity.Product, int64, error)
	UpdateProduct(ctx context.Context, product *entity.Product) error
	DeleteProduct(ctx context.Context, id string) error
	// DecrementStock subtracts qty only when at least qty is available.
	// Returns ErrInsufficientStock otherwise.
	DecrementStock(ctx context.Context, id string, qty int) error
	IncrementStock(ctx context.Context, id string, qty int) error
	ReplaceAll(ctx context.Context, products []*entity.Product) error
}
