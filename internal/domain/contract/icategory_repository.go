package contract

import (
	"context"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
)

type ICategoryRepository interface {
	CreateCategory(ctx context.Context, category *entity.Category) error
	GetCategoryByName(ctx context.Context, name string) (*entity.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	UpdateCategory(ctx context.Context, category *entity.Category) error
	DeleteCategory(ctx context.Context, id string) error
	AddProduct(ctx context.Context, categoryName, productID string) error
	RemoveProduct(ctx context.Context, categoryName, productID string) error
	ReplaceAll(ctx context.Context, categories []*entity.Category) error
}
