package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
)

type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Discount    float64
	Stock       int
	Category    string
	Brand       string
	Shipping    bool
}

// ProductUpdate carries optional changes; nil fields are left untouched.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Discount    *float64
	Stock       *int
	Category    *string
	Brand       *string
	Shipping    *bool
}

func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil && u.Discount == nil &&
		u.Stock == nil && u.Category == nil && u.Brand == nil && u.Shipping == nil
}

type IProductUseCase interface {
	CreateProduct(ctx context.Context, input ProductInput, image *entity.FileUpload) (*entity.Product, error)
	ListProducts(ctx context.Context, filter entity.ProductListFilter) ([]*entity.Product, entity.Pagination, error)
	GetProduct(ctx context.Context, slug string) (*entity.Product, error)
	UpdateProduct(ctx context.Context, slug string, update ProductUpdate, image *entity.FileUpload) (*entity.Product, error)
	DeleteProduct(ctx context.Context, slug string) error
}

type CategoryDetails struct {
	Category *entity.Category
	Products []*entity.Product
}

type ICategoryUseCase interface {
	CreateCategory(ctx context.Context, name, description string) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*CategoryDetails, error)
	GetCategory(ctx context.Context, slug string) (*CategoryDetails, error)
	UpdateCategory(ctx context.Context, slug string, name, description *string) (*entity.Category, error)
	DeleteCategory(ctx context.Context, slug string) error
}

// ISeedUseCase replaces collections with fixture data in development.
type ISeedUseCase interface {
	SeedUsers(ctx context.Context) (int, error)
	SeedCategories(ctx context.Context) (int, error)
	SeedProducts(ctx context.Context) (int, error)
}
