package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/apperror"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/contract"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/BazaarHub/internal/usecase/contract"
)

const errCategoryNotFound = "category not found"

// ProductUsecase administers the product catalog.
type ProductUsecase struct {
	productRepo   contract.IProductRepository
	categoryRepo  contract.ICategoryRepository
	products      *productLookup
	txRunner      contract.ITransactionRunner
	images        imageUploader
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
	now           func() time.Time
}

func NewProductUsecase(
	productRepo contract.IProductRepository,
	categoryRepo contract.ICategoryRepository,
	txRunner contract.ITransactionRunner,
	storage contract.IFileStorage,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		products:      &productLookup{repo: productRepo, logger: logger},
		txRunner:      txRunner,
		images:        imageUploader{storage: storage, logger: logger},
		uuidGenerator: uuidGenerator,
		logger:        logger,
		now:           time.Now,
	}
}

var _ usecasecontract.IProductUseCase = (*ProductUsecase)(nil)

func (uc *ProductUsecase) SetProductCache(cache contract.IProductCache) {
	uc.products.cache = cache
}

func (uc *ProductUsecase) CreateProduct(ctx context.Context, input usecasecontract.ProductInput, image *entity.FileUpload) (*entity.Product, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Category = normalize(input.Category)
	if err := validateProduct(input.Name, input.Price, input.Discount, input.Stock); err != nil {
		return nil, err
	}
	if err := uc.ensureNameFree(ctx, input.Name, ""); err != nil {
		return nil, err
	}
	if _, err := uc.findCategory(ctx, input.Category); err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	product := &entity.Product{
		ID:          uc.uuidGenerator.NewUUID(),
		Name:        input.Name,
		Slug:        slug.Make(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Discount:    input.Discount,
		Stock:       input.Stock,
		Category:    input.Category,
		Brand:       strings.TrimSpace(input.Brand),
		Shipping:    input.Shipping,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if image != nil {
		if !uc.images.enabled() {
			return nil, apperror.BadRequest("file uploads are disabled")
		}
		img, err := uc.images.upload(ctx, "products", product.ID, image)
		if err != nil {
			return nil, err
		}
		product.Image = img
	}

	err := uc.txRunner.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.productRepo.CreateProduct(ctx, product); err != nil {
			return err
		}
		return uc.categoryRepo.AddProduct(ctx, product.Category, product.ID)
	})
	if err != nil {
		uc.images.remove(ctx, product.Image)
		switch {
		case errors.Is(err, contract.ErrDuplicateKey):
			return nil, apperror.BadRequest("product with this name already exists")
		case errors.Is(err, contract.ErrCategoryNotFound):
			return nil, apperror.NotFound(errCategoryNotFound)
		}
		return nil, internalError(uc.logger, "create product", err)
	}
	return product, nil
}

func (uc *ProductUsecase) ListProducts(ctx context.Context, filter entity.ProductListFilter) ([]*entity.Product, entity.Pagination, error) {
	products, total, err := uc.productRepo.ListProducts(ctx, filter)
	if err != nil {
		return nil, entity.Pagination{}, internalError(uc.logger, "list products", err)
	}
	if len(products) == 0 {
		return nil, entity.Pagination{}, apperror.NotFound("no products found")
	}
	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = len(products)
	}
	return products, entity.NewPagination(page, limit, total), nil
}

func (uc *ProductUsecase) GetProduct(ctx context.Context, productSlug string) (*entity.Product, error) {
	return uc.findBySlug(ctx, productSlug)
}

func (uc *ProductUsecase) UpdateProduct(ctx context.Context, productSlug string, update usecasecontract.ProductUpdate, image *entity.FileUpload) (*entity.Product, error) {
	if update.IsEmpty() && image == nil {
		return nil, apperror.BadRequest("nothing to update")
	}
	product, err := uc.findBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}
	oldCategory := product.Category

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name != product.Name {
			if err := uc.ensureNameFree(ctx, name, product.ID); err != nil {
				return nil, err
			}
			product.Name = name
			product.Slug = slug.Make(name)
		}
	}
	if update.Description != nil {
		product.Description = strings.TrimSpace(*update.Description)
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.Discount != nil {
		product.Discount = *update.Discount
	}
	if update.Stock != nil {
		product.Stock = *update.Stock
	}
	if update.Brand != nil {
		product.Brand = strings.TrimSpace(*update.Brand)
	}
	if update.Shipping != nil {
		product.Shipping = *update.Shipping
	}
	if update.Category != nil {
		product.Category = normalize(*update.Category)
		if product.Category != oldCategory {
			if _, err := uc.findCategory(ctx, product.Category); err != nil {
				return nil, err
			}
		}
	}
	if err := validateProduct(product.Name, product.Price, product.Discount, product.Stock); err != nil {
		return nil, err
	}

	oldImage := product.Image
	if image != nil {
		if !uc.images.enabled() {
			return nil, apperror.BadRequest("file uploads are disabled")
		}
		img, err := uc.images.upload(ctx, "products", product.ID, image)
		if err != nil {
			return nil, err
		}
		product.Image = img
	}
	product.UpdatedAt = uc.now().UTC()

	err = uc.txRunner.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.productRepo.UpdateProduct(ctx, product); err != nil {
			return err
		}
		if product.Category == oldCategory {
			return nil
		}
		if err := uc.categoryRepo.RemoveProduct(ctx, oldCategory, product.ID); err != nil && !errors.Is(err, contract.ErrCategoryNotFound) {
			return err
		}
		return uc.categoryRepo.AddProduct(ctx, product.Category, product.ID)
	})
	if err != nil {
		if image != nil {
			uc.images.remove(ctx, product.Image)
		}
		switch {
		case errors.Is(err, contract.ErrDuplicateKey):
			return nil, apperror.Conflict("product with this name already exists")
		case errors.Is(err, contract.ErrProductNotFound):
			return nil, apperror.NotFound(errProductNotFound)
		case errors.Is(err, contract.ErrCategoryNotFound):
			return nil, apperror.NotFound(errCategoryNotFound)
		}
		return nil, internalError(uc.logger, "update product", err)
	}

	if image != nil {
		uc.images.remove(ctx, oldImage)
	}
	uc.products.invalidate(ctx, product.ID)
	return product, nil
}

func (uc *ProductUsecase) DeleteProduct(ctx context.Context, productSlug string) error {
	product, err := uc.findBySlug(ctx, productSlug)
	if err != nil {
		return err
	}
	if err := uc.productRepo.DeleteProduct(ctx, product.ID); err != nil {
		if errors.Is(err, contract.ErrProductNotFound) {
			return apperror.NotFound(errProductNotFound)
		}
		return internalError(uc.logger, "delete product", err)
	}
	if err := uc.categoryRepo.RemoveProduct(ctx, product.Category, product.ID); err != nil && !errors.Is(err, contract.ErrCategoryNotFound) {
		uc.logger.Warnf("failed to unlink product %s from category %s: %v", product.ID, product.Category, err)
	}
	uc.images.remove(ctx, product.Image)
	uc.products.invalidate(ctx, product.ID)
	return nil
}

func (uc *ProductUsecase) findBySlug(ctx context.Context, productSlug string) (*entity.Product, error) {
	product, err := uc.productRepo.GetProductBySlug(ctx, productSlug)
	if err != nil {
		if errors.Is(err, contract.ErrProductNotFound) {
			return nil, apperror.NotFound(errProductNotFound)
		}
		return nil, internalError(uc.logger, "get product", err)
	}
	return product, nil
}

func (uc *ProductUsecase) findCategory(ctx context.Context, name string) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetCategoryByName(ctx, name)
	if err != nil {
		if errors.Is(err, contract.ErrCategoryNotFound) {
			return nil, apperror.NotFound(errCategoryNotFound)
		}
		return nil, internalError(uc.logger, "get category", err)
	}
	return category, nil
}

// ensureNameFree fails when another product than exceptID uses name.
func (uc *ProductUsecase) ensureNameFree(ctx context.Context, name, exceptID string) error {
	existing, err := uc.productRepo.GetProductByName(ctx, name)
	switch {
	case err == nil:
		if existing.ID == exceptID {
			return nil
		}
		if exceptID == "" {
			return apperror.BadRequest("product with this name already exists")
		}
		return apperror.Conflict("product with this name already exists")
	case errors.Is(err, contract.ErrProductNotFound):
		return nil
	default:
		return internalError(uc.logger, "check product name", err)
	}
}

func validateProduct(name string, price, discount float64, stock int) error {
	switch {
	case name == "":
		return apperror.BadRequest("product name is required")
	case price < 0:
		return apperror.BadRequest("price cannot be negative")
	case discount < 0:
		return apperror.BadRequest("discount cannot be negative")
	case stock < 0:
		return apperror.BadRequest("stock cannot be negative")
	}
	return nil
}
