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

// CategoryUsecase manages product categories. Category names are stored lower-cased.
type CategoryUsecase struct {
	categoryRepo  contract.ICategoryRepository
	products      *productLookup
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
	now           func() time.Time
}

func NewCategoryUsecase(
	categoryRepo contract.ICategoryRepository,
	productRepo contract.IProductRepository,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *CategoryUsecase {
	return &CategoryUsecase{
		categoryRepo:  categoryRepo,
		products:      &productLookup{repo: productRepo, logger: logger},
		uuidGenerator: uuidGenerator,
		logger:        logger,
		now:           time.Now,
	}
}

var _ usecasecontract.ICategoryUseCase = (*CategoryUsecase)(nil)

func (uc *CategoryUsecase) SetProductCache(cache contract.IProductCache) {
	uc.products.cache = cache
}

func (uc *CategoryUsecase) CreateCategory(ctx context.Context, name, description string) (*entity.Category, error) {
	name = normalize(name)
	if name == "" {
		return nil, apperror.BadRequest("category name is required")
	}
	if err := uc.ensureNameFree(ctx, name); err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	category := &entity.Category{
		ID:          uc.uuidGenerator.NewUUID(),
		Name:        name,
		Slug:        slug.Make(name),
		Description: strings.TrimSpace(description),
		Products:    []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categoryRepo.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, contract.ErrDuplicateKey) {
			return nil, apperror.Conflict("category already exists")
		}
		return nil, internalError(uc.logger, "create category", err)
	}
	return category, nil
}

// ListCategories returns every category with its products resolved.
func (uc *CategoryUsecase) ListCategories(ctx context.Context) ([]*usecasecontract.CategoryDetails, error) {
	categories, err := uc.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, internalError(uc.logger, "list categories", err)
	}
	if len(categories) == 0 {
		return nil, apperror.NotFound("no categories found")
	}

	var ids []string
	for _, c := range categories {
		ids = append(ids, c.Products...)
	}
	byID, err := uc.products.byIDs(ctx, ids)
	if err != nil {
		return nil, internalError(uc.logger, "load category products", err)
	}
	details := make([]*usecasecontract.CategoryDetails, 0, len(categories))
	for _, c := range categories {
		details = append(details, &usecasecontract.CategoryDetails{Category: c, Products: pick(byID, c.Products)})
	}
	return details, nil
}

func (uc *CategoryUsecase) GetCategory(ctx context.Context, categorySlug string) (*usecasecontract.CategoryDetails, error) {
	category, err := uc.findBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	byID, err := uc.products.byIDs(ctx, category.Products)
	if err != nil {
		return nil, internalError(uc.logger, "load category products", err)
	}
	return &usecasecontract.CategoryDetails{Category: category, Products: pick(byID, category.Products)}, nil
}

// UpdateCategory renames or redescribes a category. Products keep referring to
// the category by the name they were created with.
func (uc *CategoryUsecase) UpdateCategory(ctx context.Context, categorySlug string, name, description *string) (*entity.Category, error) {
	if name == nil && description == nil {
		return nil, apperror.BadRequest("nothing to update")
	}
	category, err := uc.findBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	if name != nil {
		n := normalize(*name)
		if n == "" {
			return nil, apperror.BadRequest("category name is required")
		}
		if n != category.Name {
			if err := uc.ensureNameFree(ctx, n); err != nil {
				return nil, err
			}
			category.Name = n
			category.Slug = slug.Make(n)
		}
	}
	if description != nil {
		category.Description = strings.TrimSpace(*description)
	}
	category.UpdatedAt = uc.now().UTC()

	if err := uc.categoryRepo.UpdateCategory(ctx, category); err != nil {
		switch {
		case errors.Is(err, contract.ErrDuplicateKey):
			return nil, apperror.Conflict("category already exists")
		case errors.Is(err, contract.ErrCategoryNotFound):
			return nil, apperror.NotFound(errCategoryNotFound)
		}
		return nil, internalError(uc.logger, "update category", err)
	}
	return category, nil
}

func (uc *CategoryUsecase) DeleteCategory(ctx context.Context, categorySlug string) error {
	category, err := uc.findBySlug(ctx, categorySlug)
	if err != nil {
		return err
	}
	if err := uc.categoryRepo.DeleteCategory(ctx, category.ID); err != nil {
		if errors.Is(err, contract.ErrCategoryNotFound) {
			return apperror.NotFound(errCategoryNotFound)
		}
		return internalError(uc.logger, "delete category", err)
	}
	return nil
}

func (uc *CategoryUsecase) findBySlug(ctx context.Context, categorySlug string) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetCategoryBySlug(ctx, categorySlug)
	if err != nil {
		if errors.Is(err, contract.ErrCategoryNotFound) {
			return nil, apperror.NotFound(errCategoryNotFound)
		}
		return nil, internalError(uc.logger, "get category", err)
	}
	return category, nil
}

func (uc *CategoryUsecase) ensureNameFree(ctx context.Context, name string) error {
	_, err := uc.categoryRepo.GetCategoryByName(ctx, name)
	switch {
	case err == nil:
		return apperror.Conflict("category already exists")
	case errors.Is(err, contract.ErrCategoryNotFound):
		return nil
	default:
		return internalError(uc.logger, "check category name", err)
	}
}

// pick returns the products of ids that still exist, in ids order.
func pick(byID map[string]*entity.Product, ids []string) []*entity.Product {
	out := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}
