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

const envDevelopment = "dev"

type seedUser struct {
	fullName, username, email, password string
	role                                entity.UserRole
}

var seedUsers = []seedUser{
	{"John Doe", "johndoe", "johndoe@example.com", "password123", entity.UserRoleUser},
	{"Jane Smith", "janesmith", "janesmith@example.com", "password123", entity.UserRoleAdmin},
}

var seedCategories = []struct{ name, description string }{
	{"Electronics", "Category for electronic devices and gadgets"},
	{"Fashion", "Category for clothing, accessories, and footwear"},
	{"Home & Kitchen", "Category for home appliances, decor, and kitchenware"},
	{"Books", "Category for books across various genres"},
	{"Sports & Outdoors", "Category for sports equipment and outdoor gear"},
	{"Beauty & Personal Care", "Category for beauty products and personal care items"},
	{"Toys & Games", "Category for toys, games, and recreational items"},
	{"Health & Wellness", "Category for health products and wellness items"},
	{"Automotive", "Category for automotive accessories and parts"},
	{"Pet Supplies", "Category for pet food, toys, and accessories"},
}

var seedProducts = []entity.Product{
	{Name: "Laptop", Description: "Powerful laptop for work and entertainment", Price: 999.99, Stock: 50, Category: "electronics", Brand: "Brand X", Image: entity.Image{URL: "https://source.unsplash.com/featured/?laptop"}},
	{Name: "Smartphone", Description: "High-performance smartphone with advanced features", Price: 599.99, Stock: 100, Category: "electronics", Brand: "Brand Y", Image: entity.Image{URL: "https://source.unsplash.com/featured/?smartphone"}},
	{Name: "Headphones", Description: "Premium noise-canceling headphones for immersive audio experience", Price: 149.99, Stock: 30, Category: "electronics", Brand: "Brand Z", Image: entity.Image{URL: "https://source.unsplash.com/featured/?headphones"}},
	{Name: "Dress Shirt", Description: "Classic dress shirt for formal occasions", Price: 39.99, Stock: 80, Category: "fashion", Brand: "Fashion Brand A", Image: entity.Image{URL: "https://source.unsplash.com/featured/?shirt"}},
	{Name: "Running Shoes", Description: "Comfortable running shoes with responsive cushioning", Price: 79.99, Stock: 60, Category: "fashion", Brand: "Sportswear Co.", Image: entity.Image{URL: "https://source.unsplash.com/featured/?shoes"}},
}

// SeedUsecase replaces collections with fixtures. It refuses to run outside development.
type SeedUsecase struct {
	userRepo      contract.IUserRepository
	productRepo   contract.IProductRepository
	categoryRepo  contract.ICategoryRepository
	hasher        contract.IHasher
	uuidGenerator contract.IUUIDGenerator
	config        usecasecontract.IConfigProvider
	logger        usecasecontract.IAppLogger
	now           func() time.Time
}

func NewSeedUsecase(
	userRepo contract.IUserRepository,
	productRepo contract.IProductRepository,
	categoryRepo contract.ICategoryRepository,
	hasher contract.IHasher,
	uuidGenerator contract.IUUIDGenerator,
	cfg usecasecontract.IConfigProvider,
	logger usecasecontract.IAppLogger,
) *SeedUsecase {
	return &SeedUsecase{
		userRepo:      userRepo,
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		hasher:        hasher,
		uuidGenerator: uuidGenerator,
		config:        cfg,
		logger:        logger,
		now:           time.Now,
	}
}

var _ usecasecontract.ISeedUseCase = (*SeedUsecase)(nil)

func (uc *SeedUsecase) allowed() error {
	if uc.config.GetEnvironment() != envDevelopment {
		return apperror.Forbidden("permission denied")
	}
	return nil
}

func (uc *SeedUsecase) SeedUsers(ctx context.Context) (int, error) {
	if err := uc.allowed(); err != nil {
		return 0, err
	}
	now := uc.now().UTC()
	users := make([]*entity.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		hashed, err := uc.hasher.HashPassword(su.password)
		if err != nil {
			return 0, internalError(uc.logger, "hash seed password", err)
		}
		users = append(users, &entity.User{
			ID:                 uc.uuidGenerator.NewUUID(),
			FullName:           su.fullName,
			Username:           su.username,
			Email:              su.email,
			Avatar:             entity.Image{URL: uc.config.GetDefaultAvatarURL()},
			PasswordHash:       hashed,
			Role:               su.role,
			IsAccountConfirmed: true,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
	}
	if err := uc.userRepo.ReplaceAll(ctx, users); err != nil {
		return 0, internalError(uc.logger, "seed users", err)
	}
	return len(users), nil
}

func (uc *SeedUsecase) SeedCategories(ctx context.Context) (int, error) {
	if err := uc.allowed(); err != nil {
		return 0, err
	}
	now := uc.now().UTC()
	categories := make([]*entity.Category, 0, len(seedCategories))
	for _, sc := range seedCategories {
		name := strings.ToLower(sc.name)
		categories = append(categories, &entity.Category{
			ID:          uc.uuidGenerator.NewUUID(),
			Name:        name,
			Slug:        slug.Make(name),
			Description: sc.description,
			Products:    []string{},
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	if err := uc.categoryRepo.ReplaceAll(ctx, categories); err != nil {
		return 0, internalError(uc.logger, "seed categories", err)
	}
	return len(categories), nil
}

// SeedProducts inserts the fixture products and links them to existing categories.
func (uc *SeedUsecase) SeedProducts(ctx context.Context) (int, error) {
	if err := uc.allowed(); err != nil {
		return 0, err
	}
	now := uc.now().UTC()
	products := make([]*entity.Product, 0, len(seedProducts))
	for _, sp := range seedProducts {
		p := sp
		p.ID = uc.uuidGenerator.NewUUID()
		p.Slug = slug.Make(p.Name)
		p.Shipping = true
		p.CreatedAt = now
		p.UpdatedAt = now
		products = append(products, &p)
	}
	if err := uc.productRepo.ReplaceAll(ctx, products); err != nil {
		return 0, internalError(uc.logger, "seed products", err)
	}
	for _, p := range products {
		err := uc.categoryRepo.AddProduct(ctx, p.Category, p.ID)
		switch {
		case errors.Is(err, contract.ErrCategoryNotFound):
			uc.logger.Warnf("no category %q for seeded product %s", p.Category, p.Name)
		case err != nil:
			return 0, internalError(uc.logger, "link seeded product", err)
		}
	}
	return len(products), nil
}
