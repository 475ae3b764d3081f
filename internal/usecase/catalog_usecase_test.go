package usecase_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	"github.com/mikiasgoitom/BazaarHub/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/BazaarHub/internal/usecase/contract"
	"github.com/mikiasgoitom/BazaarHub/internal/usecase/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func electronics() *entity.Category {
	return &entity.Category{ID: "cat-1", Name: "electronics", Slug: "electronics", Products: []string{}}
}

type catalogEnv struct {
	products   *mocks.ProductRepository
	categories *mocks.CategoryRepository
	storage    *mocks.Storage
	cache      *mocks.ProductCache
	tx         *mocks.TxRunner
	productUC  *usecase.ProductUsecase
	categoryUC *usecase.CategoryUsecase
}

func newCatalogEnv(products []*entity.Product, categories ...*entity.Category) *catalogEnv {
	env := &catalogEnv{
		products:   mocks.NewProductRepository(products...),
		categories: mocks.NewCategoryRepository(categories...),
		storage:    mocks.NewStorage(),
		cache:      mocks.NewProductCache(),
		tx:         &mocks.TxRunner{},
	}
	gen := &mocks.SequenceGenerator{}
	env.productUC = usecase.NewProductUsecase(env.products, env.categories, env.tx, env.storage, gen, mocks.Logger{})
	env.productUC.SetProductCache(env.cache)
	env.categoryUC = usecase.NewCategoryUsecase(env.categories, env.products, gen, mocks.Logger{})
	return env
}

func TestCreateProduct(t *testing.T) {
	env := newCatalogEnv(nil, electronics())
	ctx := context.Background()
	input := usecasecontract.ProductInput{Name: "Gaming Laptop", Price: 1200, Stock: 4, Category: "Electronics"}
	image := &entity.FileUpload{Filename: "gl.jpg", ContentType: "image/jpeg", Reader: strings.NewReader("img")}

	product, err := env.productUC.CreateProduct(ctx, input, image)
	require.NoError(t, err)
	assert.Equal(t, "gaming-laptop", product.Slug)
	assert.Equal(t, "electronics", product.Category)
	assert.True(t, strings.HasPrefix(product.Image.ID, "products/"))
	assert.Equal(t, 1, env.tx.Calls)

	category, err := env.categories.GetCategoryByName(ctx, "electronics")
	require.NoError(t, err)
	assert.Equal(t, []string{product.ID}, category.Products)

	_, err = env.productUC.CreateProduct(ctx, input, nil)
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	input.Name = "Toaster"
	input.Category = "kitchen"
	_, err = env.productUC.CreateProduct(ctx, input, nil)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestListProducts(t *testing.T) {
	env := newCatalogEnv([]*entity.Product{laptop(), phone()})

	products, page, err := env.productUC.ListProducts(context.Background(), entity.ProductListFilter{Search: "lap", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(1), page.Total)

	_, _, err = env.productUC.ListProducts(context.Background(), entity.ProductListFilter{Search: "zzz"})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestUpdateProduct(t *testing.T) {
	kitchen := &entity.Category{ID: "cat-2", Name: "kitchen", Slug: "kitchen"}
	cat := electronics()
	cat.Products = []string{"p-1"}
	env := newCatalogEnv([]*entity.Product{laptop(), phone()}, cat, kitchen)
	ctx := context.Background()
	require.NoError(t, env.cache.SetProduct(ctx, laptop()))

	_, err := env.productUC.UpdateProduct(ctx, "laptop", usecasecontract.ProductUpdate{}, nil)
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	taken := "Phone"
	_, err = env.productUC.UpdateProduct(ctx, "laptop", usecasecontract.ProductUpdate{Name: &taken}, nil)
	assert.Equal(t, http.StatusConflict, statusOf(t, err))

	_, err = env.productUC.UpdateProduct(ctx, "nope", usecasecontract.ProductUpdate{Name: &taken}, nil)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	name := "Ultra Laptop"
	price := 1500.0
	category := "Kitchen"
	product, err := env.productUC.UpdateProduct(ctx, "laptop", usecasecontract.ProductUpdate{Name: &name, Price: &price, Category: &category}, nil)
	require.NoError(t, err)
	assert.Equal(t, "ultra-laptop", product.Slug)
	assert.Equal(t, 1500.0, env.products.Stored("p-1").Price)
	assert.NotContains(t, env.cache.Items, "p-1")

	moved, err := env.categories.GetCategoryByName(ctx, "kitchen")
	require.NoError(t, err)
	assert.Equal(t, []string{"p-1"}, moved.Products)
	old, err := env.categories.GetCategoryByName(ctx, "electronics")
	require.NoError(t, err)
	assert.Empty(t, old.Products)
}

func TestDeleteProduct(t *testing.T) {
	p := laptop()
	p.Image = entity.Image{ID: "products/p-1.png"}
	cat := electronics()
	cat.Products = []string{"p-1"}
	env := newCatalogEnv([]*entity.Product{p}, cat)
	ctx := context.Background()

	assert.Equal(t, http.StatusNotFound, statusOf(t, env.productUC.DeleteProduct(ctx, "nope")))
	require.NoError(t, env.productUC.DeleteProduct(ctx, "laptop"))
	assert.Nil(t, env.products.Stored("p-1"))
	assert.Contains(t, env.storage.Deleted, "products/p-1.png")

	c, err := env.categories.GetCategoryByName(ctx, "electronics")
	require.NoError(t, err)
	assert.Empty(t, c.Products)
}

func TestCategoryLifecycle(t *testing.T) {
	env := newCatalogEnv([]*entity.Product{laptop()})
	ctx := context.Background()

	_, err := env.categoryUC.ListCategories(ctx)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	created, err := env.categoryUC.CreateCategory(ctx, "Home & Kitchen", "things for home")
	require.NoError(t, err)
	assert.Equal(t, "home & kitchen", created.Name)
	assert.Equal(t, "home-and-kitchen", created.Slug)

	_, err = env.categoryUC.CreateCategory(ctx, "HOME & KITCHEN", "")
	assert.Equal(t, http.StatusConflict, statusOf(t, err))

	require.NoError(t, env.categories.AddProduct(ctx, "home & kitchen", "p-1"))
	details, err := env.categoryUC.GetCategory(ctx, "home-and-kitchen")
	require.NoError(t, err)
	require.Len(t, details.Products, 1)
	assert.Equal(t, "Laptop", details.Products[0].Name)

	all, err := env.categoryUC.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Len(t, all[0].Products, 1)

	_, err = env.categoryUC.UpdateCategory(ctx, "home-and-kitchen", nil, nil)
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	name := "Kitchen"
	updated, err := env.categoryUC.UpdateCategory(ctx, "home-and-kitchen", &name, nil)
	require.NoError(t, err)
	assert.Equal(t, "kitchen", updated.Slug)

	_, err = env.categoryUC.GetCategory(ctx, "home-and-kitchen")
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	require.NoError(t, env.categoryUC.DeleteCategory(ctx, "kitchen"))
	assert.Equal(t, http.StatusNotFound, statusOf(t, env.categoryUC.DeleteCategory(ctx, "kitchen")))
}

func TestSeed(t *testing.T) {
	users := mocks.NewUserRepository()
	products := mocks.NewProductRepository()
	categories := mocks.NewCategoryRepository()
	gen := &mocks.SequenceGenerator{}
	ctx := context.Background()

	prod := usecase.NewSeedUsecase(users, products, categories, mocks.Hasher{}, gen, mocks.Config{Environment: "production"}, mocks.Logger{})
	_, err := prod.SeedUsers(ctx)
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))

	dev := usecase.NewSeedUsecase(users, products, categories, mocks.Hasher{}, gen, mocks.Config{}, mocks.Logger{})
	n, err := dev.SeedUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	admin, err := users.GetUserByUsername(ctx, "janesmith")
	require.NoError(t, err)
	assert.Equal(t, entity.UserRoleAdmin, admin.Role)
	assert.True(t, admin.IsAccountConfirmed)

	n, err = dev.SeedCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	n, err = dev.SeedProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	c, err := categories.GetCategoryBySlug(ctx, "fashion")
	require.NoError(t, err)
	assert.Len(t, c.Products, 2)
}
