package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/apperror"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/contract"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/BazaarHub/internal/usecase/contract"
)

const (
	errCartNotFound    = "cart not found"
	errProductNotFound = "product not found"
	errExceedsStock    = "requested quantity exceeds available stock"
)

// CartUsecase manages the per-user cart. Stock checks read the product store
// directly; only the cart view goes through the product cache.
type CartUsecase struct {
	cartRepo      contract.ICartRepository
	productRepo   contract.IProductRepository
	products      *productLookup
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
	now           func() time.Time
}

func NewCartUsecase(
	cartRepo contract.ICartRepository,
	productRepo contract.IProductRepository,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:      cartRepo,
		productRepo:   productRepo,
		products:      &productLookup{repo: productRepo, logger: logger},
		uuidGenerator: uuidGenerator,
		logger:        logger,
		now:           time.Now,
	}
}

var _ usecasecontract.ICartUseCase = (*CartUsecase)(nil)

func (uc *CartUsecase) SetProductCache(cache contract.IProductCache) {
	uc.products.cache = cache
}

// AddItem puts a new product line in the user's cart, creating the cart on first use.
func (uc *CartUsecase) AddItem(ctx context.Context, userID, productID string, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, apperror.BadRequest("quantity must be at least 1")
	}
	product, err := uc.fetchProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if quantity > product.Stock {
		return nil, apperror.BadRequest(errExceedsStock)
	}

	now := uc.now().UTC()
	cart := &entity.Cart{
		ID:        uc.uuidGenerator.NewUUID(),
		UserID:    userID,
		Items:     []entity.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.cartRepo.EnsureCart(ctx, cart); err != nil {
		return nil, internalError(uc.logger, "ensure cart", err)
	}
	err = uc.cartRepo.AddItem(ctx, userID, entity.CartItem{ProductID: product.ID, Quantity: quantity})
	if err != nil {
		if errors.Is(err, contract.ErrCartItemExists) {
			return nil, apperror.Conflict("product is already in the cart")
		}
		return nil, internalError(uc.logger, "add cart item", err)
	}
	return uc.loadCart(ctx, userID)
}

// UpdateItem adds or subtracts quantity from an existing line. The stock check
// applies to the requested delta, not to the resulting quantity.
func (uc *CartUsecase) UpdateItem(ctx context.Context, userID, productID string, quantity int, action entity.CartAction) (*entity.Cart, error) {
	if !action.IsValid() {
		return nil, apperror.BadRequest("action must be either increment or decrement")
	}
	if quantity < 1 {
		return nil, apperror.BadRequest("quantity must be at least 1")
	}
	product, err := uc.fetchProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if quantity > product.Stock {
		return nil, apperror.BadRequest(errExceedsStock)
	}

	cart, err := uc.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	item, ok := cart.Item(productID)
	if !ok {
		return nil, apperror.NotFound("product is not in the cart")
	}

	delta := quantity
	if action == entity.CartActionDecrement {
		delta = -quantity
	}
	if item.Quantity+delta < 1 {
		uc.logger.Warnf("cart line %s of user %s drops to %d", productID, userID, item.Quantity+delta)
	}
	if err := uc.cartRepo.IncrementItem(ctx, userID, productID, delta); err != nil {
		if errors.Is(err, contract.ErrCartItemNotFound) {
			return nil, apperror.NotFound("product is not in the cart")
		}
		return nil, internalError(uc.logger, "update cart item", err)
	}
	return uc.loadCart(ctx, userID)
}

func (uc *CartUsecase) RemoveItem(ctx context.Context, userID, productID string) (*entity.Cart, error) {
	cart, err := uc.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, apperror.BadRequest("cart is empty")
	}
	if _, ok := cart.Item(productID); !ok {
		return nil, apperror.NotFound("product is not in the cart")
	}
	if err := uc.cartRepo.RemoveItem(ctx, userID, productID); err != nil {
		if errors.Is(err, contract.ErrCartItemNotFound) {
			return nil, apperror.NotFound("product is not in the cart")
		}
		return nil, internalError(uc.logger, "remove cart item", err)
	}
	return uc.loadCart(ctx, userID)
}

func (uc *CartUsecase) ClearCart(ctx context.Context, userID string) error {
	cart, err := uc.loadCart(ctx, userID)
	if err != nil {
		return err
	}
	if cart.IsEmpty() {
		return apperror.BadRequest("cart is already empty")
	}
	if err := uc.cartRepo.ClearCart(ctx, userID); err != nil {
		return internalError(uc.logger, "clear cart", err)
	}
	return nil
}

// GetCart returns the cart with each line joined to its product.
func (uc *CartUsecase) GetCart(ctx context.Context, userID string) (*usecasecontract.CartDetails, error) {
	cart, err := uc.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	byID, err := uc.products.byIDs(ctx, cart.ProductIDs())
	if err != nil {
		return nil, internalError(uc.logger, "load cart products", err)
	}
	lines := make([]usecasecontract.CartLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, usecasecontract.CartLine{Product: byID[item.ProductID], Quantity: item.Quantity})
	}
	return &usecasecontract.CartDetails{Cart: cart, Lines: lines}, nil
}

func (uc *CartUsecase) fetchProduct(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := uc.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, contract.ErrProductNotFound) {
			return nil, apperror.NotFound(errProductNotFound)
		}
		return nil, internalError(uc.logger, "get product", err)
	}
	return product, nil
}

func (uc *CartUsecase) loadCart(ctx context.Context, userID string) (*entity.Cart, error) {
	cart, err := uc.cartRepo.GetCartByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, contract.ErrCartNotFound) {
			return nil, apperror.NotFound(errCartNotFound)
		}
		return nil, internalError(uc.logger, "get cart", err)
	}
	return cart, nil
}
