package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/apperror"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/contract"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/BazaarHub/internal/usecase/contract"
	"github.com/shopspring/decimal"
)

const errOrderNotFound = "order not found"

// stockError names the cart line that could not be fulfilled.
type stockError struct {
	productID string
	err       error
}

func (e *stockError) Error() string { return fmt.Sprintf("product %s: %v", e.productID, e.err) }
func (e *stockError) Unwrap() error { return e.err }

// OrderUsecase converts carts into orders and manages their status.
type OrderUsecase struct {
	orderRepo     contract.IOrderRepository
	cartRepo      contract.ICartRepository
	productRepo   contract.IProductRepository
	products      *productLookup
	txRunner      contract.ITransactionRunner
	publisher     contract.IEventPublisher
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
	now           func() time.Time
}

// NewOrderUsecase wires the order use case. publisher may be nil.
func NewOrderUsecase(
	orderRepo contract.IOrderRepository,
	cartRepo contract.ICartRepository,
	productRepo contract.IProductRepository,
	txRunner contract.ITransactionRunner,
	publisher contract.IEventPublisher,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:     orderRepo,
		cartRepo:      cartRepo,
		productRepo:   productRepo,
		products:      &productLookup{repo: productRepo, logger: logger},
		txRunner:      txRunner,
		publisher:     publisher,
		uuidGenerator: uuidGenerator,
		logger:        logger,
		now:           time.Now,
	}
}

var _ usecasecontract.IOrderUseCase = (*OrderUsecase)(nil)

func (uc *OrderUsecase) SetProductCache(cache contract.IProductCache) {
	uc.products.cache = cache
}

// CreateOrder snapshots the user's cart at current prices, reserves stock,
// stores the order and empties the cart.
func (uc *OrderUsecase) CreateOrder(ctx context.Context, userID string) (*entity.Order, error) {
	cart, err := uc.cartRepo.GetCartByUserID(ctx, userID)
	if err != nil && !errors.Is(err, contract.ErrCartNotFound) {
		return nil, internalError(uc.logger, "get cart", err)
	}
	if cart.IsEmpty() {
		return nil, apperror.BadRequest("cart is empty")
	}

	products, err := uc.productRepo.GetProductsByIDs(ctx, cart.ProductIDs())
	if err != nil {
		return nil, internalError(uc.logger, "load cart products", err)
	}
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	total := decimal.Zero
	items := make([]entity.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		product, ok := byID[line.ProductID]
		if !ok {
			return nil, apperror.BadRequest(fmt.Sprintf("product %s no longer exists", line.ProductID))
		}
		if line.Quantity < 1 {
			return nil, apperror.BadRequest(fmt.Sprintf("invalid quantity %d for %s", line.Quantity, product.Name))
		}
		if line.Quantity > product.Stock {
			return nil, apperror.BadRequest(fmt.Sprintf("insufficient stock for %s", product.Name))
		}
		price := decimal.NewFromFloat(product.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		items = append(items, entity.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
		})
	}

	now := uc.now().UTC()
	order := &entity.Order{
		ID:         uc.uuidGenerator.NewUUID(),
		UserID:     userID,
		Products:   items,
		TotalPrice: total.Round(2).InexactFloat64(),
		Status:     entity.OrderStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = uc.txRunner.WithinTransaction(ctx, func(ctx context.Context) error {
		return uc.placeOrder(ctx, order)
	})
	if err != nil {
		var se *stockError
		if errors.As(err, &se) {
			if errors.Is(err, contract.ErrProductNotFound) {
				return nil, apperror.BadRequest(fmt.Sprintf("product %s no longer exists", se.productID))
			}
			if errors.Is(err, contract.ErrInsufficientStock) {
				return nil, apperror.BadRequest(fmt.Sprintf("insufficient stock for product %s", se.productID))
			}
		}
		return nil, internalError(uc.logger, "create order", err)
	}

	uc.products.invalidate(ctx, cart.ProductIDs()...)
	uc.publish(ctx, entity.OrderEventCreated, order)
	return order, nil
}

// placeOrder runs inside the transaction runner. Stock already taken is given
// back when a later step fails so the sequence also holds without transactions.
func (uc *OrderUsecase) placeOrder(ctx context.Context, order *entity.Order) error {
	reserved := make([]entity.OrderItem, 0, len(order.Products))
	release := func() {
		for _, it := range reserved {
			if err := uc.productRepo.IncrementStock(ctx, it.ProductID, it.Quantity); err != nil {
				uc.logger.Errorf("failed to release stock of %s: %v", it.ProductID, err)
			}
		}
	}

	for _, it := range order.Products {
		if err := uc.productRepo.DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
			release()
			return &stockError{productID: it.ProductID, err: err}
		}
		reserved = append(reserved, it)
	}

	if err := uc.orderRepo.CreateOrder(ctx, order); err != nil {
		release()
		return err
	}

	if err := uc.cartRepo.ClearCart(ctx, order.UserID); err != nil {
		uc.logger.Warnf("retrying cart clear for %s: %v", order.UserID, err)
		if err := uc.cartRepo.ClearCart(ctx, order.UserID); err != nil {
			uc.logger.Errorf("order %s created but cart of %s was not cleared: %v", order.ID, order.UserID, err)
		}
	}
	return nil
}

// GetOrder returns an order with its products resolved.
func (uc *OrderUsecase) GetOrder(ctx context.Context, orderID string, actor entity.Actor) (*usecasecontract.OrderDetails, error) {
	order, err := uc.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && order.UserID != actor.UserID {
		return nil, apperror.Forbidden("you are not allowed to view this order")
	}

	ids := make([]string, 0, len(order.Products))
	for _, it := range order.Products {
		ids = append(ids, it.ProductID)
	}
	byID, err := uc.products.byIDs(ctx, ids)
	if err != nil {
		return nil, internalError(uc.logger, "load order products", err)
	}
	lines := make([]usecasecontract.OrderLine, 0, len(order.Products))
	for _, it := range order.Products {
		lines = append(lines, usecasecontract.OrderLine{
			Product:   byID[it.ProductID],
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return &usecasecontract.OrderDetails{Order: order, Lines: lines}, nil
}

// GetOrders pages orders. Non-admins always see only their own.
func (uc *OrderUsecase) GetOrders(ctx context.Context, actor entity.Actor, filter entity.OrderListFilter) ([]*entity.Order, entity.Pagination, error) {
	if !actor.IsAdmin() {
		filter.UserID = actor.UserID
	}
	orders, total, err := uc.orderRepo.ListOrders(ctx, filter)
	if err != nil {
		return nil, entity.Pagination{}, internalError(uc.logger, "list orders", err)
	}
	if len(orders) == 0 {
		return nil, entity.Pagination{}, apperror.NotFound("no orders found")
	}
	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = len(orders)
	}
	return orders, entity.NewPagination(page, limit, total), nil
}

// UpdateOrderStatus sets any status for admins. Other users may only cancel
// their own orders.
func (uc *OrderUsecase) UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus, actor entity.Actor) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, apperror.BadRequest("invalid order status")
	}
	if !actor.IsAdmin() && status != entity.OrderStatusCancelled {
		return nil, apperror.Forbidden("you can only cancel orders")
	}
	order, err := uc.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && order.UserID != actor.UserID {
		return nil, apperror.Forbidden("you can only cancel your own orders")
	}

	if err := uc.orderRepo.UpdateOrderStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, contract.ErrOrderNotFound) {
			return nil, apperror.NotFound(errOrderNotFound)
		}
		return nil, internalError(uc.logger, "update order status", err)
	}
	order.Status = status
	order.UpdatedAt = uc.now().UTC()
	uc.publish(ctx, entity.OrderEventStatusChanged, order)
	return order, nil
}

func (uc *OrderUsecase) DeleteOrder(ctx context.Context, orderID string) error {
	if err := uc.orderRepo.DeleteOrder(ctx, orderID); err != nil {
		if errors.Is(err, contract.ErrOrderNotFound) {
			return apperror.NotFound(errOrderNotFound)
		}
		return internalError(uc.logger, "delete order", err)
	}
	return nil
}

func (uc *OrderUsecase) loadOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, contract.ErrOrderNotFound) {
			return nil, apperror.NotFound(errOrderNotFound)
		}
		return nil, internalError(uc.logger, "get order", err)
	}
	return order, nil
}

// publish emits an order event. Delivery failures do not fail the request.
func (uc *OrderUsecase) publish(ctx context.Context, eventType string, order *entity.Order) {
	if uc.publisher == nil {
		return
	}
	event := entity.OrderEvent{
		Type:       eventType,
		OrderID:    order.ID,
		UserID:     order.UserID,
		Status:     order.Status,
		TotalPrice: order.TotalPrice,
		OccurredAt: uc.now().UTC(),
	}
	if err := uc.publisher.PublishOrderEvent(ctx, event); err != nil {
		uc.logger.Errorf("failed to publish %s for order %s: %v", eventType, order.ID, err)
	}
}
