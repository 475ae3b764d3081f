package mocks

import (
	"context"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/apperror"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/BazaarHub/internal/usecase/contract"
)

// MockCartUsecase keeps a single cart in memory.
type MockCartUsecase struct {
	Err     error
	Cart    entity.Cart
	Product *entity.Product

	LastUserID string
	LastAction entity.CartAction
}

var _ usecasecontract.ICartUseCase = (*MockCartUsecase)(nil)

func NewMockCartUsecase() *MockCartUsecase {
	return &MockCartUsecase{
		Product: &entity.Product{ID: "p-1", Name: "Laptop", Slug: "laptop", Price: 999.99, Stock: 5},
	}
}

func (m *MockCartUsecase) AddItem(ctx context.Context, userID, productID string, quantity int) (*entity.Cart, error) {
	m.LastUserID = userID
	if m.Err != nil {
		return nil, m.Err
	}
	m.Cart.UserID = userID
	m.Cart.Items = append(m.Cart.Items, entity.CartItem{ProductID: productID, Quantity: quantity})
	return &m.Cart, nil
}

func (m *MockCartUsecase) UpdateItem(ctx context.Context, userID, productID string, quantity int, action entity.CartAction) (*entity.Cart, error) {
	m.LastUserID, m.LastAction = userID, action
	if m.Err != nil {
		return nil, m.Err
	}
	return &m.Cart, nil
}

func (m *MockCartUsecase) RemoveItem(ctx context.Context, userID, productID string) (*entity.Cart, error) {
	m.LastUserID = userID
	if m.Err != nil {
		return nil, m.Err
	}
	return &m.Cart, nil
}

func (m *MockCartUsecase) ClearCart(ctx context.Context, userID string) error {
	m.LastUserID = userID
	if m.Err != nil {
		return m.Err
	}
	m.Cart.Items = nil
	return nil
}

func (m *MockCartUsecase) GetCart(ctx context.Context, userID string) (*usecasecontract.CartDetails, error) {
	m.LastUserID = userID
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Cart.UserID == "" {
		return nil, apperror.NotFound("cart not found")
	}
	lines := make([]usecasecontract.CartLine, 0, len(m.Cart.Items))
	for _, it := range m.Cart.Items {
		var p *entity.Product
		if m.Product != nil && it.ProductID == m.Product.ID {
			p = m.Product
		}
		lines = append(lines, usecasecontract.CartLine{Product: p, Quantity: it.Quantity})
	}
	cart := m.Cart
	return &usecasecontract.CartDetails{Cart: &cart, Lines: lines}, nil
}

// MockOrderUsecase answers with a fixed order.
type MockOrderUsecase struct {
	Err   error
	Order entity.Order

	LastActor  entity.Actor
	LastFilter entity.OrderListFilter
	LastStatus entity.OrderStatus
}

var _ usecasecontract.IOrderUseCase = (*MockOrderUsecase)(nil)

func NewMockOrderUsecase() *MockOrderUsecase {
	return &MockOrderUsecase{
		Order: entity.Order{
			ID:         "o-1",
			UserID:     "mock-user-id",
			Products:   []entity.OrderItem{{ProductID: "p-1", Quantity: 2, UnitPrice: 999.99}},
			TotalPrice: 1999.98,
			Status:     entity.OrderStatusPending,
		},
	}
}

func (m *MockOrderUsecase) order() *entity.Order {
	o := m.Order
	return &o
}

func (m *MockOrderUsecase) CreateOrder(ctx context.Context, userID string) (*entity.Order, error) {
	m.LastActor = entity.Actor{UserID: userID}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.order(), nil
}

func (m *MockOrderUsecase) GetOrder(ctx context.Context, orderID string, actor entity.Actor) (*usecasecontract.OrderDetails, error) {
	m.LastActor = actor
	if m.Err != nil {
		return nil, m.Err
	}
	o := m.order()
	lines := make([]usecasecontract.OrderLine, 0, len(o.Products))
	for _, it := range o.Products {
		lines = append(lines, usecasecontract.OrderLine{
			Product:   &entity.Product{ID: it.ProductID, Name: "Laptop"},
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return &usecasecontract.OrderDetails{Order: o, Lines: lines}, nil
}

func (m *MockOrderUsecase) GetOrders(ctx context.Context, actor entity.Actor, filter entity.OrderListFilter) ([]*entity.Order, entity.Pagination, error) {
	m.LastActor, m.LastFilter = actor, filter
	if m.Err != nil {
		return nil, entity.Pagination{}, m.Err
	}
	return []*entity.Order{m.order()}, entity.NewPagination(1, 10, 1), nil
}

func (m *MockOrderUsecase) UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus, actor entity.Actor) (*entity.Order, error) {
	m.LastActor, m.LastStatus = actor, status
	if m.Err != nil {
		return nil, m.Err
	}
	o := m.order()
	o.Status = status
	return o, nil
}

func (m *MockOrderUsecase) DeleteOrder(ctx context.Context, orderID string) error {
	return m.Err
}
