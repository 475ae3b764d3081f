package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
)

type OrderLine struct {
	Product   *entity.Product
	Quantity  int
	UnitPrice float64
}

type OrderDetails struct {
	Order *entity.Order
	Lines []OrderLine
}

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, userID string) (*entity.Order, error)
	GetOrder(ctx context.Context, orderID string, actor entity.Actor) (*OrderDetails, error)
	GetOrders(ctx context.Context, actor entity.Actor, filter entity.OrderListFilter) ([]*entity.Order, entity.Pagination, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus, actor entity.Actor) (*entity.Order, error)
	DeleteOrder(ctx context.Context, orderID string) error
}
