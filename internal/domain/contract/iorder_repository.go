package contract

import (
	"context"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
)

type IOrderRepository interface {
	CreateOrder(ctx context.Context, order *entity.Order) error
	GetOrderByID(ctx context.Context, id string) (*entity.Order, error)
	ListOrders(ctx context.Context, filter entity.OrderListFilter) ([]*entity.Order, int64, error)
	UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error
	DeleteOrder(ctx context.Context, id string) error
}
