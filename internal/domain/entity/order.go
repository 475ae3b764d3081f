package entity

import "time"

// Order is a priced snapshot of a cart at conversion time.
type Order struct {
	ID         string      `bson:"_id,omitempty" json:"id"`
	UserID     string      `bson:"user_id" json:"userId"`
	Products   []OrderItem `bson:"products" json:"products"`
	TotalPrice float64     `bson:"total_price" json:"totalPrice"`
	Status     OrderStatus `bson:"status" json:"status"`
	CreatedAt  time.Time   `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time   `bson:"updated_at" json:"updatedAt"`
}

type OrderItem struct {
	ProductID string  `bson:"product_id" json:"productId"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	UnitPrice float64 `bson:"unit_price" json:"unitPrice"`
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderListFilter selects orders for listing. An empty UserID means all users.
type OrderListFilter struct {
	UserID string
	Page   int
	Limit  int
}

// OrderEvent is published when an order is created or changes status.
type OrderEvent struct {
	Type       string      `json:"type"`
	OrderID    string      `json:"orderId"`
	UserID     string      `json:"userId"`
	Status     OrderStatus `json:"status"`
	TotalPrice float64     `json:"totalPrice"`
	OccurredAt time.Time   `json:"occurredAt"`
}

const (
	OrderEventCreated       = "order.created"
	OrderEventStatusChanged = "order.status_changed"
)
