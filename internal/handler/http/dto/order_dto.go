package dto

import (
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/BazaarHub/internal/usecase/contract"
)

type OrderLineResponse struct {
	ProductID string          `json:"productId"`
	Product   *entity.Product `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice float64         `json:"unitPrice"`
}

type OrderResponse struct {
	ID         string              `json:"id"`
	UserID     string              `json:"userId"`
	Products   []OrderLineResponse `json:"products"`
	TotalPrice float64             `json:"totalPrice"`
	Status     entity.OrderStatus  `json:"status"`
	CreatedAt  string              `json:"createdAt"`
	UpdatedAt  string              `json:"updatedAt"`
}

func ToOrderResponse(order *entity.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(order.Products))
	for _, it := range order.Products {
		lines = append(lines, OrderLineResponse{ProductID: it.ProductID, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	return OrderResponse{
		ID:         order.ID,
		UserID:     order.UserID,
		Products:   lines,
		TotalPrice: order.TotalPrice,
		Status:     order.Status,
		CreatedAt:  formatTime(order.CreatedAt),
		UpdatedAt:  formatTime(order.UpdatedAt),
	}
}

// ToOrderDetailsResponse fills in the resolved products.
func ToOrderDetailsResponse(details *usecasecontract.OrderDetails) OrderResponse {
	resp := ToOrderResponse(details.Order)
	for i := range resp.Products {
		if i < len(details.Lines) {
			resp.Products[i].Product = details.Lines[i].Product
		}
	}
	return resp
}

func ToOrderResponses(orders []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToOrderResponse(o))
	}
	return out
}
