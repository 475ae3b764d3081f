package dto

import (
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/BazaarHub/internal/usecase/contract"
)

type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type UpdateCartItemRequest struct {
	ProductID string            `json:"productId" binding:"required"`
	Quantity  int               `json:"quantity" binding:"required,gt=0"`
	Action    entity.CartAction `json:"action" binding:"required"`
}

type CartLineResponse struct {
	ProductID string          `json:"productId"`
	Product   *entity.Product `json:"product"`
	Quantity  int             `json:"quantity"`
}

type CartResponse struct {
	ID        string             `json:"id"`
	UserID    string             `json:"userId"`
	Items     []CartLineResponse `json:"items"`
	CreatedAt string             `json:"createdAt"`
	UpdatedAt string             `json:"updatedAt"`
}

// ToCartResponse lists every line; Product is null for lines whose product was removed.
func ToCartResponse(details *usecasecontract.CartDetails) CartResponse {
	cart := details.Cart
	items := make([]CartLineResponse, 0, len(cart.Items))
	for i, it := range cart.Items {
		line := CartLineResponse{ProductID: it.ProductID, Quantity: it.Quantity}
		if i < len(details.Lines) {
			line.Product = details.Lines[i].Product
		}
		items = append(items, line)
	}
	return CartResponse{
		ID:        cart.ID,
		UserID:    cart.UserID,
		Items:     items,
		CreatedAt: formatTime(cart.CreatedAt),
		UpdatedAt: formatTime(cart.UpdatedAt),
	}
}
