package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/BazaarHub/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/BazaarHub/internal/usecase/contract"
)

type CartHandlerInterface interface {
	AddItem(*gin.Context)
	GetCart(*gin.Context)
	UpdateItem(*gin.Context)
	RemoveItem(*gin.Context)
	ClearCart(*gin.Context)
}

var _ CartHandlerInterface = (*CartHandler)(nil)

type CartHandler struct {
	cartUsecase usecasecontract.ICartUseCase
}

func NewCartHandler(cartUsecase usecasecontract.ICartUseCase) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase}
}

func (h *CartHandler) AddItem(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.AddCartItemRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if _, err := h.cartUsecase.AddItem(c.Request.Context(), actor.UserID, req.ProductID, req.Quantity); err != nil {
		HandleError(c, err)
		return
	}
	h.respondWithCart(c, actor.UserID, http.StatusCreated, "item added to cart")
}

func (h *CartHandler) GetCart(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	h.respondWithCart(c, actor.UserID, http.StatusOK, "cart fetched")
}

// UpdateItem increments or decrements a line by quantity.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateCartItemRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if _, err := h.cartUsecase.UpdateItem(c.Request.Context(), actor.UserID, req.ProductID, req.Quantity, req.Action); err != nil {
		HandleError(c, err)
		return
	}
	h.respondWithCart(c, actor.UserID, http.StatusOK, "cart updated")
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if _, err := h.cartUsecase.RemoveItem(c.Request.Context(), actor.UserID, c.Param("productId")); err != nil {
		HandleError(c, err)
		return
	}
	h.respondWithCart(c, actor.UserID, http.StatusOK, "item removed from cart")
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.cartUsecase.ClearCart(c.Request.Context(), actor.UserID); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "cart cleared")
}

func (h *CartHandler) respondWithCart(c *gin.Context, userID string, status int, message string) {
	details, err := h.cartUsecase.GetCart(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, status, message, dto.ToCartResponse(details))
}
