package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	"github.com/mikiasgoitom/BazaarHub/internal/handler/http/dto"
	"github.com/mikiasgoitom/BazaarHub/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/BazaarHub/internal/usecase/contract"
)

type OrderHandlerInterface interface {
	CreateOrder(*gin.Context)
	GetOrder(*gin.Context)
	GetOrders(*gin.Context)
	UpdateOrderStatus(*gin.Context)
	DeleteOrder(*gin.Context)
}

var _ OrderHandlerInterface = (*OrderHandler)(nil)

type OrderHandler struct {
	orderUsecase usecasecontract.IOrderUseCase
}

func NewOrderHandler(orderUsecase usecasecontract.IOrderUseCase) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase}
}

// CreateOrder converts the caller's cart into an order.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	order, err := h.orderUsecase.CreateOrder(c.Request.Context(), actor.UserID)
	if err != nil {
		HandleError(c, err)
		return
	}
	metrics.OrdersCreated.Inc()
	SuccessHandler(c, http.StatusCreated, "order created successfully", dto.ToOrderResponse(order))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	details, err := h.orderUsecase.GetOrder(c.Request.Context(), c.Param("orderId"), actor)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "order fetched", dto.ToOrderDetailsResponse(details))
}

// GetOrders pages orders; admins may narrow by ?userId=.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	filter := entity.OrderListFilter{
		UserID: c.Query("userId"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	}
	orders, page, err := h.orderUsecase.GetOrders(c.Request.Context(), actor, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "orders fetched", dto.PagedData{Items: dto.ToOrderResponses(orders), Pagination: page})
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	status := entity.OrderStatus(c.Query("status"))
	order, err := h.orderUsecase.UpdateOrderStatus(c.Request.Context(), c.Param("orderId"), status, actor)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "order status updated", dto.ToOrderResponse(order))
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.orderUsecase.DeleteOrder(c.Request.Context(), c.Param("orderId")); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "order deleted successfully")
}
