package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/apperror"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	handler "github.com/mikiasgoitom/BazaarHub/internal/handler/http"
	"github.com/mikiasgoitom/BazaarHub/internal/handler/http/dto"
	"github.com/mikiasgoitom/BazaarHub/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCartRouter(h handler.CartHandlerInterface) *gin.Engine {
	r := gin.New()
	r.GET("/anonymous/carts", h.GetCart)
	carts := r.Group("/carts", asUser("mock-user-id", entity.UserRoleUser))
	carts.POST("", h.AddItem)
	carts.GET("", h.GetCart)
	carts.PATCH("", h.UpdateItem)
	carts.DELETE("/remove-item/:productId", h.RemoveItem)
	carts.DELETE("/clear", h.ClearCart)
	return r
}

func TestCart_AddItemReturnsResolvedCart(t *testing.T) {
	mockUsecase := mocks.NewMockCartUsecase()
	r := setupCartRouter(handler.NewCartHandler(mockUsecase))

	w := doJSON(r, http.MethodPost, "/carts", dto.AddCartItemRequest{ProductID: "p-1", Quantity: 2})

	require.Equal(t, http.StatusCreated, w.Code)
	var cart dto.CartResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	require.NotNil(t, cart.Items[0].Product)
	assert.Equal(t, "Laptop", cart.Items[0].Product.Name)
	assert.Equal(t, "mock-user-id", mockUsecase.LastUserID)
}

func TestCart_AddItemRejectsZeroQuantity(t *testing.T) {
	r := setupCartRouter(handler.NewCartHandler(mocks.NewMockCartUsecase()))

	w := doJSON(r, http.MethodPost, "/carts", dto.AddCartItemRequest{ProductID: "p-1", Quantity: 0})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCart_AddItemConflict(t *testing.T) {
	mockUsecase := mocks.NewMockCartUsecase()
	mockUsecase.Err = apperror.Conflict("product already in cart")
	r := setupCartRouter(handler.NewCartHandler(mockUsecase))

	w := doJSON(r, http.MethodPost, "/carts", dto.AddCartItemRequest{ProductID: "p-1", Quantity: 1})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "product already in cart", decode(t, w).Message)
}

func TestCart_UpdatePassesAction(t *testing.T) {
	mockUsecase := mocks.NewMockCartUsecase()
	r := setupCartRouter(handler.NewCartHandler(mockUsecase))
	doJSON(r, http.MethodPost, "/carts", dto.AddCartItemRequest{ProductID: "p-1", Quantity: 1})

	w := doJSON(r, http.MethodPatch, "/carts", dto.UpdateCartItemRequest{ProductID: "p-1", Quantity: 1, Action: entity.CartActionDecrement})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entity.CartActionDecrement, mockUsecase.LastAction)
}

func TestCart_GetMissingCart(t *testing.T) {
	r := setupCartRouter(handler.NewCartHandler(mocks.NewMockCartUsecase()))

	w := doJSON(r, http.MethodGet, "/carts", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCart_RequiresIdentity(t *testing.T) {
	r := setupCartRouter(handler.NewCartHandler(mocks.NewMockCartUsecase()))

	w := doJSON(r, http.MethodGet, "/anonymous/carts", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCart_Clear(t *testing.T) {
	mockUsecase := mocks.NewMockCartUsecase()
	r := setupCartRouter(handler.NewCartHandler(mockUsecase))
	doJSON(r, http.MethodPost, "/carts", dto.AddCartItemRequest{ProductID: "p-1", Quantity: 1})

	w := doJSON(r, http.MethodDelete, "/carts/clear", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, mockUsecase.Cart.Items)
}

func setupOrderRouter(h handler.OrderHandlerInterface, role entity.UserRole) *gin.Engine {
	r := gin.New()
	orders := r.Group("/orders", asUser("mock-user-id", role))
	orders.POST("", h.CreateOrder)
	orders.GET("", h.GetOrders)
	orders.GET("/:orderId", h.GetOrder)
	orders.PATCH("/:orderId", h.UpdateOrderStatus)
	orders.DELETE("/:orderId", h.DeleteOrder)
	return r
}

func TestOrder_Create(t *testing.T) {
	mockUsecase := mocks.NewMockOrderUsecase()
	r := setupOrderRouter(handler.NewOrderHandler(mockUsecase), entity.UserRoleUser)

	w := doJSON(r, http.MethodPost, "/orders", nil)

	require.Equal(t, http.StatusCreated, w.Code)
	var order dto.OrderResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &order))
	assert.Equal(t, 1999.98, order.TotalPrice)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "mock-user-id", mockUsecase.LastActor.UserID)
}

func TestOrder_CreateFromEmptyCart(t *testing.T) {
	mockUsecase := mocks.NewMockOrderUsecase()
	mockUsecase.Err = apperror.BadRequest("cart is empty")
	r := setupOrderRouter(handler.NewOrderHandler(mockUsecase), entity.UserRoleUser)

	w := doJSON(r, http.MethodPost, "/orders", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrder_GetPassesActorAndResolvesProducts(t *testing.T) {
	mockUsecase := mocks.NewMockOrderUsecase()
	r := setupOrderRouter(handler.NewOrderHandler(mockUsecase), entity.UserRoleAdmin)

	w := doJSON(r, http.MethodGet, "/orders/o-1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockUsecase.LastActor.IsAdmin())
	var order dto.OrderResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &order))
	require.Len(t, order.Products, 1)
	require.NotNil(t, order.Products[0].Product)
	assert.Equal(t, "Laptop", order.Products[0].Product.Name)
}

func TestOrder_GetForbidden(t *testing.T) {
	mockUsecase := mocks.NewMockOrderUsecase()
	mockUsecase.Err = apperror.Forbidden("you are not allowed to view this order")
	r := setupOrderRouter(handler.NewOrderHandler(mockUsecase), entity.UserRoleUser)

	w := doJSON(r, http.MethodGet, "/orders/o-1", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOrder_ListPassesFilter(t *testing.T) {
	mockUsecase := mocks.NewMockOrderUsecase()
	r := setupOrderRouter(handler.NewOrderHandler(mockUsecase), entity.UserRoleAdmin)

	w := doJSON(r, http.MethodGet, "/orders?page=2&limit=5&userId=u-7", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entity.OrderListFilter{UserID: "u-7", Page: 2, Limit: 5}, mockUsecase.LastFilter)
	var page dto.PagedData
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &page))
	assert.Equal(t, int64(1), page.Pagination.Total)
}

func TestOrder_UpdateStatusFromQuery(t *testing.T) {
	mockUsecase := mocks.NewMockOrderUsecase()
	r := setupOrderRouter(handler.NewOrderHandler(mockUsecase), entity.UserRoleUser)

	w := doJSON(r, http.MethodPatch, "/orders/o-1?status=cancelled", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entity.OrderStatusCancelled, mockUsecase.LastStatus)
}
