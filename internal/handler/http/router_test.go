package http_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	handler "github.com/mikiasgoitom/BazaarHub/internal/handler/http"
	"github.com/mikiasgoitom/BazaarHub/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
)

func setupFullRouter() (*gin.Engine, *mocks.MockOrderUsecase) {
	orders := mocks.NewMockOrderUsecase()
	r := gin.New()
	handler.NewRouter(handler.RouterDeps{
		UserUsecase:    mocks.NewMockUserUsecase(),
		CartUsecase:    mocks.NewMockCartUsecase(),
		OrderUsecase:   orders,
		JWTService:     mocks.NewMockJWTService(),
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		BaseURL:        "http://localhost:3000",
		AllowedOrigins: []string{"*"},
		AuthPerMinute:  100,
	}).SetupRoutes(r)
	return r, orders
}

func request(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_CartRequiresToken(t *testing.T) {
	r, _ := setupFullRouter()

	assert.Equal(t, http.StatusUnauthorized, request(r, http.MethodGet, "/api/v1/carts", "").Code)
}

func TestRouter_OrderDeleteIsAdminOnly(t *testing.T) {
	r, _ := setupFullRouter()

	assert.Equal(t, http.StatusForbidden, request(r, http.MethodDelete, "/api/v1/orders/o-1", "user-token").Code)
	assert.Equal(t, http.StatusOK, request(r, http.MethodDelete, "/api/v1/orders/o-1", "admin-token").Code)
}

func TestRouter_OrderListUsesTokenIdentity(t *testing.T) {
	r, orders := setupFullRouter()

	w := request(r, http.MethodGet, "/api/v1/orders", "user-token")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "mock-user-id", orders.LastActor.UserID)
	assert.False(t, orders.LastActor.IsAdmin())
}

func TestRouter_UserListIsAdminOnly(t *testing.T) {
	r, _ := setupFullRouter()

	assert.Equal(t, http.StatusUnauthorized, request(r, http.MethodGet, "/api/v1/users", "").Code)
	assert.Equal(t, http.StatusForbidden, request(r, http.MethodGet, "/api/v1/users", "user-token").Code)
	assert.Equal(t, http.StatusOK, request(r, http.MethodGet, "/api/v1/users", "admin-token").Code)
}

func TestRouter_PublicProfile(t *testing.T) {
	r, _ := setupFullRouter()

	assert.Equal(t, http.StatusOK, request(r, http.MethodGet, "/api/v1/users/profile/mock-user-id", "").Code)
}

func TestRouter_Metrics(t *testing.T) {
	r, _ := setupFullRouter()
	request(r, http.MethodGet, "/api/v1/users/profile/mock-user-id", "")

	w := request(r, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bazaarhub_http_requests_total")
}
