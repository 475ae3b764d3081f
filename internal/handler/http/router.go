package http

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/contract"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	"github.com/mikiasgoitom/BazaarHub/internal/handler/http/middleware"
	"github.com/mikiasgoitom/BazaarHub/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/BazaarHub/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterDeps gathers what the HTTP layer needs from the composition root.
type RouterDeps struct {
	UserUsecase     usecasecontract.IUserUseCase
	EmailUsecase    usecasecontract.IEmailVerificationUC
	CartUsecase     usecasecontract.ICartUseCase
	OrderUsecase    usecasecontract.IOrderUseCase
	ProductUsecase  usecasecontract.IProductUseCase
	CategoryUsecase usecasecontract.ICategoryUseCase
	SeedUsecase     usecasecontract.ISeedUseCase
	JWTService      usecase.JWTService
	RandomGen       contract.IRandomGenerator
	Logger          *slog.Logger

	BaseURL            string
	AllowedOrigins     []string
	GoogleClientID     string
	GoogleClientSecret string
	AuthPerMinute      float64
}

type Router struct {
	userHandler     *UserHandler
	emailHandler    *EmailHandler
	authHandler     *AuthHandler
	cartHandler     *CartHandler
	orderHandler    *OrderHandler
	productHandler  *ProductHandler
	categoryHandler *CategoryHandler
	seedHandler     *SeedHandler
	jwtService      usecase.JWTService
	logger          *slog.Logger
	allowedOrigins  []string
	authPerMinute   float64
}

func NewRouter(deps RouterDeps) *Router {
	return &Router{
		userHandler:     NewUserHandler(deps.UserUsecase),
		emailHandler:    NewEmailHandler(deps.EmailUsecase),
		authHandler:     NewAuthHandler(deps.UserUsecase, deps.RandomGen, deps.GoogleClientID, deps.GoogleClientSecret, deps.BaseURL),
		cartHandler:     NewCartHandler(deps.CartUsecase),
		orderHandler:    NewOrderHandler(deps.OrderUsecase),
		productHandler:  NewProductHandler(deps.ProductUsecase),
		categoryHandler: NewCategoryHandler(deps.CategoryUsecase),
		seedHandler:     NewSeedHandler(deps.SeedUsecase),
		jwtService:      deps.JWTService,
		logger:          deps.Logger,
		allowedOrigins:  deps.AllowedOrigins,
		authPerMinute:   deps.AuthPerMinute,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(middleware.RequestLogger(r.logger), middleware.Metrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     r.allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authenticated := middleware.AuthMiddleware(r.jwtService)
	adminOnly := middleware.AuthMiddleware(r.jwtService, entity.UserRoleAdmin)

	v1 := router.Group("/api/v1")

	loginLimit := middleware.RateLimiter(middleware.NewLimiter(r.authPerMinute))

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.userHandler.Register)
		auth.POST("/login", loginLimit, r.userHandler.Login)
		auth.PATCH("/refresh-access-token", r.userHandler.RefreshAccessToken)
		auth.POST("/logout", authenticated, r.userHandler.Logout)

		// Google OAuth endpoints
		auth.GET("/google/login", r.authHandler.HandleGoogleLogin)
		auth.GET("/google/callback", r.authHandler.HandleGoogleCallback)
	}

	users := v1.Group("/users")
	{
		users.GET("/confirm-account", r.emailHandler.ConfirmAccount)
		users.GET("/resend-confirmation-email", r.emailHandler.ResendConfirmationEmail)
		users.GET("/profile/:userId", r.userHandler.GetUserProfile)
		users.GET("/forgot-password", r.userHandler.ForgotPassword)
		users.PATCH("/reset-password", r.userHandler.ResetPassword)
		users.PATCH("/confirm-change-email", r.userHandler.ConfirmChangeEmail)

		users.GET("", adminOnly, r.userHandler.GetAllUsers)
		users.GET("/:id", authenticated, r.userHandler.GetCurrentUser)
		users.PATCH("/change-password", authenticated, r.userHandler.ChangePassword)
		users.PUT("/change-email", authenticated, r.userHandler.ChangeEmail)
		users.PATCH("/:id", authenticated, r.userHandler.UpdateAccountDetails)
		users.DELETE("/:id", adminOnly, r.userHandler.DeleteUser)
		users.PATCH("/manage-user-status/:id", adminOnly, r.userHandler.ManageUserStatus)
	}

	carts := v1.Group("/carts")
	carts.Use(authenticated)
	{
		carts.POST("", r.cartHandler.AddItem)
		carts.GET("", r.cartHandler.GetCart)
		carts.PATCH("", r.cartHandler.UpdateItem)
		carts.DELETE("/remove-item/:productId", r.cartHandler.RemoveItem)
		carts.DELETE("/clear", r.cartHandler.ClearCart)
	}

	orders := v1.Group("/orders")
	orders.Use(authenticated)
	{
		orders.POST("", r.orderHandler.CreateOrder)
		orders.GET("", r.orderHandler.GetOrders)
		orders.GET("/:orderId", r.orderHandler.GetOrder)
		orders.PATCH("/:orderId", r.orderHandler.UpdateOrderStatus)
		orders.DELETE("/:orderId", adminOnly, r.orderHandler.DeleteOrder)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", r.categoryHandler.ListCategories)
		categories.GET("/:slug", r.categoryHandler.GetCategory)
		categories.POST("", adminOnly, r.categoryHandler.CreateCategory)
		categories.PATCH("/:slug", adminOnly, r.categoryHandler.UpdateCategory)
		categories.DELETE("/:slug", adminOnly, r.categoryHandler.DeleteCategory)
	}

	products := v1.Group("/products")
	{
		products.GET("", r.productHandler.ListProducts)
		products.GET("/:slug", r.productHandler.GetProduct)
		products.POST("", adminOnly, r.productHandler.CreateProduct)
		products.PATCH("/:slug", adminOnly, r.productHandler.UpdateProduct)
		products.DELETE("/:slug", adminOnly, r.productHandler.DeleteProduct)
	}

	// Fixture loading; refused outside the dev environment.
	seed := v1.Group("/seed")
	{
		seed.POST("/users", r.seedHandler.SeedUsers)
		seed.POST("/categories", r.seedHandler.SeedCategories)
		seed.POST("/products", r.seedHandler.SeedProducts)
	}
}
