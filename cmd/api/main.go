package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/contract"
	handlerHttp "github.com/mikiasgoitom/BazaarHub/internal/handler/http"
	redisclient "github.com/mikiasgoitom/BazaarHub/internal/infrastructure/cache"
	"github.com/mikiasgoitom/BazaarHub/internal/infrastructure/config"
	database "github.com/mikiasgoitom/BazaarHub/internal/infrastructure/database"
	"github.com/mikiasgoitom/BazaarHub/internal/infrastructure/external_services"
	"github.com/mikiasgoitom/BazaarHub/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/BazaarHub/internal/infrastructure/logger"
	"github.com/mikiasgoitom/BazaarHub/internal/infrastructure/messaging/kafka"
	passwordservice "github.com/mikiasgoitom/BazaarHub/internal/infrastructure/password_service"
	randomgenerator "github.com/mikiasgoitom/BazaarHub/internal/infrastructure/random_generator"
	"github.com/mikiasgoitom/BazaarHub/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/BazaarHub/internal/infrastructure/storage/minio"
	"github.com/mikiasgoitom/BazaarHub/internal/infrastructure/store"
	"github.com/mikiasgoitom/BazaarHub/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/BazaarHub/internal/infrastructure/validator"
	"github.com/mikiasgoitom/BazaarHub/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	baseLogger := logger.New(cfg.LogLevel)
	slog.SetDefault(baseLogger)
	appLogger := logger.NewAppLogger(baseLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(ctx, cfg.Mongo.URI)
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(); err != nil {
			appLogger.Errorf("Failed to disconnect MongoDB: %v", err)
		}
	}()
	db := mongoClient.Database(cfg.Mongo.DBName)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		appLogger.Fatalf("Failed to ensure indexes: %v", err)
	}

	var txRunner contract.ITransactionRunner = database.NewDirectRunner()
	if cfg.Mongo.Transactions {
		txRunner = database.NewMongoTxRunner(mongoClient.Client)
	}

	// Register custom validators
	validator.RegisterCustomValidators()

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection(database.UsersCollection))
	productRepo := mongodb.NewMongoProductRepository(db.Collection(database.ProductsCollection))
	categoryRepo := mongodb.NewMongoCategoryRepository(db.Collection(database.CategoriesCollection))
	cartRepo := mongodb.NewMongoCartRepository(db.Collection(database.CartsCollection))
	orderRepo := mongodb.NewMongoOrderRepository(db.Collection(database.OrdersCollection))

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtManager := jwt.NewJWTManager(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL, cfg.App.ProjectName)
	jwtService := jwt.NewJWTService(jwtManager)
	mailService := external_services.NewEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.AppPassword, cfg.SMTP.From)
	randomGenerator := randomgenerator.NewRandomGenerator()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Optional: blob storage for avatars and product images
	var fileStorage contract.IFileStorage
	if cfg.Storage.Endpoint != "" {
		mc, err := minio.Dial(cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.UseSSL)
		if err != nil {
			appLogger.Fatalf("Failed to create storage client: %v", err)
		}
		storageClient, err := minio.NewClient(ctx, mc, cfg.Storage.Bucket, cfg.Storage.PublicURL)
		if err != nil {
			appLogger.Fatalf("Failed to prepare storage bucket: %v", err)
		}
		fileStorage = storageClient
	} else {
		appLogger.Warnf("MINIO_ENDPOINT not set, file uploads are disabled")
	}

	// Optional: order events
	var publisher contract.IEventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		orderEvents := kafka.NewOrderEventPublisher(cfg.Kafka.Brokers, cfg.Kafka.OrderTopic)
		defer func() {
			if err := orderEvents.Close(); err != nil {
				appLogger.Errorf("Failed to close kafka writer: %v", err)
			}
		}()
		publisher = orderEvents
	}

	// Dependency Injection: Usecases
	emailUsecase := usecase.NewEmailVerificationUseCase(userRepo, mailService, randomGenerator, hasher, cfg, appLogger)
	userUsecase := usecase.NewUserUsecase(userRepo, emailUsecase, hasher, jwtService, mailService, fileStorage, appLogger, cfg, appValidator, uuidGenerator, randomGenerator)
	cartUsecase := usecase.NewCartUsecase(cartRepo, productRepo, uuidGenerator, appLogger)
	orderUsecase := usecase.NewOrderUsecase(orderRepo, cartRepo, productRepo, txRunner, publisher, uuidGenerator, appLogger)
	productUsecase := usecase.NewProductUsecase(productRepo, categoryRepo, txRunner, fileStorage, uuidGenerator, appLogger)
	categoryUsecase := usecase.NewCategoryUsecase(categoryRepo, productRepo, uuidGenerator, appLogger)
	seedUsecase := usecase.NewSeedUsecase(userRepo, productRepo, categoryRepo, hasher, uuidGenerator, cfg, appLogger)

	// Optional Dependency Injection: Redis cache
	if cfg.Redis.URL != "" {
		rdb, err := redisclient.NewRedisFromURL(ctx, cfg.Redis.URL)
		if err != nil {
			appLogger.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisclient.Close(rdb)
		productCache := store.NewProductCacheStore(rdb, cfg.Redis.TTL)
		cartUsecase.SetProductCache(productCache)
		orderUsecase.SetProductCache(productCache)
		productUsecase.SetProductCache(productCache)
		categoryUsecase.SetProductCache(productCache)
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// Setup API routes
	appRouter := handlerHttp.NewRouter(handlerHttp.RouterDeps{
		UserUsecase:        userUsecase,
		EmailUsecase:       emailUsecase,
		CartUsecase:        cartUsecase,
		OrderUsecase:       orderUsecase,
		ProductUsecase:     productUsecase,
		CategoryUsecase:    categoryUsecase,
		SeedUsecase:        seedUsecase,
		JWTService:         jwtService,
		RandomGen:          randomGenerator,
		Logger:             baseLogger,
		BaseURL:            cfg.App.BaseURL,
		AllowedOrigins:     cfg.HTTP.AllowedOrigins,
		GoogleClientID:     cfg.OAuth.ClientID,
		GoogleClientSecret: cfg.OAuth.ClientSecret,
		AuthPerMinute:      cfg.RateLimit.AuthPerMinute,
	})
	appRouter.SetupRoutes(router)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTP.Port,
		Handler: router,
	}

	go func() {
		appLogger.Infof("Server running on port %s", cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Errorf("Failed to start server: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Infof("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("Graceful shutdown failed: %v", err)
	}
}
