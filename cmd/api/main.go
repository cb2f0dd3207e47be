package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/imrishuroy/go-eshop-backend/internal/auth"
	"github.com/imrishuroy/go-eshop-backend/internal/aws"
	"github.com/imrishuroy/go-eshop-backend/internal/catalog"
	"github.com/imrishuroy/go-eshop-backend/internal/config"
	"github.com/imrishuroy/go-eshop-backend/internal/handlers"
	"github.com/imrishuroy/go-eshop-backend/internal/logging"
	"github.com/imrishuroy/go-eshop-backend/internal/metrics"
	"github.com/imrishuroy/go-eshop-backend/internal/middleware"
	"github.com/imrishuroy/go-eshop-backend/internal/orders"
	"github.com/imrishuroy/go-eshop-backend/internal/storage"
	"github.com/imrishuroy/go-eshop-backend/internal/users"
)

func setupRouter(cfg *config.Config, clients *aws.AWSClients, logger *zap.Logger) (*gin.Engine, error) {
	tokens := auth.NewTokenManager(cfg.JWTSecret)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	categoryStore := catalog.NewCategoryStore(clients.DynamoDB, cfg.CategoriesTable)
	productStore := catalog.NewProductStore(clients.DynamoDB, cfg.ProductsTable)
	productCache := catalog.NewCachedProducts(productStore, rdb, logger)
	userStore := users.NewStore(clients.DynamoDB, cfg.UsersTable)

	orderStore := orders.NewStore(clients.DynamoDB, cfg.OrdersTable)
	itemStore := orders.NewItemStore(clients.DynamoDB, cfg.OrderItemsTable)
	publisher := metrics.NewPublisher(clients.CloudWatch, logger)

	assembler := orders.NewAssembler(orderStore, itemStore, productCache, publisher, logger)
	query := orders.NewQueryService(orderStore, itemStore, productCache, categoryStore, userStore)
	lifecycle := orders.NewLifecycle(orderStore, itemStore, logger)
	sales := orders.NewSalesAggregator(orderStore)

	uploads, err := storage.NewUploads(cfg.UploadsDir, "/public/uploads")
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging.RequestLogger(logger))
	r.Use(cors.Default())
	r.Use(middleware.NewRateLimiter(rate.Limit(10), 20).Handler())
	r.Use(auth.Middleware(tokens, cfg.BasePath))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.Static("/public/uploads", uploads.Dir())

	api := r.Group(cfg.BasePath)
	handlers.RegisterCategoriesRoutes(api.Group("/categories"), handlers.CategoriesConfig{
		Categories: categoryStore,
		Log:        logger,
	})
	handlers.RegisterProductsRoutes(api.Group("/products"), handlers.ProductsConfig{
		Products:   productStore,
		Categories: categoryStore,
		Cache:      productCache,
		Uploads:    uploads,
		Log:        logger,
	})
	handlers.RegisterUsersRoutes(api.Group("/users"), handlers.UsersConfig{
		Users:  userStore,
		Tokens: tokens,
		Log:    logger,
	})
	handlers.RegisterOrdersRoutes(api.Group("/orders"), handlers.OrdersConfig{
		Assembler: assembler,
		Query:     query,
		Lifecycle: lifecycle,
		Sales:     sales,
		Log:       logger,
	})

	return r, nil
}

func main() {
	logger, err := logging.New(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	clients, err := aws.NewAWSClients(context.Background())
	if err != nil {
		logger.Fatal("failed to init aws clients", zap.Error(err))
	}

	r, err := setupRouter(cfg, clients, logger)
	if err != nil {
		logger.Fatal("failed to set up router", zap.Error(err))
	}

	// RUN_LOCAL=true runs a plain HTTP server for development.
	if os.Getenv("RUN_LOCAL") == "true" {
		addr := ":" + cfg.Port
		logger.Info("running local server", zap.String("addr", addr))
		if err := r.Run(addr); err != nil {
			logger.Fatal("failed to run local server", zap.Error(err))
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
