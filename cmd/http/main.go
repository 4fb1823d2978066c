package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rafaelleal24/sales/internal/adapters/config"
	"github.com/rafaelleal24/sales/internal/adapters/http"
	"github.com/rafaelleal24/sales/internal/adapters/http/controllers"
	"github.com/rafaelleal24/sales/internal/adapters/mongo"
	"github.com/rafaelleal24/sales/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/sales/internal/adapters/outbox"
	"github.com/rafaelleal24/sales/internal/adapters/rabbitmq"
	"github.com/rafaelleal24/sales/internal/adapters/redis"
	"github.com/rafaelleal24/sales/internal/core/domain"
	"github.com/rafaelleal24/sales/internal/core/logger"
	"github.com/rafaelleal24/sales/internal/core/port"
	"github.com/rafaelleal24/sales/internal/core/service"
	"github.com/rafaelleal24/sales/internal/core/systemuser"
)

// @title       Sales API
// @version     1.0
// @description Product catalog, reservations and invoicing API

// @host     localhost:8080
// @BasePath /

//go:generate go tool swag init -d ../.. -g cmd/http/main.go -o ../../docs --parseInternal

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

	// cancelled on SIGINT/SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// initialize database connection
	mongoClient, err := mongo.NewConnection(cfg.Mongo)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to MongoDB", err, nil)
	}
	defer mongo.Disconnect(mongoClient)
	logger.Info(ctx, "Connected to MongoDB", map[string]any{"database": cfg.Mongo.Database})

	// initialize redis connection
	redisClient, err := redis.NewConnection(cfg.Redis)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to Redis", err, nil)
	}
	defer redisClient.Close()
	logger.Info(ctx, "Connected to Redis", nil)

	// initialize rabbitmq connection
	broker, err := rabbitmq.NewRabbitMQAdapter(cfg.RabbitMQ)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to RabbitMQ", err, nil)
	}
	defer broker.Close()
	logger.Info(ctx, "Connected to RabbitMQ", nil)

	// initialize database and repos
	database := mongoClient.Database(cfg.Mongo.Database)
	txManager := mongo.NewTransactionManager(mongoClient)
	outboxRepository := repository.NewOutboxRepository(database)
	productRepository := repository.NewProductRepository(database, outboxRepository, txManager)
	clientRepository := repository.NewClientRepository(database)
	reservationRepository := repository.NewReservationRepository(database, outboxRepository)
	invoiceRepository := repository.NewInvoiceRepository(database, outboxRepository)

	// caches and rate limiter
	productCache := redis.NewCache[domain.Product](redisClient, "product-cache")
	invoiceCache := redis.NewCache[domain.Invoice](redisClient, "invoice-cache")
	idempotencyCache := redis.NewCache[service.IdempotencyEntry[domain.Invoice]](redisClient, "idempotency-cache")
	rateLimiter := redis.NewRateLimiter(redisClient)

	// outbox handler stops with ctx
	outboxHandler := outbox.NewHandler(outboxRepository, broker, cfg.Outbox)
	go outboxHandler.Start(ctx)
	logger.Info(ctx, "Outbox handler started", map[string]any{"interval": cfg.Outbox.Interval.String(), "batch_size": cfg.Outbox.BatchSize})

	// services
	taxPolicy := newTaxPolicy(cfg.Tax)
	systemContext := systemuser.NewContext(domain.ID(cfg.System.DefaultClientID))
	clientService := service.NewClientService(clientRepository)
	productService := service.NewProductService(productRepository, productCache, cfg.Cache.ProductTTL)
	suggestionService := service.NewSuggestionService(productRepository, cfg.System.SuggestionCandidates)
	addProductHandler := service.NewAddProductCommandHandler(reservationRepository, productRepository, suggestionService, clientRepository, systemContext)
	reservationService := service.NewReservationService(reservationRepository, clientRepository, addProductHandler, txManager)
	idempotencyService := service.NewIdempotencyService(idempotencyCache, cfg.Idempotency.TTL, cfg.Idempotency.PollInterval, cfg.Idempotency.PollTimeout)
	bookKeeper := service.NewBookKeeper(service.NewInvoiceFactory())
	invoiceService := service.NewInvoiceService(invoiceRepository, productRepository, clientRepository, bookKeeper, taxPolicy, invoiceCache, cfg.Cache.InvoiceTTL, idempotencyService, txManager)

	// controllers
	clientController := controllers.NewClientController(clientService)
	productController := controllers.NewProductController(productService)
	reservationController := controllers.NewReservationController(reservationService)
	invoiceController := controllers.NewInvoiceController(invoiceService)
	healthController := controllers.NewHealthController([]controllers.HealthChecker{
		{Name: "mongodb", Check: func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }},
		{Name: "redis", Check: func(ctx context.Context) error { return redisClient.Ping(ctx) }},
		{Name: "rabbitmq", Check: func(ctx context.Context) error { return broker.HealthCheck() }},
	})

	// router
	router := http.NewRouter(healthController, clientController, productController, reservationController, invoiceController, rateLimiter, cfg.HTTP)

	logger.Info(ctx, "Starting HTTP server", map[string]any{"addr": cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port})
	if err := router.ListenAndServe(ctx, cfg.HTTP); err != nil {
		logger.Fatal(ctx, "Failed to start HTTP server", err, nil)
	}

	logger.Info(context.Background(), "Shutting down", nil)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := logger.Shutdown(shutdownCtx); err != nil {
		fmt.Println("logger shutdown error: " + err.Error())
	}
}

func newTaxPolicy(cfg config.TaxConfig) port.TaxPolicy {
	if cfg.Policy == "flat" {
		return service.NewFlatTaxPolicy(cfg.FlatBasisPoints, cfg.FlatDescription)
	}
	return service.NewDefaultTaxPolicy()
}
