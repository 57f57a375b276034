package main

import (
	"context"
	"encoding/hex"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ordermart/ordermart/config"
	"github.com/ordermart/ordermart/internal/auth"
	"github.com/ordermart/ordermart/internal/gateway"
	handler "github.com/ordermart/ordermart/internal/handler/http"
	"github.com/ordermart/ordermart/internal/logger"
	"github.com/ordermart/ordermart/internal/repository"
	"github.com/ordermart/ordermart/internal/repository/postgres"
	"github.com/ordermart/ordermart/internal/service"
	"github.com/ordermart/ordermart/internal/worker"
	"go.uber.org/zap"
)

const authTokenKey = "f53ac685bbceebd75043e6be2e06ee07"

const sweepInterval = time.Minute

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Log.Sync()

	// create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var orderRepo service.OrderRepository
	var customerRepo service.CustomerRepository

	if cfg.DatabaseDSN != "" {
		// initialize database
		db, err := postgres.New(ctx, cfg.DatabaseDSN)
		if err != nil {
			logger.Log.Fatal("Error initializing database", zap.Error(err))
		}
		defer db.Close()

		// migrate database
		if err := db.Migrate(); err != nil {
			logger.Log.Fatal("Error migrating database", zap.Error(err))
		}

		orderRepo = repository.NewOrderRepository(db)
		customerRepo = repository.NewCustomerRepository(db)
	} else {
		// no DSN configured, run on in-memory stores
		logger.Log.Info("no database DSN, using in-memory repositories")
		orderRepo = repository.NewMemoryOrderRepository()
		customerRepo = repository.NewMemoryCustomerRepository()
	}

	var paymentGateway service.PaymentGateway
	if cfg.GatewayAddr != "" {
		paymentGateway = gateway.NewClient(cfg.GatewayAddr)
	} else {
		logger.Log.Info("no payment gateway address, using fake gateway")
		paymentGateway = gateway.NewFakeGateway(true)
	}

	tokenKey, err := hex.DecodeString(authTokenKey)
	if err != nil {
		logger.Log.Fatal("Error extracting token key", zap.Error(err))
	}
	token := auth.NewAuthToken(tokenKey)

	// dependency injection
	// customer
	customerService := service.NewCustomerService(customerRepo, token)
	customerHandler := handler.NewCustomerHandler(customerService)

	// order
	orderService := service.NewOrderService(orderRepo)
	orderHandler := handler.NewOrderHandler(orderService)

	// payment
	payService := service.NewPayOrderService(orderRepo, paymentGateway)
	paymentHandler := handler.NewPaymentHandler(payService)

	// stale order sweeper
	sweeper := worker.NewOrderSweeper(orderService, sweepInterval, cfg.StaleAfter)
	go sweeper.Run(ctx)

	router := chi.NewRouter()

	router.Use(handler.Logging(logger.Log))

	router.Post("/api/customer/register", customerHandler.RegisterCustomer())
	router.Post("/api/customer/login", customerHandler.LoginCustomer())

	// routes that require authentication
	router.Group(func(group chi.Router) {
		group.Use(handler.AuthMiddleware(token))
		group.Post("/api/orders", orderHandler.CreateOrder())
		group.Get("/api/orders", orderHandler.ListOrders())
		group.Get("/api/orders/{id}", orderHandler.GetOrder())
		group.Post("/api/orders/{id}/lines", orderHandler.AddLine())
		group.Delete("/api/orders/{id}/lines/{productID}", orderHandler.RemoveLine())
		group.Post("/api/orders/{id}/pay", paymentHandler.PayOrder())
		group.Post("/api/orders/{id}/cancel", orderHandler.CancelOrder())
		group.Get("/api/customer/summary", orderHandler.GetCustomerSummary())
	})

	logger.Log.Info("Running server", zap.String("addr", cfg.ServerAddr))

	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		logger.Log.Fatal("Error starting server", zap.Error(err))
	}
}
