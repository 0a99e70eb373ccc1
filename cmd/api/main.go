package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "checkout/api/swagger" // swagger docs
	"checkout/internal/config"
	"checkout/internal/database"
	"checkout/internal/handler"
	"checkout/internal/middleware"
	"checkout/internal/observability"
	"checkout/internal/payment"
	"checkout/internal/payment/gateway"
	"checkout/internal/repository"
	"checkout/internal/service"
	"checkout/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           Checkout API
// @version         1.0
// @description     Price calculation and purchase API with country VAT, coupons and pluggable payment processors.
// @host            localhost:8080
// @BasePath        /
func main() {
	dotenvErr := config.LoadDotEnv("configs/.env")
	cfg := config.Load()

	log, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if dotenvErr != nil {
		log.Info("no configs/.env file loaded", zap.Error(dotenvErr))
	}

	if err := run(cfg, log); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := newCatalog(ctx, cfg, log)
	if err != nil {
		return err
	}

	// Set up WebSocket Hub
	wsHub := websocket.NewHub(log)
	go wsHub.Run(ctx)

	// Set up payment processors
	dispatcher := payment.NewDispatcher(
		payment.NewPaypalAdapter(gateway.NewPaypalPaymentProcessor(cfg.PaypalMaxCents)),
		payment.NewStripeAdapter(gateway.NewStripePaymentProcessor(cfg.StripeMinAmount), cfg.StripeMinAmount),
	)

	// Set up dependencies (Repository -> Service -> Handler)
	priceCalculator := service.NewPriceCalculator(catalog, service.NewTaxNumberValidator())
	purchaseService := service.NewPurchaseService(priceCalculator, dispatcher, wsHub)
	catalogService := service.NewCatalogService(catalog.Products, catalog.Taxes)

	checkoutHandler := handler.NewCheckoutHandler(priceCalculator, purchaseService, dispatcher)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(middleware.RequestLogger(log), middleware.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", middleware.RequestIDHeader}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// Purchase event stream
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c)
	})

	// API Routing
	checkoutHandler.RegisterRoutes(router.Group(""))
	catalogHandler.RegisterRoutes(router.Group(""))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr), zap.Strings("payment_processors", dispatcher.Names()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newCatalog(ctx context.Context, cfg config.Config, log *zap.Logger) (*repository.Catalog, error) {
	switch cfg.CatalogDriver {
	case config.CatalogDriverMemory:
		seed := database.DefaultSeed()
		log.Info("using in-memory catalog")
		return repository.NewMemoryCatalog(seed.Products, seed.Taxes, seed.Coupons), nil
	case config.CatalogDriverPostgres:
		db, err := database.NewConnection(cfg.DSN(), log)
		if err != nil {
			return nil, fmt.Errorf("database connection failed: %w", err)
		}
		log.Info("connected to PostgreSQL")

		if cfg.Seed {
			if err := database.Seed(ctx, db, database.DefaultSeed()); err != nil {
				return nil, err
			}
		}
		return repository.NewCatalog(db), nil
	default:
		return nil, fmt.Errorf("unknown catalog driver %q", cfg.CatalogDriver)
	}
}
