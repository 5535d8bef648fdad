package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aaravmahajanofficial/turbokart-storefront/docs"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/config"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/health"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/metrics"
	repository "github.com/aaravmahajanofficial/turbokart-storefront/internal/repositories"
	service "github.com/aaravmahajanofficial/turbokart-storefront/internal/services"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/storage"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/storage/memory"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/storage/postgres"
	redisStorage "github.com/aaravmahajanofficial/turbokart-storefront/internal/storage/redis"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/telemetry"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/utils"
	"github.com/aaravmahajanofficial/turbokart-storefront/pkg/coinbase"
	"github.com/aaravmahajanofficial/turbokart-storefront/pkg/sendgrid"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//	@title			TurboKart Storefront API
//	@version		1.0
//	@description	Catalog, cart and crypto checkout for the TurboKart go-kart store.
//	@host			localhost:8080
//	@BasePath		/

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	// Tracing setup
	shutdownTracing, err := telemetry.Setup(ctx, &cfg.Otel)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Storage setup
	store, err := newStorage(ctx, cfg)
	if err != nil {
		slog.Error("❌ Error accessing the storage", slog.String("driver", cfg.Storage.Driver), slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("⚠️ Error closing storage", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Storage closed")
		}
	}()

	coinbaseClient, err := coinbase.NewClient(coinbase.Config{
		APIKey:     cfg.Coinbase.APIKey,
		BaseURL:    cfg.Coinbase.BaseURL,
		APIVersion: cfg.Coinbase.APIVersion,
		Timeout:    cfg.Coinbase.Timeout,
	})
	if err != nil {
		slog.Error("❌ Error creating the Coinbase Commerce client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var emailService sendgrid.EmailService
	if cfg.SendGridEnabled() {
		emailService = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	} else {
		slog.Warn("SendGrid is not configured, order confirmation emails are disabled")
	}

	validate := utils.NewValidator()

	catalogService := service.NewCatalogService(repository.NewProductRepo())
	productHandler := handlers.NewProductHandler(catalogService)
	cartService := service.NewCartService(store, catalogService, cfg.Storage.SnapshotTTL)
	cartHandler := handlers.NewCartHandler(cartService, validate)
	chargeGateway := service.NewChargeGateway(coinbaseClient, cfg.Coinbase.WebhookSecret)
	paymentHandler := handlers.NewPaymentHandler(chargeGateway)
	checkoutService := service.NewCheckoutService(cartService, chargeGateway, store, validate, service.CheckoutConfig{
		PublicBaseURL:   cfg.PublicBaseURL,
		Currency:        cfg.Coinbase.Currency,
		PendingOrderTTL: cfg.Storage.SnapshotTTL,
	})
	confirmationService := service.NewConfirmationService(store, chargeGateway, cartService, service.NewOrderNotifier(emailService))
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, confirmationService)
	clientIdentity := middleware.NewClientIdentity(cfg.Env == "production")

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{
		Storage: store,
	})
	if err != nil {
		slog.Error("❌ Error creating health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("driver", cfg.Storage.Driver), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{slug}", productHandler.GetProduct())
	routerMux.Handle("GET /api/v1/cart", clientIdentity.Identify(cartHandler.GetCart()))
	routerMux.Handle("DELETE /api/v1/cart", clientIdentity.Identify(cartHandler.ClearCart()))
	routerMux.Handle("POST /api/v1/cart/items", clientIdentity.Identify(cartHandler.AddItem()))
	routerMux.Handle("PUT /api/v1/cart/items/{id}", clientIdentity.Identify(cartHandler.UpdateQuantity()))
	routerMux.Handle("DELETE /api/v1/cart/items/{id}", clientIdentity.Identify(cartHandler.RemoveItem()))
	routerMux.Handle("POST /api/v1/cart/drawer", clientIdentity.Identify(cartHandler.SetDrawer()))
	routerMux.Handle("POST /api/v1/checkout", clientIdentity.Identify(checkoutHandler.Checkout()))
	routerMux.Handle("GET /api/v1/checkout/confirmation", clientIdentity.Identify(checkoutHandler.Confirmation()))
	routerMux.HandleFunc("POST /checkout/create-charge", paymentHandler.CreateCharge())
	routerMux.HandleFunc("GET /checkout/charges/{id}", paymentHandler.GetCharge())
	routerMux.HandleFunc("POST /webhooks/coinbase", paymentHandler.HandleCoinbaseWebhook())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "turbokart-storefront")

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {

		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}

}

func newStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {

	switch cfg.Storage.Driver {
	case config.StorageDriverRedis:
		client, err := redisStorage.NewClient(ctx, &cfg.RedisConnect)
		if err != nil {
			return nil, err
		}
		return redisStorage.New(client, cfg.Storage.Timeout), nil

	case config.StorageDriverPostgres:
		db, err := postgres.Open(ctx, &cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return postgres.New(db, cfg.Storage.Timeout), nil

	case config.StorageDriverMemory:
		slog.Warn("Using in-memory storage, carts are lost on restart")
		return memory.New(), nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
