package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/sustainafood/grocery-orders/gen/oas"
	"github.com/sustainafood/grocery-orders/internal/domain/order"
	"github.com/sustainafood/grocery-orders/internal/domain/payment"
	"github.com/sustainafood/grocery-orders/internal/gateway/sandbox"
	"github.com/sustainafood/grocery-orders/internal/gateway/stripe"
	"github.com/sustainafood/grocery-orders/internal/handler"
	"github.com/sustainafood/grocery-orders/internal/invoice"
	"github.com/sustainafood/grocery-orders/internal/storage/postgres"
	"github.com/sustainafood/grocery-orders/pkg/health"
	"github.com/sustainafood/grocery-orders/pkg/httpmiddleware"
)

const serviceName = "grocery-orders"

// Run creates all dependencies, starts the HTTP server, and handles graceful
// shutdown. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing", zap.String("addr", cfg.Addr))

	// PostgreSQL pool + migrations.
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return errors.Wrap(err, "create db pool")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	healthSvc := health.New()
	healthSvc.AddReadinessCheck("postgres", 5*time.Second, health.PingCheck(pool))
	healthSvc.AddLivenessCheck("goroutines", time.Second, health.GoroutineCountCheck(10000))
	healthSvc.AddLivenessCheck("gc-pause", time.Second, health.GCMaxPauseCheck(time.Second))
	healthSvc.Start(ctx, 10*time.Second)
	healthSvc.SetReady(true)

	gateway, provider, err := newGateway(lg, cfg.Payment)
	if err != nil {
		return errors.Wrap(err, "create payment gateway")
	}

	orderService, err := order.NewService(
		postgres.NewCatalogStore(pool),
		postgres.NewOrderRepository(pool),
		gateway,
		invoice.NewRenderer(cfg.Invoice.StoreName, cfg.Invoice.Tagline),
		order.WithMeterProvider(m.MeterProvider()),
		order.WithTracerProvider(m.TracerProvider()),
	)
	if err != nil {
		return errors.Wrap(err, "create order service")
	}

	h := handler.NewHandler(handler.HandlerConfig{
		PublishableKey: cfg.Payment.StripePublishableKey,
		Provider:       provider,
		Currency:       cfg.Payment.Currency,
	}, orderService)
	securityHandler := handler.NewSecurityHandler([]byte(cfg.Auth.JWTSecret))

	oasServer, err := handler.NewServer(h, securityHandler,
		oas.WithTracerProvider(m.TracerProvider()),
		oas.WithMeterProvider(m.MeterProvider()),
	)
	if err != nil {
		return err
	}

	// Router: health endpoints + generated API routes on one server.
	routeFinder := httpmiddleware.MakeRouteFinder(oasServer)
	router := chi.NewRouter()
	router.NotFound(handler.NotFound)
	router.Get("/livez", healthSvc.LiveEndpoint)
	router.Get("/readyz", healthSvc.ReadyEndpoint)
	router.Mount("/api", oasServer)

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		Addr:              cfg.Addr,
		Handler: httpmiddleware.Wrap(router,
			httpmiddleware.Recovery(),
			httpmiddleware.CORS(httpmiddleware.CORSConfig{
				AllowOrigins:     cfg.CORS.Origins,
				AllowHeaders:     []string{"Content-Type", "Authorization"},
				ExposeHeaders:    []string{"Content-Disposition", httpmiddleware.RequestIDHeader},
				AllowCredentials: cfg.CORS.AllowCredentials,
				MaxAge:           86400,
			}),
			httpmiddleware.RateLimitWithCleanup(ctx, httpmiddleware.RateLimitConfig{
				Max:    cfg.RateLimit.Max,
				Window: cfg.RateLimit.Window,
			}),
			httpmiddleware.RequestID(),
			httpmiddleware.InjectLogger(zctx.From(ctx)),
			httpmiddleware.Instrument(serviceName, routeFinder, m),
			httpmiddleware.LogRequests(routeFinder),
			httpmiddleware.Labeler(routeFinder),
		),
	}

	// Graceful shutdown: wait for context cancellation, drain, then stop.
	shutdownDone := make(chan struct{})
	go func() {
		<-ctx.Done()
		healthSvc.SetReady(false)
		lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
		time.Sleep(cfg.Graceful.ReadinessDelay)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("Server shutdown error", zap.Error(err))
		}
		healthSvc.Stop()
		close(shutdownDone)
	}()

	lg.Info("Server listening",
		zap.String("addr", cfg.Addr),
		zap.String("payment_provider", provider),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "server")
	}
	<-shutdownDone
	return nil
}

// newGateway builds the configured payment provider. The sandbox is used only
// when explicitly enabled.
func newGateway(lg *zap.Logger, cfg PaymentConfig) (payment.Gateway, string, error) {
	if !cfg.Sandbox {
		gw, err := stripe.New(cfg.StripeSecretKey, cfg.Currency, lg)
		if err != nil {
			return nil, "", err
		}
		return gw, "stripe", nil
	}

	lg.Warn("Payment sandbox enabled, card payments are not charged",
		zap.String("auto_settle", cfg.SandboxAutoSettle),
	)
	var opts []sandbox.Option
	if cfg.SandboxAutoSettle != "" {
		opts = append(opts, sandbox.WithAutoSettle(payment.Status(cfg.SandboxAutoSettle)))
	}
	return sandbox.New(opts...), "sandbox", nil
}
