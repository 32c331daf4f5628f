package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aussiebroadwan/voicelab/internal/gateway/backend"
	httpapi "github.com/aussiebroadwan/voicelab/internal/gateway/http"
	"github.com/aussiebroadwan/voicelab/internal/gateway/service"
	"github.com/aussiebroadwan/voicelab/internal/gateway/tokenstore"
	"github.com/aussiebroadwan/voicelab/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// BuildVersion is overridden at build time via -ldflags "-X ...app.BuildVersion=...".
var BuildVersion = "v0.1.0"

// Application encapsulates the gateway with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	registry *prometheus.Registry
	backend  *backend.Client
	tokens   *tokenstore.Store

	// Services
	sessionService  *service.SessionService
	resourceService *service.ResourceService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "voicelab-gateway",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.BackendURL == "" {
		return nil, errors.New("backend url is required")
	}

	otel.SetTextMapPropagator(propagation.TraceContext{})

	app.initMetrics()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the fully wired router, mainly for tests.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("gateway starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"backend", app.cfg.BackendURL,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down gateway...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
		return err
	}

	app.logger.Info("gateway stopped")
	return nil
}

// initMetrics creates a private registry with the Go runtime collectors
func (app *Application) initMetrics() {
	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// initServices initializes the backend client and business logic services
func (app *Application) initServices() {
	app.backend = backend.NewClient(app.cfg.BackendURL, app.cfg.BackendTimeout,
		backend.WithMetrics(app.registry),
	)
	app.tokens = tokenstore.New(app.cfg.CookieSecure)

	app.sessionService = &service.SessionService{Backend: app.backend}
	app.resourceService = &service.ResourceService{
		Backend:       app.backend,
		MaxTextLength: app.cfg.MaxTextLength,
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		httpapi.Options{
			BuildVersion: BuildVersion,
			WebRoot:      app.cfg.WebRoot,
			LandingPath:  app.cfg.LandingPath,
			Limits:       app.cfg.RateLimits,
		},
		app.tokens,
		app.backend,
		app.registry,
		app.logger,
	)

	// Wire services to router
	router.SessionService = app.sessionService
	router.ResourceService = app.resourceService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
