package main

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

	"certgate/internal/adapter/gateway"
	adapterhandler "certgate/internal/adapter/handler"
	"certgate/internal/infrastructure/registry"
	"certgate/internal/infrastructure/store"
	infratoken "certgate/internal/infrastructure/token"
	"certgate/internal/usecase"

	"certgate/config"
	appmiddleware "certgate/middleware"
	"certgate/utils/logger"
	"certgate/utils/otel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Handle healthcheck subcommand (for Docker healthcheck in distroless image)
	if len(os.Args) > 1 && os.Args[1] == "healthcheck" {
		if err := runHealthcheck(); err != nil {
			fmt.Fprintf(os.Stderr, "Healthcheck failed: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Initialize OpenTelemetry
	otelCfg := otel.ConfigFromEnv()
	otelShutdown, err := otel.InitProvider(ctx, otelCfg)
	if err != nil {
		slog.Warn("failed to initialize OpenTelemetry, continuing without tracing", "error", err)
		otelCfg.Enabled = false
	}

	// Initialize structured logger
	logger.Init(otelCfg.Enabled)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "configuration loaded",
		"provider_url", cfg.IdentityProviderURL,
		"port", cfg.Port,
		"session_db", cfg.SessionDBPath)

	// Infrastructure
	credentialRegistry := registry.Seeded()
	sessionStore, err := store.NewSessionStore(cfg.SessionDBPath, slog.Default())
	if err != nil {
		slog.ErrorContext(ctx, "failed to open session store", "error", err)
		os.Exit(1)
	}
	defer sessionStore.Close()

	identityGateway := gateway.NewIdentityGateway(cfg.IdentityProviderURL, cfg.ProviderTimeout)
	jwtIssuer := infratoken.NewJWTIssuer(infratoken.JWTConfig{
		Secret:     cfg.TokenSecret,
		Issuer:     cfg.TokenIssuer,
		Audience:   cfg.TokenAudience,
		AccessTTL:  cfg.AccessTokenTTL,
		RefreshTTL: cfg.RefreshTokenTTL,
	})

	// Usecases
	adminLoginUC := usecase.NewAdminLogin(credentialRegistry, sessionStore, slog.Default())
	userLoginUC := usecase.NewUserLogin(identityGateway, sessionStore, jwtIssuer, slog.Default())
	authorizeUC := usecase.NewAuthorize(sessionStore, slog.Default())
	signOutUC := usecase.NewSignOut(sessionStore, slog.Default())
	currentSessionUC := usecase.NewCurrentSession(sessionStore, slog.Default())

	// Handlers
	adminLoginHandler := adapterhandler.NewAdminLoginHandler(adminLoginUC)
	loginHandler := adapterhandler.NewLoginHandler(userLoginUC)
	logoutHandler := adapterhandler.NewLogoutHandler(signOutUC)
	sessionHandler := adapterhandler.NewSessionHandler(currentSessionUC)
	routeDecisionHandler := adapterhandler.NewRouteDecisionHandler(authorizeUC)
	healthHandler := adapterhandler.NewHealthHandler()

	// Setup Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Security middleware
	e.Use(appmiddleware.SecurityHeaders())

	// OpenTelemetry tracing
	if otelCfg.Enabled {
		e.Use(otelecho.Middleware(otelCfg.ServiceName))
	}

	// Request logging
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			rctx := c.Request().Context()
			if v.Error == nil {
				slog.InfoContext(rctx, "request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
			} else {
				slog.ErrorContext(rctx, "request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	}))

	e.Use(middleware.Recover())

	// Login endpoints are the brute-force target; everything else is read-only.
	loginRL := appmiddleware.NewRateLimiter(10.0/60.0, 3)     // 10 req/min
	sessionRL := appmiddleware.NewRateLimiter(100.0/60.0, 10) // 100 req/min

	// Authentication routes
	e.POST("/auth/login", loginHandler.Handle, loginRL.Middleware())
	e.POST("/auth/admin/login", adminLoginHandler.Handle, loginRL.Middleware())
	e.POST("/auth/logout", logoutHandler.Handle, sessionRL.Middleware())

	// Session and routing surface for the presenter
	e.GET("/session", sessionHandler.Handle, sessionRL.Middleware())
	e.GET("/route-decision", routeDecisionHandler.Handle, sessionRL.Middleware())
	e.GET("/health", healthHandler.Handle)

	// Start server with errgroup for graceful shutdown
	address := fmt.Sprintf(":%s", cfg.Port)
	slog.InfoContext(ctx, "starting certgate server", "address", address)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return otelShutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited properly")
}

// runHealthcheck performs a health check against the local server.
func runHealthcheck() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8888"
	}

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://127.0.0.1:%s/health", port))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health endpoint returned status: %d", resp.StatusCode)
	}
	return nil
}
