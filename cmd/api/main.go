package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pandamarket/internal/config"
	pgRepo "pandamarket/internal/infra/adapter/persistence/postgres"
	"pandamarket/internal/infra/db"
	"pandamarket/internal/observability/logging"
	"pandamarket/internal/observability/tracing"
	"pandamarket/internal/resilience/circuitbreaker"

	artUC "pandamarket/internal/usecase/article"
	cmtUC "pandamarket/internal/usecase/comment"
	prodUC "pandamarket/internal/usecase/product"

	hhttp "pandamarket/internal/handler/http"
	harticle "pandamarket/internal/handler/http/article"
	hcomment "pandamarket/internal/handler/http/comment"
	hproduct "pandamarket/internal/handler/http/product"
	hupload "pandamarket/internal/handler/http/upload"
	"pandamarket/internal/handler/http/requestid"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler := setupServer(logger, cfg, database, version)
	runServer(logger, cfg, handler, version)
}

// initDatabase opens the connection pool and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires repositories, services, routes, and the middleware
// chain into the root handler.
func setupServer(logger *slog.Logger, cfg config.Config, database *sql.DB, version string) http.Handler {
	// Queries run through the circuit breaker so a dying database sheds
	// load fast instead of piling up connections.
	breaker := circuitbreaker.NewDBCircuitBreaker(database)

	productRepo := pgRepo.NewProductRepo(breaker)
	articleRepo := pgRepo.NewArticleRepo(breaker)
	commentRepo := pgRepo.NewCommentRepo(breaker)

	productSvc := &prodUC.Service{Repo: productRepo, Cfg: cfg.Pagination.Products}
	articleSvc := &artUC.Service{Repo: articleRepo, Cfg: cfg.Pagination.Articles}
	commentSvc := &cmtUC.Service{
		Repo:     commentRepo,
		Resolver: &cmtUC.Resolver{Products: productRepo, Articles: articleRepo},
		Cfg:      cfg.Pagination.Comments,
	}

	mux := http.NewServeMux()
	hproduct.Register(mux, productSvc, cfg.Pagination.Products, logger)
	harticle.Register(mux, articleSvc, cfg.Pagination.Articles, logger)
	hcomment.Register(mux, commentSvc, logger)
	hupload.Register(mux, hupload.Handler{
		Dir:      cfg.Upload.Dir,
		MaxBytes: cfg.Upload.MaxBytes,
		Logger:   logger,
	})

	mux.Handle("GET /healthz", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET /readyz", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /livez", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	middlewares := []hhttp.Middleware{
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Logging(logger),
		hhttp.Recover(logger),
		hhttp.MetricsMiddleware,
	}
	if cfg.RateLimit.Enabled {
		limiter := hhttp.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.IdleEviction)
		middlewares = append(middlewares, limiter.Limit)
		logger.Info("rate limiting enabled",
			slog.Float64("requests_per_second", cfg.RateLimit.RequestsPerSecond),
			slog.Int("burst", cfg.RateLimit.Burst))
	} else {
		logger.Warn("rate limiting is disabled")
	}
	middlewares = append(middlewares,
		hhttp.Timeout(cfg.Server.RequestTimeout),
		hhttp.LimitRequestBody(cfg.Server.MaxBodyBytes, "/upload"),
	)

	return hhttp.Chain(mux, middlewares...)
}

// runServer starts the HTTP server and blocks until shutdown completes.
func runServer(logger *slog.Logger, cfg config.Config, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
