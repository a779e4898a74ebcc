// Package app assembles the application: configuration, logging, database,
// services, and the HTTP server with graceful shutdown.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/okazimirov/learnlog-backend/internal/adapter/postgres"
	categoryrepo "github.com/okazimirov/learnlog-backend/internal/adapter/postgres/category"
	recordrepo "github.com/okazimirov/learnlog-backend/internal/adapter/postgres/record"
	"github.com/okazimirov/learnlog-backend/internal/adapter/provider/llm"
	internalauth "github.com/okazimirov/learnlog-backend/internal/auth"
	"github.com/okazimirov/learnlog-backend/internal/config"
	authsvc "github.com/okazimirov/learnlog-backend/internal/service/auth"
	categorysvc "github.com/okazimirov/learnlog-backend/internal/service/category"
	"github.com/okazimirov/learnlog-backend/internal/service/export"
	recordsvc "github.com/okazimirov/learnlog-backend/internal/service/record"
	summarysvc "github.com/okazimirov/learnlog-backend/internal/service/summary"
	"github.com/okazimirov/learnlog-backend/internal/transport/middleware"
	"github.com/okazimirov/learnlog-backend/internal/transport/rest"
)

// Run is the application entry point. It blocks until the context is
// cancelled or the server fails.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	// Repositories.
	categories := categoryrepo.New(pool)
	records := recordrepo.New(pool)

	// Services.
	jwtManager := internalauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	authService := authsvc.NewService(logger, cfg.Auth, jwtManager)
	categoryService := categorysvc.NewService(logger, categories)
	recordService := recordsvc.NewService(logger, records, categories)
	formatter := export.NewFormatter(logger)
	llmClient := llm.New(cfg.AI, logger)
	summaryService := summarysvc.NewService(logger, recordService, llmClient)

	// Transport.
	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
		middleware.Logger(logger),
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.RateLimit.MaxPerMinute))
	}

	handler := rest.NewRouter(rest.Handlers{
		Auth:     rest.NewAuthHandler(authService, logger),
		Category: rest.NewCategoryHandler(categoryService, logger),
		Record:   rest.NewRecordHandler(recordService, formatter, summaryService, logger),
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
	}, middleware.Chain(mws...))

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
