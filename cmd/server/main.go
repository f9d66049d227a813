package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/settleup/backend/internal/auth"
	"github.com/settleup/backend/internal/config"
	"github.com/settleup/backend/internal/metrics"
	"github.com/settleup/backend/internal/server"
	"github.com/settleup/backend/internal/service"
	"github.com/settleup/backend/internal/storage/sqlite"
	"github.com/settleup/backend/pkg/logging"
)

func main() {
	// Missing .env is fine, the environment may be set directly.
	_ = godotenv.Load()

	logging.Setup()
	metrics.Init()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(cfg.SQLiteDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	authenticator := auth.NewPasswordAuthenticator(store)
	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenDuration)

	srv := server.New(
		service.NewAuthService(authenticator, tokens),
		service.NewGroupService(store),
		service.NewExpenseService(store),
		service.NewSettlementService(store),
		tokens,
	)

	httpServer := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Starting server", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
