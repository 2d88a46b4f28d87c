package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/trafficsrc/internal/config"
	"github.com/JonMunkholm/trafficsrc/internal/core"
	"github.com/JonMunkholm/trafficsrc/internal/logging"
	"github.com/JonMunkholm/trafficsrc/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run())
}

// run wires the server and blocks until it stops. It returns the process
// exit code so deferred cleanup runs before exiting.
func run() int {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return 1
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"database", cfg.Database.Enabled(),
		"cors_origins", len(cfg.CORS.AllowedOrigins),
	)

	// Without a database the API serves the built-in sample rows.
	var store core.Store = core.NewStaticStore()
	if cfg.Database.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.QueryTimeout)
		defer cancel()

		pool, err := core.OpenPool(ctx, cfg.Database)
		if err != nil {
			slog.Error("failed to open database", "error", err)
			return 1
		}
		defer pool.Close()

		pg := core.NewPGStore(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			slog.Error("failed to prepare schema", "error", err)
			return 1
		}
		store = pg
	}

	service := core.NewService(store, cfg.Database.QueryTimeout)
	server := web.NewServer(service, cfg)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	idle := make(chan struct{})
	go func() {
		defer close(idle)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		return 1
	}
	<-idle
	slog.Info("server stopped")
	return 0
}
