package main // Entry point package

import (
	"context"   // Root context for the server lifetime
	"fmt"       // Fallback error output before the logger exists
	"os"        // Exit codes and signals
	"os/signal" // Cancel on SIGINT/SIGTERM
	"syscall"   // SIGTERM

	"go.uber.org/zap" // Structured logging

	"github.com/iliyamo/message-backend/internal/config" // Environment config loader
	"github.com/iliyamo/message-backend/internal/logger" // zap logger construction
	"github.com/iliyamo/message-backend/internal/router" // Echo instance and routes
	"github.com/iliyamo/message-backend/internal/server" // Listener and graceful shutdown
)

func main() {
	if err := config.LoadEnvFiles(); err != nil { // Optional .env.local / .env
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg, err := config.Load() // Resolve PORT, environment name, log level
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx, router.New(cfg), cfg.Addr(), cfg.Env, log, cfg.ShutdownTimeout); err != nil {
		log.Error("Server stopped", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}
