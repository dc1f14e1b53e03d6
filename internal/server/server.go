// Package server runs the Echo instance until its context is cancelled.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Listen binds a TCP listener on addr. Binding happens before anything is
// served so the startup line is only logged once connections can arrive.
func Listen(addr string) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	return ln, nil
}

// Start binds addr, logs the single startup line naming the port and env,
// and serves e until ctx is cancelled.  Requests themselves are never logged.
func Start(ctx context.Context, e *echo.Echo, addr, env string, log *zap.Logger, shutdownTimeout time.Duration) error {
	ln, err := Listen(addr)
	if err != nil {
		return err
	}
	port := portOf(ln)
	log.Info("Backend running on port "+port,
		zap.String("port", port),
		zap.String("environment", env),
	)
	return Run(ctx, e, ln, log, shutdownTimeout)
}

// portOf returns the port the listener is actually bound to, which differs
// from the configured one when it asked for port 0.
func portOf(ln net.Listener) string {
	if a, ok := ln.Addr().(*net.TCPAddr); ok {
		return strconv.Itoa(a.Port)
	}
	return ln.Addr().String()
}

// Run serves e on ln until ctx is cancelled, then shuts down gracefully,
// waiting at most shutdownTimeout for in-flight requests. It returns nil
// after a clean shutdown and the serve error if the listener fails.
func Run(ctx context.Context, e *echo.Echo, ln net.Listener, log *zap.Logger, shutdownTimeout time.Duration) error {
	e.Listener = ln

	errCh := make(chan error, 1)
	go func() {
		// The address is ignored because e.Listener is already set.
		errCh <- e.Start("")
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	log.Debug("Shutting down", zap.Duration("timeout", shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
