// Package server runs the HTTP listener and its graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const defaultShutdownTimeout = 30 * time.Second

// Config for the HTTP server.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// Runner owns the HTTP server lifecycle.
type Runner struct {
	handler http.Handler
	config  Config
	logger  *slog.Logger

	ready chan struct{}
	addr  net.Addr
}

// NewRunner creates a new runner.
func NewRunner(handler http.Handler, cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	return &Runner{
		handler: handler,
		config:  cfg,
		logger:  logger,
		ready:   make(chan struct{}),
	}
}

// Ready is closed once the listener is bound.
func (r *Runner) Ready() <-chan struct{} {
	return r.ready
}

// Addr returns the bound listener address. Only valid after Ready is closed.
func (r *Runner) Addr() string {
	return r.addr.String()
}

// Run serves HTTP until the context is canceled, then shuts down gracefully.
// It returns nil after a clean shutdown.
func (r *Runner) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", r.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", r.config.Addr, err)
	}
	r.addr = ln.Addr()
	close(r.ready)

	srv := &http.Server{
		Handler:           r.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.logger.Info("listening", "addr", r.addr.String())
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		r.logger.Info("shutting down", "timeout", r.config.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), r.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	r.logger.Info("server stopped")
	return nil
}
