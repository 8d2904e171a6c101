package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	v1 "github.com/vmunix/moviemagic/internal/api/v1"
	"github.com/vmunix/moviemagic/internal/config"
	"github.com/vmunix/moviemagic/internal/omdb"
	"github.com/vmunix/moviemagic/internal/review"
	"github.com/vmunix/moviemagic/internal/server"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// buildHandler wires the API and its middleware.
func buildHandler(cfg *config.Config, logger *slog.Logger) (http.Handler, error) {
	movies := omdb.NewClient(cfg.OMDb.APIKey,
		omdb.WithBaseURL(cfg.OMDb.URL),
		omdb.WithTimeout(cfg.OMDb.Timeout),
	)

	api, err := v1.New(v1.ServerDeps{
		Movies:  movies,
		Reviews: review.NewStore(),
	}, v1.Config{Version: version}, logger.With("component", "api"))
	if err != nil {
		return nil, fmt.Errorf("api: %w", err)
	}

	mux := http.NewServeMux()
	api.RegisterRoutes(mux)

	return v1.LogRequests(v1.CORS(mux, cfg.CORS.AllowedOrigins), logger.With("component", "http")), nil
}

func runServer(configPath string) error {
	path, err := config.Discover(configPath)
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	handler, err := buildHandler(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("server starting",
		"version", version,
		"config", path,
		"addr", cfg.Server.Addr(),
		"omdb", cfg.OMDb.URL,
		"cors_origins", cfg.CORS.AllowedOrigins,
		"log_level", cfg.Server.LogLevel,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := server.NewRunner(handler, server.Config{
		Addr:            cfg.Server.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, logger.With("component", "server"))

	return runner.Run(ctx)
}
