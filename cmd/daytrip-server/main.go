// Package main provides the entry point for the daytrip HTTP server.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raphaelgruber/daytrip-go/internal/config"
	"github.com/raphaelgruber/daytrip-go/internal/db"
	"github.com/raphaelgruber/daytrip-go/internal/events"
	"github.com/raphaelgruber/daytrip-go/internal/llm"
	"github.com/raphaelgruber/daytrip-go/internal/memory"
	"github.com/raphaelgruber/daytrip-go/internal/planner"
	"github.com/raphaelgruber/daytrip-go/internal/server"
	"github.com/raphaelgruber/daytrip-go/internal/trip"
	"github.com/raphaelgruber/daytrip-go/internal/weather"
)

const version = "0.1.0"

func main() {
	// Missing graph-store credentials abort startup here, before any
	// connection attempt.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// Setup logger (dual output: stderr text + file JSON)
	logger, cleanup := config.SetupLogger(cfg)
	defer cleanup()
	slog.SetDefault(logger)

	logger.Info("daytrip-server starting",
		"version", version,
		"surrealdb_url", cfg.SurrealDBURL,
		"llm_provider", cfg.LLMProvider,
		"llm_model", cfg.LLMModel,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Connect to the graph store; the client verifies the connection with a
	// round-trip query before returning.
	dbClient, err := db.NewClient(ctx, db.Config{
		URL:       cfg.SurrealDBURL,
		Namespace: cfg.SurrealDBNamespace,
		Database:  cfg.SurrealDBDatabase,
		Username:  cfg.SurrealDBUser,
		Password:  cfg.SurrealDBPass,
		AuthLevel: cfg.SurrealDBAuthLevel,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		logger.Info("closing database connection")
		_ = dbClient.Close(context.Background())
	}()

	if err := dbClient.InitSchema(ctx); err != nil {
		logger.Error("failed to initialize database schema", "error", err)
		os.Exit(1)
	}

	model, err := llm.NewModel(cfg)
	if err != nil {
		logger.Error("failed to create LLM model", "error", err)
		os.Exit(1)
	}
	logger.Info("LLM model initialized", "model", model.Name())

	// Collaborators are built once at startup and passed explicitly.
	p := planner.New(
		trip.NewRequester(model, logger),
		memory.NewStore(dbClient, logger),
		weather.NewClient(cfg.WeatherAPIKey, cfg.WeatherBaseURL, logger),
		events.NewClient(cfg.NewsAPIKey, cfg.NewsBaseURL, logger),
		logger,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server.New(p, logger).Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 120 * time.Second, // generation can be slow
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("server ready", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}
