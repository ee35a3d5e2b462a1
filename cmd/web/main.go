// Package main is the entry point for the car-rental booking site.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/car-rental/web/internal/config"
	"github.com/pkordes/car-rental/web/internal/handler"
	"github.com/pkordes/car-rental/web/internal/middleware"
	"github.com/pkordes/car-rental/web/internal/repo"
	"github.com/pkordes/car-rental/web/internal/service"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Router -----------------------------------------------------------
	// No client timeout: a slow API is bounded by the request context, which
	// the server's WriteTimeout and shutdown cancel.
	r, err := newRouter(cfg, &http.Client{}, logger)
	if err != nil {
		slog.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "api_endpoint", cfg.APIEndpoint, "timezone", cfg.Location.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// newRouter wires repos, services and pages behind the middleware stack.
// Middleware is applied in order: RequestID, RealIP, Logger, Recoverer, CORS,
// body limit. The request ID is forwarded to the external API.
func newRouter(cfg config.Config, hc *http.Client, logger *slog.Logger) (chi.Router, error) {
	client, err := repo.NewClient(cfg.APIEndpoint, hc, logger)
	if err != nil {
		return nil, err
	}
	cars := repo.NewCarRepo(client)
	bookings := repo.NewBookingRepo(client)

	srv := handler.NewServer(
		service.NewAvailabilityService(cars, cfg.Location),
		service.NewCarService(cars, cfg.Location),
		service.NewBookingService(bookings, cfg.Location),
		logger,
	)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Mount("/", srv.Routes())
	return r, nil
}
