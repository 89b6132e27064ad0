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

	"hotelfront/internal/app/flow"
	"hotelfront/internal/infra/config"
	"hotelfront/internal/infra/hotelapi"
	ginserver "hotelfront/internal/infra/http/gin"
	"hotelfront/internal/infra/obs"
	"hotelfront/internal/infra/payments"
	"hotelfront/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	logger := obs.NewLogger(cfg.Env)
	if err != nil {
		logger.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	app := buildApplication(cfg, logger)
	go app.store.StartSweeper(ctx, cfg.SessionSweep)

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: func() error { return nil },
	}, app.handlers)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "hotel_api", cfg.HotelAPIURL)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

type application struct {
	handlers ginserver.Handlers
	store    *memory.SessionStore
}

func buildApplication(cfg config.Config, logger *slog.Logger) application {
	hotelClient := hotelapi.NewClient(cfg.HotelAPIURL, cfg.HotelAPITimeout, logger)
	paymentsClient := payments.NewClient(cfg.PaymentsURL, cfg.PaymentsTimeout, logger)
	store := memory.NewSessionStore(cfg.SessionTTL)

	deps := flow.Deps{
		Rooms:        hotelClient,
		Reservations: hotelClient,
		Logger:       logger,
	}

	var metrics *obs.Metrics
	if cfg.MetricsEnabled {
		metrics = obs.NewMetrics(cfg.ServiceName)
	}

	return application{
		handlers: ginserver.Handlers{
			Sessions:     ginserver.SessionHandler{Deps: deps, Store: store},
			Catalog:      ginserver.CatalogHandler{Port: hotelClient},
			Reservations: ginserver.ReservationHandler{Reservations: hotelClient},
			Payments:     ginserver.PaymentHandler{Payments: paymentsClient},
			Metrics:      metrics,
		},
		store: store,
	}
}
