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

	"github.com/couchcryptid/bank-status-service/internal/adapter/geoip"
	httpadapter "github.com/couchcryptid/bank-status-service/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/bank-status-service/internal/adapter/kafka"
	rollbaradapter "github.com/couchcryptid/bank-status-service/internal/adapter/rollbar"
	"github.com/couchcryptid/bank-status-service/internal/calendar"
	"github.com/couchcryptid/bank-status-service/internal/config"
	"github.com/couchcryptid/bank-status-service/internal/domain"
	"github.com/couchcryptid/bank-status-service/internal/observability"
	"github.com/couchcryptid/bank-status-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Error tracking (feature-flagged via ROLLBAR_TOKEN).
	var tracker domain.ErrorTracker = domain.NopTracker{}
	var rollbarTracker *rollbaradapter.Tracker
	if cfg.RollbarToken != "" {
		rollbarTracker = rollbaradapter.NewTracker(cfg, logger)
		tracker = rollbarTracker
		logger.Info("rollbar error tracking enabled", "environment", cfg.RollbarEnvironment)
	} else {
		logger.Info("rollbar error tracking disabled")
	}

	// Analytics (feature-flagged via ANALYTICS_ENABLED).
	var analytics domain.Analytics = domain.NopAnalytics{}
	var writer *kafkaadapter.Writer
	var async *service.AsyncAnalytics
	if cfg.AnalyticsEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		async = service.NewAsyncAnalytics(writer, logger, metrics, 5*time.Second)
		analytics = async
		logger.Info("kafka analytics enabled", "topic", cfg.KafkaAnalyticsTopic)
	} else {
		logger.Info("analytics disabled")
	}

	locator := geoip.NewClient(cfg, metrics, logger)
	resolver := service.NewResolver(locator, analytics, tracker, logger, metrics)
	svc := service.New(resolver, calendar.New(), analytics, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if async != nil {
		async.Flush()
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}
	if rollbarTracker != nil {
		if err := rollbarTracker.Close(); err != nil {
			logger.Error("rollbar close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
