package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/porticohq/portico/internal/app"
	identityQueries "github.com/porticohq/portico/internal/identity/application/queries"
	whatsappApp "github.com/porticohq/portico/internal/whatsapp/application"
	"github.com/porticohq/portico/pkg/config"
	"github.com/porticohq/portico/pkg/observability"
)

// The worker runs the WhatsApp monitor headless, keeping the change feed
// drained and exposing health and metrics endpoints.
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	logCfg := observability.DefaultLogConfig()
	logCfg.Level = observability.LogLevel(cfg.LogLevel)
	logCfg.ServiceName = "portico-worker"
	if cfg.IsProduction() {
		logCfg.Format = observability.LogFormatJSON
	}
	logger := observability.NewLogger(logCfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	metrics := observability.NewPrometheusMetrics("portico_worker", nil)

	container, err := app.NewContainerWithMetrics(ctx, cfg, logger, metrics)
	if err != nil {
		logger.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	userID, err := uuid.Parse(cfg.UserID)
	if err != nil {
		logger.Error("invalid PORTICO_USER_ID", "error", err)
		os.Exit(1)
	}

	company, err := container.ResolveCompanyHandler.Handle(ctx, identityQueries.ResolveCompanyQuery{UserID: userID})
	if err != nil {
		logger.Error("failed to resolve company", "error", err)
		os.Exit(1)
	}
	if !company.HasCompany {
		logger.Error("user has no company assignment, nothing to monitor")
		os.Exit(1)
	}

	health := observability.NewHealthRegistry()
	health.Register("database", func(ctx context.Context) observability.HealthCheckResult {
		if err := container.DB.Ping(ctx); err != nil {
			return observability.CheckUnhealthy(err)
		}
		return observability.CheckHealthy("connected")
	})
	if container.RedisClient != nil {
		health.Register("redis", func(ctx context.Context) observability.HealthCheckResult {
			if err := container.RedisClient.Ping(ctx).Err(); err != nil {
				return observability.CheckUnhealthy(err)
			}
			return observability.CheckHealthy("connected")
		})
	}

	mux := http.NewServeMux()
	mux.Handle("/healthz", health.Handler())
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              cfg.WorkerHealthAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("health server listening", "addr", cfg.WorkerHealthAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("health server failed", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("monitor starting", "company_id", company.CompanyID)
	err = container.Monitor.Run(ctx, company.CompanyID, func(snapshot *whatsappApp.Snapshot) {
		logger.Info("snapshot applied",
			"seq", snapshot.Seq,
			"sessions", len(snapshot.Sessions),
		)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("monitor stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("monitor stopped")
}
