// Package main runs the relief activity service. It wires the validation
// engine, the moderation API client and the HTTP adapter with samber/do v2,
// then serves until SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/relief-activity-service/internal/adapters/http"
	"github.com/jsamuelsen11/relief-activity-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/relief-activity-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/relief-activity-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/relief-activity-service/internal/app"
	"github.com/jsamuelsen11/relief-activity-service/internal/platform/clock"
	"github.com/jsamuelsen11/relief-activity-service/internal/platform/config"
	"github.com/jsamuelsen11/relief-activity-service/internal/platform/health"
	"github.com/jsamuelsen11/relief-activity-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/relief-activity-service/internal/platform/i18n"
	"github.com/jsamuelsen11/relief-activity-service/internal/platform/logging"
	"github.com/jsamuelsen11/relief-activity-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/relief-activity-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second

	// moderationServiceName labels the moderation API in metrics, spans and
	// the readiness report.
	moderationServiceName = "moderation-api"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	logger.Info("activity service wired",
		slog.String("profile", profile),
		slog.String("timezone", cfg.Platform.Timezone),
		slog.String("moderation_api", cfg.Client.BaseURL),
	)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (ports.Clock, error) {
		loc, err := cfg.Platform.Location()
		if err != nil {
			return nil, fmt.Errorf("loading platform time zone: %w", err)
		}
		return clock.New(loc), nil
	})

	do.Provide(injector, func(_ do.Injector) (*config.UploadPolicy, error) {
		return config.NewUploadPolicy(cfg.Source()), nil
	})

	do.Provide(injector, func(_ do.Injector) (*i18n.Catalog, error) {
		return i18n.New(cfg.Platform.DefaultLocale)
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, moderationServiceName, logger, httpclient.WithMetrics(metrics)), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.ModerationClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewModerationClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ActivityService, error) {
		clk, err := do.Invoke[ports.Clock](i)
		if err != nil {
			return nil, err
		}
		policy := do.MustInvoke[*config.UploadPolicy](i)
		moderation := do.MustInvoke[*acl.ModerationClient](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return app.NewActivityService(clk, policy, moderation, logger,
			app.WithMetrics(metrics),
			app.WithBatchWorkers(cfg.Activity.BatchWorkers),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(do.MustInvoke[*config.UploadPolicy](i))
		registry.Register(do.MustInvoke[*acl.ModerationClient](i))
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ActivityHandler, error) {
		svc := do.MustInvoke[ports.ActivityService](i)
		catalog := do.MustInvoke[*i18n.Catalog](i)
		return handlers.NewActivityHandler(svc, catalog,
			handlers.WithMaxBatchSize(cfg.Activity.MaxBatchSize),
			handlers.WithMaxBodyBytes(cfg.Server.MaxBodyBytes),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		// The moderation API only affects submissions; dry runs keep working.
		return handlers.NewHealthHandler(registry, handlers.WithNonCritical(moderationServiceName)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		activityH := do.MustInvoke[*handlers.ActivityHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		catalog := do.MustInvoke[*i18n.Catalog](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		pipeline := middleware.Pipeline{
			Logger:  logger,
			Metrics: metrics,
			Catalog: catalog,
			Timeout: cfg.Server.RequestTimeout,
		}
		return adapthttp.NewRouter(activityH, healthH, catalog, pipeline.Handlers()...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler, err := do.Invoke[nethttp.Handler](i)
		if err != nil {
			return nil, err
		}
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
