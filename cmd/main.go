package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/skillforge/recommender/internal/adapters/http/api"
	"github.com/skillforge/recommender/internal/adapters/http/swagger"
	"github.com/skillforge/recommender/internal/adapters/repository"
	"github.com/skillforge/recommender/internal/adapters/repository/postgres"
	"github.com/skillforge/recommender/internal/adapters/repository/snapshot"
	"github.com/skillforge/recommender/internal/app"
	"github.com/skillforge/recommender/internal/config"
	"github.com/skillforge/recommender/internal/domain/rules"
	"github.com/skillforge/recommender/internal/domain/vectorize"
	"github.com/skillforge/recommender/pkg/logger"
	"github.com/skillforge/recommender/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout           = 10 * time.Second
	writeTimeout          = 10 * time.Second
	idleTimeout           = 60 * time.Second
	readHeaderTimeout     = 5 * time.Second
	shutdownTimeout       = 30 * time.Second
	systemMetricsInterval = 10 * time.Second
)

func main() {
	// Disable default Go metrics collection to avoid duplicate metrics;
	// we collect our own system metrics instead.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("failed to sync logger: " + err.Error() + "\n")
		}
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	policy := rules.NewPolicy(
		rules.WithComplexityMinLevelsFromConfig(cfg.ComplexityMinLevel),
		rules.WithExpectedSkillFromConfig(cfg.ExpectedSkill),
	)
	encoder := vectorize.NewEncoder(
		vectorize.WithPolicy(policy),
		vectorize.WithLevelScaleFromConfig(cfg.LevelScale),
		vectorize.WithActivityScaleFromConfig(cfg.ActivityScale),
	)

	svcOpts := []app.Option{
		app.WithLogger(log),
		app.WithPolicy(policy),
		app.WithEncoder(encoder),
		app.WithTopNDefault(cfg.TopNDefault),
		app.WithMaxTopN(cfg.MaxTopN),
		app.WithSemiActiveMinSimilarityDefault(cfg.SemiActiveMinSimilarityDefault),
		app.WithDefaultSource(repository.Source(cfg.DefaultSource)),
	}

	// Wire the persistent-store source. An unreachable database is fatal:
	// the engine must not start half-configured.
	if cfg.DatabaseURL != "" {
		store, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			os.Stderr.WriteString("failed to connect to database: " + err.Error() + "\n")
			return
		}
		defer store.Close()
		svcOpts = append(svcOpts, app.WithSource(repository.SourceDB, postgres.NewPair(store)))
		log.Info(ctx, "db source wired")
	}

	// Wire the JSON snapshot source. A malformed snapshot is fatal too.
	if cfg.SnapshotPath != "" {
		pair, err := snapshot.NewPair(cfg.SnapshotPath)
		if err != nil {
			os.Stderr.WriteString("failed to load snapshot: " + err.Error() + "\n")
			return
		}
		svcOpts = append(svcOpts, app.WithSource(repository.SourceJSON, pair))
		log.Info(ctx, "json source wired", logger.String("path", cfg.SnapshotPath))
	}

	svc := app.New(svcOpts...)

	// Start system metrics updater
	go startSystemMetricsUpdater(ctx)

	// HTTP mux and routes.
	mux := http.NewServeMux()

	// Register API docs under /api-docs
	swagger.Register(ctx, mux)

	// Register business API routes with the service dependency.
	apiServer := api.NewServer(svc, svc, cfg.MaxTopN)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Start the HTTP server
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

// startSystemMetricsUpdater starts a background goroutine that updates system metrics.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// updateSystemMetrics updates system-level metrics.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())
}
