package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/clock"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/config"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/handler"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/health"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/infra/alertrecorder"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/infra/board"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/infra/notifier"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/infra/prefstore"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/infra/sound"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/infra/tasksapi"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/observability/logging"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/observability/metrics"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/observability/middleware"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/service/dedup"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/service/dispatch"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/service/reminder"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/service/tier"
)

const module = logging.Module("deadline-reminder")

var errServeFailed = errors.New("reminder daemon exited with an error")

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the reminder daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if code := serve(parent); code != 0 {
		return errServeFailed
	}
	return nil
}

func serve(parent context.Context) int {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	obs, err := initObservability(ctx)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	reminderMetrics, err := metrics.NewReminderMetrics()
	if err != nil {
		slog.Error("failed to initialize reminder metrics", slog.String("error", err.Error()))
		return 1
	}

	// InfluxDB locally, BigQuery on the gcloud build
	recorder, err := alertrecorder.NewRecorder(ctx, alertrecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize alert result recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			slog.Warn("failed to close alert result recorder", slog.String("error", err.Error()))
		}
	}()

	var redisClient *redis.Client
	if cfg.Preference.Backend == config.PreferenceBackendRedis {
		redisClient, err = connectRedis(ctx, cfg.Redis)
		if err != nil {
			return 1
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Warn("failed to close redis client", slog.String("error", err.Error()))
			}
		}()
	}

	prefs, err := prefstore.Open(ctx, string(cfg.Preference.Backend), cfg.Preference.SQLitePath, redisClient)
	if err != nil {
		slog.Error("failed to open preference store",
			slog.String("backend", string(cfg.Preference.Backend)),
			slog.String("error", err.Error()),
		)
		return 1
	}
	defer func() {
		if err := prefs.Close(); err != nil {
			slog.Warn("failed to close preference store", slog.String("error", err.Error()))
		}
	}()

	slog.Info("preference store opened",
		slog.String("backend", string(cfg.Preference.Backend)),
	)

	push, cleanup, err := notifier.NewNotifier(ctx, notifier.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize notifier", slog.String("error", err.Error()))
		return 1
	}
	if cleanup != nil {
		defer func() {
			if err := cleanup(); err != nil {
				slog.Error("notifier cleanup error", slog.String("error", err.Error()))
			}
		}()
	}

	player := sound.NewPlayer(sound.Config{
		Command: cfg.Sound.Command,
		File:    cfg.Sound.File,
		Volume:  cfg.Sound.Volume,
	})
	if stopper, ok := player.(interface{ Stop() }); ok {
		defer stopper.Stop()
	}

	clk := clock.New()
	alertBoard := board.New(clk)

	tasksClient := tasksapi.NewClient(cfg.TasksAPIURL, tasksapi.WithSessionID(cfg.TasksSessionID))
	dispatcher := dispatch.NewDispatcher(push, player, alertBoard, clk, assetsFromConfig(cfg.Reminder), reminderMetrics)
	gate := dedup.NewDeduplicator(tier.NewClassifier())

	engine := reminder.NewEngine(reminder.Dependencies{
		Tasks:      tasksClient,
		Gate:       gate,
		Dispatcher: dispatcher,
		Notifier:   push,
		Prefs:      prefs,
		Recorder:   recorder,
		Clock:      clk,
		Metrics:    reminderMetrics,
	}, reminder.Options{
		PollInterval: cfg.Reminder.PollInterval,
	})

	engineDone := make(chan error, 1)
	go func() {
		engineDone <- engine.Start(ctx)
	}()

	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready"},
		Module:      module,
		TracerName:  "github.com/KasumiMercury/primind-deadline-reminder/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(Version, map[string]health.Pinger{
		"preference_store": prefs,
	})
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	handler.NewReminderHandler(engine, alertBoard).Register(r.Group("/api/v1"))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("tasks_api_url", cfg.TasksAPIURL),
			slog.Duration("poll_interval", cfg.Reminder.PollInterval),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	exitCode := 0
	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
	case <-parent.Done():
		slog.Info("shutdown requested")
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server exited with error", slog.String("error", err.Error()))
			exitCode = 1
		}
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown server", slog.String("error", err.Error()))
		exitCode = 1
	}

	select {
	case err := <-engineDone:
		if err != nil {
			slog.Error("reminder engine exited with error", slog.String("error", err.Error()))
			exitCode = 1
		}
	case <-shutdownCtx.Done():
		slog.Warn("reminder engine did not stop before shutdown deadline")
	}

	if err := recorder.Flush(shutdownCtx); err != nil {
		slog.Warn("failed to flush alert results", slog.String("error", err.Error()))
	}

	if exitCode == 0 {
		slog.Info("server exited properly")
	}
	return exitCode
}

func connectRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	redisClient := redis.NewClient(opts)

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		_ = redisClient.Close()
		return nil, err
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		_ = redisClient.Close()
		return nil, err
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		_ = redisClient.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	slog.Info("redis connected",
		slog.String("addr", cfg.Addr),
	)

	return redisClient, nil
}

func assetsFromConfig(cfg *config.ReminderConfig) dispatch.Assets {
	assets := dispatch.DefaultAssets()
	if cfg.Icon != "" {
		assets.Icon = cfg.Icon
	}
	if cfg.Badge != "" {
		assets.Badge = cfg.Badge
	}
	if cfg.OverlayImage != "" {
		assets.OverlayImage = cfg.OverlayImage
	}
	return assets
}
