// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"reflect"
	"slices"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/photo-portfolio/internal/admin"
	"github.com/carterperez-dev/photo-portfolio/internal/auth"
	"github.com/carterperez-dev/photo-portfolio/internal/category"
	"github.com/carterperez-dev/photo-portfolio/internal/config"
	"github.com/carterperez-dev/photo-portfolio/internal/core"
	"github.com/carterperez-dev/photo-portfolio/internal/health"
	"github.com/carterperez-dev/photo-portfolio/internal/mediator"
	"github.com/carterperez-dev/photo-portfolio/internal/metrics"
	"github.com/carterperez-dev/photo-portfolio/internal/middleware"
	"github.com/carterperez-dev/photo-portfolio/internal/photo"
	"github.com/carterperez-dev/photo-portfolio/internal/server"
	"github.com/carterperez-dev/photo-portfolio/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	telemetry, err := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
	if err != nil {
		return err
	}
	if cfg.Otel.Enabled {
		logger.Info("OpenTelemetry tracer initialized",
			"endpoint", cfg.Otel.Endpoint,
		)
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"driver", cfg.Database.Driver,
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			return err
		}
		logger.Info("database schema applied")
	}

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redis != nil {
		logger.Info("redis connected", "pool_size", cfg.Redis.PoolSize)
	} else {
		logger.Info("redis not configured, rate limiting per instance")
	}

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", "HS256",
		"token_lifetime", cfg.JWT.AccessTokenExpire,
	)

	categoryRepo := category.NewRepository(db.DB)
	photoRepo := photo.NewRepository(db.DB)

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)
	userHandler := user.NewHandler(userSvc)

	authSvc := auth.NewService(jwtManager, userSvc, logger)

	dispatcher, err := buildDispatcher(categoryRepo, photoRepo, authSvc, logger)
	if err != nil {
		return err
	}
	authHandler := auth.NewHandler(dispatcher)

	created, err := authSvc.EnsureAdmin(ctx, cfg.Seed)
	if err != nil {
		return err
	}
	if created {
		logger.Info("seeded administrator account", "email", cfg.Seed.AdminEmail)
	}

	var (
		redisChecker health.Checker
		redisClient  *goredis.Client
	)
	adminCfg := admin.HandlerConfig{
		Dispatcher: dispatcher,
		DBStats:    db.Stats,
		DBPing:     db.Ping,
	}
	if redis != nil {
		redisChecker = redis
		redisClient = redis.Client
		adminCfg.RedisStats = redis.Client.PoolStats
		adminCfg.RedisPing = redis.Ping
	}

	rateLimiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
		Limit: middleware.PerMinute(
			cfg.RateLimit.Requests,
			cfg.RateLimit.Burst,
		),
		FailOpen: true,
	})
	defer rateLimiter.Close()

	healthHandler := health.NewHandler(db, redisChecker)
	adminHandler := admin.NewHandler(adminCfg)
	categoryHandler := category.NewHandler(dispatcher)
	photoHandler := photo.NewHandler(dispatcher)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.Recoverer(logger))
	router.Use(middleware.RequestID)
	router.Use(middleware.Tracing(telemetry.Tracer))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics)
	router.Use(rateLimiter.Handler)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)
	router.Handle("/metrics", promhttp.Handler())

	authenticator := middleware.Authenticator(jwtManager)
	adminOnly := middleware.RequireAdmin

	router.Route("/api", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authenticator)
		categoryHandler.RegisterRoutes(r)
		photoHandler.RegisterRoutes(r)

		userHandler.RegisterAdminRoutes(r, authenticator, adminOnly)
		adminHandler.RegisterRoutes(r, authenticator, adminOnly)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		logger.Error("telemetry shutdown error", "error", err)
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

// buildDispatcher registers every query handler and fails startup when a
// routed query has none.
func buildDispatcher(
	categories category.Repository,
	photos photo.Repository,
	authSvc *auth.Service,
	logger *slog.Logger,
) (*mediator.Dispatcher, error) {
	reg := mediator.NewRegistry()

	if err := errors.Join(
		category.RegisterHandlers(reg, categories, logger),
		photo.RegisterHandlers(reg, photos, logger),
		admin.RegisterHandlers(reg, categories, photos, logger),
		auth.RegisterHandlers(reg, authSvc),
	); err != nil {
		return nil, err
	}

	reg.Observe(func(_ context.Context, req reflect.Type, err error) {
		result := "ok"
		if err != nil {
			result = "error"
		}
		metrics.QueriesDispatchedTotal.WithLabelValues(req.Name(), result).Inc()
	})

	return reg.Build(slices.Concat(
		category.Queries(),
		photo.Queries(),
		admin.Queries(),
		auth.Queries(),
	)...)
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
