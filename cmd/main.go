package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"

	"viralizza/internal/adapter/http"
	"viralizza/internal/adapter/logsink"
	"viralizza/internal/adapter/memory"
	"viralizza/internal/adapter/postgres"
	"viralizza/internal/adapter/provider"
	"viralizza/internal/adapter/redis"
	"viralizza/internal/adapter/usecase"
	"viralizza/internal/adapter/worker"
	"viralizza/internal/config"
	"viralizza/internal/config/configs"
	"viralizza/internal/core/port"
	"viralizza/internal/db"
	"viralizza/internal/metrics"
)

// main is the entry point of the payout engine. It loads configuration,
// prepares storage and the optional redis display surface, then runs the
// HTTP API and the view poller until a termination signal arrives.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger, closeLog := newLogger(cfg.Log)
	defer closeLog()
	logger = logger.With("env", cfg.Env)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var repo port.LedgerRepository
	switch cfg.Storage.Driver {
	case configs.StorageMemory:
		logger.Warn("using in-memory storage, all data is lost on exit")
		repo = memory.NewLedger()
	case configs.StoragePostgres:
		var pool *pgxpool.Pool
		if pool, err = preparePostgres(ctx, cfg.Psql, logger); err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		repo = postgres.NewLedgerRepository(pool)
	default:
		logger.Error("unknown storage driver", slog.String("driver", cfg.Storage.Driver))
		return
	}

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, repo); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	var (
		notifier  port.Notifier
		publisher port.LeaderboardPublisher
		locker    port.Locker
	)
	if cfg.Redis.Enabled() {
		var rc *redis.Client
		if rc, err = db.NewRedisClient(ctx, cfg.Redis); err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		defer rc.Close()
		pub := redisadapter.NewPublisher(rc, cfg.Redis.Prefix, cfg.Redis.LeaderboardTTL)
		notifier, publisher = pub, pub
		locker = redisadapter.NewLocker(rc, cfg.Redis.Prefix, logger)
	} else {
		logger.Info("redis disabled, events and leaderboards go to the log")
		sink := logsink.New(logger)
		notifier, publisher = sink, sink
		locker = memory.NewLocker()
	}

	m := metrics.New()
	views := provider.NewHTTPProvider(cfg.Provider)
	svc := usecase.NewPayoutUseCase(repo, views, notifier, publisher, usecase.Options{
		ClosingThreshold: cfg.Payout.ClosingThreshold,
		LeaderboardSize:  cfg.Payout.LeaderboardSize,
		SampleTimeout:    cfg.Provider.Timeout,
		Logger:           logger,
	})

	handler := httpadapter.NewHandler(svc, m, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	var poller *worker.Poller
	if cfg.Poller.Enabled {
		poller = worker.NewPoller(repo, views, svc, locker, m, worker.Config{
			Interval:        cfg.Poller.Interval,
			Concurrency:     cfg.Poller.Concurrency,
			LockTTL:         cfg.Poller.LockTTL,
			ProviderTimeout: cfg.Provider.Timeout,
		}, logger)
		poller.Start(ctx)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		if poller != nil {
			poller.Stop()
		}
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gCtx), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	})

	if err = g.Wait(); err != nil {
		logger.Error("server error", slog.Any("error", err))
		return
	}
	exitCode = 0
}

// newLogger builds the slog logger. When a log file is configured records
// go to stdout and to the rotated file.
func newLogger(cfg configs.Logger) (*slog.Logger, func()) {
	var (
		out     io.Writer = os.Stdout
		closeFn           = func() {}
	)
	if cfg.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, rotator)
		closeFn = func() { _ = rotator.Close() }
	}

	var handler slog.Handler
	level := cfg.SlogLevel()
	switch cfg.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	default:
		handler = slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	}
	return slog.New(handler), closeFn
}

// preparePostgres optionally migrates the schema and opens the pool.
func preparePostgres(ctx context.Context, cfg configs.Postgres, logger *slog.Logger) (*pgxpool.Pool, error) {
	if cfg.RunMigrations {
		if err := db.Migrate(cfg.Addr.String()); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}
	return db.NewPostgresPool(ctx, cfg)
}
