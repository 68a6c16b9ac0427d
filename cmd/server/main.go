package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nkostic/transferhub/internal/adapter/directory"
	httpAdapter "github.com/nkostic/transferhub/internal/adapter/http"
	"github.com/nkostic/transferhub/internal/adapter/http/handler"
	"github.com/nkostic/transferhub/internal/adapter/messaging"
	postgresRepo "github.com/nkostic/transferhub/internal/adapter/repository/postgres"
	redisRepo "github.com/nkostic/transferhub/internal/adapter/repository/redis"
	"github.com/nkostic/transferhub/internal/infrastructure/config"
	"github.com/nkostic/transferhub/internal/infrastructure/eventpublisher"
	"github.com/nkostic/transferhub/internal/infrastructure/metrics"
	"github.com/nkostic/transferhub/internal/infrastructure/postgres"
	"github.com/nkostic/transferhub/internal/infrastructure/redis"
	"github.com/nkostic/transferhub/internal/usecase"
)

func main() {
	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	slogger := newSlogger(cfg)
	slog.SetDefault(slogger)

	ctx := context.Background()

	// Run migrations
	if cfg.MigrateOnStart {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		log.Info().Msg("migrations applied")
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis when configured
	var (
		rdb              *goredis.Client
		cache            usecase.Cache
		idempotencyStore usecase.IdempotencyStore
	)
	if cfg.RedisURL != "" {
		rdb, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()
		cache = redisRepo.NewCache(rdb)
		idempotencyStore = redisRepo.NewIdempotencyStore(rdb)
		log.Info().Msg("connected to redis")
	}

	// Initialize metrics
	appMetrics := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	transferRepo := postgresRepo.NewTransferRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()

	var outboxRepo usecase.OutboxRepository
	if cfg.OutboxEnabled && cfg.NATSURL != "" {
		outboxRepo = postgresRepo.NewOutboxRepository(pool)
	} else {
		outboxRepo = postgresRepo.NewNullOutboxRepository()
	}

	// Initialize directory clients
	var players usecase.PlayerDirectory = directory.NewPlayerClient(cfg.PlayerDirectoryURL, cfg.DirectoryTimeout, slogger)
	if cache != nil {
		players = directory.NewCachedPlayerDirectory(players, cache, cfg.PlayerCacheTTL, slogger)
	}
	teams := directory.NewTeamClient(cfg.TeamDirectoryURL, cfg.DirectoryTimeout, slogger)

	// Initialize use cases
	transferUC := usecase.NewTransferUseCase(txManager, transferRepo, outboxRepo, players, teams, idGen, clockwork.NewRealClock())

	// Initialize handlers
	transferHandler := handler.NewTransferHandler(transferUC, appMetrics)
	healthHandler := handler.NewHealthHandler(pool, rdb)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TransferHandler:  transferHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
	})

	// Start the outbox publisher when NATS is configured
	publisherCtx, stopPublisher := context.WithCancel(ctx)
	defer stopPublisher()
	if cfg.OutboxEnabled && cfg.NATSURL != "" {
		natsConn, err := messaging.Connect(cfg.NATSURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to nats")
		}
		defer natsConn.Close()
		log.Info().Msg("connected to nats")

		ep := eventpublisher.NewEventPublisher(eventpublisher.Config{
			OutboxRepo: postgresRepo.NewOutboxRepository(pool),
			Publisher:  messaging.NewNATSPublisher(natsConn, cfg.EventSubjectBase, slogger),
			Logger:     slogger,
			Metrics:    appMetrics,
			BatchSize:  cfg.OutboxBatchSize,
			Interval:   cfg.OutboxInterval,
		})
		go func() {
			if err := ep.Start(publisherCtx); err != nil && err != context.Canceled {
				log.Error().Err(err).Msg("event publisher stopped")
			}
		}()
	}

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	stopPublisher()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func newSlogger(cfg *config.Config) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
