package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/avelis/spacetravel/config"
	"github.com/avelis/spacetravel/internal/bootstrap"
	"github.com/avelis/spacetravel/internal/cache"
	"github.com/avelis/spacetravel/internal/kafka"
	"github.com/avelis/spacetravel/internal/repository"
	"github.com/avelis/spacetravel/internal/service/itinerary"
	"github.com/avelis/spacetravel/internal/service/registry"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		sugar.Fatalw("connect postgres", "error", err)
	}
	defer pool.Close()

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		sugar.Fatalw("ensure schema", "error", err)
	}

	redisCache := cache.NewRedisCache(cfg.Redis, cfg.Registry.CacheTTL())
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	registryRepo := repository.NewRegistryRepository(pool)
	itineraryRepo := repository.NewItineraryRepository(pool)

	registrySvc := registry.NewRegistryService(
		registryRepo,
		redisCache,
		producer,
		cfg.Kafka.EntriesTopic,
		cfg.Registry.ConfirmTimeout(),
		sugar,
	)
	itinerarySvc := itinerary.NewItineraryService(itineraryRepo, redisCache, sugar)

	sugar.Infow("starting server", "address", cfg.HTTP.Address)
	if err := bootstrap.Run(ctx, cfg, registrySvc, itinerarySvc); err != nil {
		sugar.Fatalw("server error", "error", err)
	}
}
