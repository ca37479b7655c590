package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/avelis/spacetravel/config"
	"github.com/avelis/spacetravel/internal/kafka"
	kafkaGo "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// The audit worker tails the entries topic and records every committed
// registry write.
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

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.EntriesTopic)
	defer consumer.Close()

	sugar.Infow("audit worker started", "topic", cfg.Kafka.EntriesTopic)
	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var event kafka.EntryEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			sugar.Warnw("decode entry event", "error", err)
			return nil
		}
		sugar.Infow("entry committed",
			"id", event.ID,
			"entity", event.Entity,
			"key", event.Key,
			"summary", event.Summary,
			"committed_at", event.CommittedAt,
		)
		return nil
	})
	if err != nil && ctx.Err() == nil {
		sugar.Fatalw("consumer stopped", "error", err)
	}
}
