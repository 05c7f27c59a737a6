package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go-inova/internal/config"
	"go-inova/internal/events"
	"go-inova/internal/messaging/kafka/consumer"
	"go-inova/internal/news"
	"go-inova/internal/shared/connection"
	"go-inova/internal/storage"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer removes cover assets of deleted and evicted news articles.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return errors.New("KAFKA_BROKER is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.Password, cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	defer rdb.Close()

	assets, err := storage.NewMinIOStore(ctx, cfg.MinIO)
	if err != nil {
		return err
	}
	uploader := storage.NewUploader(assets, nil, assets.Bucket(), logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.NewsLifecycleTopic,
		GroupID:        cfg.Kafka.ConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	retry := consumer.RetryPolicy{
		Attempts:   cfg.Kafka.CleanupAttempts,
		Backoff:    cfg.Kafka.CleanupBackoff,
		MaxBackoff: cfg.Kafka.CleanupMaxBackoff,
	}
	go consumer.ConsumeNewsLifecycle(ctx, reader, uploader, news.NewHomeCache(rdb), retry, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
