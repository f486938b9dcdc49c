package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-hrpms/internal/config"
	"go-hrpms/internal/events"
	"go-hrpms/internal/insight"
	"go-hrpms/internal/messaging/kafka/consumer"
	"go-hrpms/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const insightsConsumerGroup = "go-hrpms-insights"

// RunConsumer drops the cached insights snapshot whenever an HR event
// arrives, until SIGINT or SIGTERM.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database.DSN(), 5)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	insightService := insight.NewService(insight.NewRepository(gormDB), rdb, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		GroupTopics:    events.Topics(),
		GroupID:        insightsConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeHREvents(ctx, reader, insightService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
