package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hrpms/internal/config"
	"go-hrpms/internal/insight"
	"go-hrpms/internal/messaging/kafka"
	"go-hrpms/internal/messaging/kafka/producer"
	"go-hrpms/internal/shared/connection"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RunWorker relays the outbox to Kafka and refreshes the insights snapshot
// on cfg.InsightsRefreshSpec until SIGINT or SIGTERM.
func RunWorker(cfg config.Config) error {
	logger := zap.L().Named("app.worker")

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

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	outboxRepo := kafka.NewOutboxRepository(gormDB)
	insightService := insight.NewService(insight.NewRepository(gormDB), rdb, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, 3*time.Second)

	scheduler, err := scheduleInsightsRefresh(ctx, cfg.InsightsRefreshSpec, insightService, logger)
	if err != nil {
		return err
	}
	scheduler.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()
	<-scheduler.Stop().Done()

	return nil
}

func scheduleInsightsRefresh(ctx context.Context, spec string, insights insight.Service, logger *zap.Logger) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		refreshCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		snap, err := insights.Refresh(refreshCtx)
		if err != nil {
			logger.Error("insights refresh failed", zap.Error(err))
			return
		}
		logger.Info("insights refreshed", zap.Int64("total_active", snap.TotalActive))
	})
	if err != nil {
		return nil, fmt.Errorf("invalid INSIGHTS_REFRESH_SPEC %q: %w", spec, err)
	}
	return c, nil
}
