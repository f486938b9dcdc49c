package producer

import (
	"context"
	"time"

	"go-hrpms/internal/messaging/kafka"

	"go.uber.org/zap"
)

const batchSize = 50

// ProcessOutboxEvents relays committed outbox rows to Kafka every
// pollInterval until ctx is cancelled.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	drain(ctx, repo, writer, log)
	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
			drain(ctx, repo, writer, log)
		}
	}
}

// drain keeps publishing while full batches go out, so a backlog is not
// limited to one batch per tick.
func drain(ctx context.Context, repo kafka.OutboxRepository, writer MessageWriter, log *zap.Logger) {
	for ctx.Err() == nil {
		sent, err := PublishPending(ctx, repo, writer, log)
		if err != nil {
			log.Error("process outbox events failed", zap.Error(err))
			return
		}
		if sent < batchSize {
			return
		}
	}
}

// PublishPending sends one batch of due events and returns how many were
// marked sent. A failed publish is rescheduled, not retried in place.
func PublishPending(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) (int, error) {
	events, err := repo.ListPending(ctx, batchSize)
	if err != nil {
		return 0, err
	}

	if len(events) == 0 {
		return 0, nil
	}

	logger.Debug("processing pending outbox events", zap.Int("count", len(events)))

	sent := 0
	for _, event := range events {
		if err := publishEvent(ctx, writer, event); err != nil {
			logger.Error("publish outbox event failed",
				zap.String("outbox_id", event.ID),
				zap.String("event_type", event.EventType),
				zap.String("topic", event.Topic),
				zap.Int("retry_count", event.RetryCount),
				zap.Error(err),
			)
			if err := repo.MarkFailed(ctx, event, err.Error()); err != nil {
				logger.Error("mark outbox failed failed", zap.String("outbox_id", event.ID), zap.Error(err))
			}
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			logger.Error("mark outbox sent failed",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
			continue
		}
		sent++

		logger.Info("outbox event sent",
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)
	}

	return sent, nil
}
