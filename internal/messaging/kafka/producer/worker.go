package producer

import (
	"context"
	"time"

	"go-payroll/internal/messaging/kafka"

	"go.uber.org/zap"
)

const (
	defaultPollInterval = 3 * time.Second
	batchSize           = 50
	// claimLease must outlast one batch of broker writes.
	claimLease = time.Minute
	// maxBatchesPerTick caps a drain so a huge backlog cannot starve
	// shutdown.
	maxBatchesPerTick = 20
)

// BatchResult counts what one relay pass did with the rows it claimed.
type BatchResult struct {
	Claimed int
	Sent    int
	Failed  int
	Dead    int
}

// ProcessOutboxEvents relays pending outbox rows to Kafka until ctx is
// cancelled. A row is marked sent only after the broker accepted it.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

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

// drain keeps claiming while batches come back full. A generation run writes
// one payroll.generated row per employee, so a single tick usually lags.
func drain(ctx context.Context, repo kafka.OutboxRepository, writer MessageWriter, log *zap.Logger) {
	var total BatchResult
	for i := 0; i < maxBatchesPerTick && ctx.Err() == nil; i++ {
		res, err := ProcessPendingEvents(ctx, repo, writer, log)
		if err != nil {
			log.Error("process outbox events failed", zap.Error(err))
			break
		}
		total.Claimed += res.Claimed
		total.Sent += res.Sent
		total.Failed += res.Failed
		total.Dead += res.Dead
		if res.Claimed < batchSize {
			break
		}
	}

	if total.Claimed > 0 {
		log.Info("outbox relay pass finished",
			zap.Int("claimed", total.Claimed),
			zap.Int("sent", total.Sent),
			zap.Int("failed", total.Failed),
			zap.Int("dead", total.Dead),
		)
	}
}

// ProcessPendingEvents claims one batch and publishes it.
func ProcessPendingEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) (BatchResult, error) {
	events, err := repo.ClaimPending(ctx, batchSize, claimLease)
	if err != nil {
		return BatchResult{}, err
	}

	res := BatchResult{Claimed: len(events)}
	if len(events) == 0 {
		return res, nil
	}

	logger.Debug("processing pending outbox events", zap.Int("count", len(events)))

	for _, event := range events {
		if err := publishEvent(ctx, writer, event); err != nil {
			res.Failed++
			fields := []zap.Field{
				zap.String("outbox_id", event.ID),
				zap.String("event_type", event.EventType),
				zap.String("aggregate_id", event.AggregateID),
				zap.Int("attempt", event.RetryCount+1),
				zap.Error(err),
			}
			if event.RetryCount+1 >= kafka.MaxDeliveryAttempts {
				res.Dead++
				logger.Error("outbox event dead-lettered", fields...)
			} else {
				logger.Warn("publish outbox event failed", fields...)
			}

			if markErr := repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				logger.Error("mark outbox failed failed", zap.String("outbox_id", event.ID), zap.Error(markErr))
			}
			continue
		}

		// The lease expires and the row is re-sent if this fails; consumers
		// are idempotent per (employee, period).
		if err := repo.MarkSent(ctx, event.ID); err != nil {
			logger.Error("mark outbox sent failed",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
			continue
		}
		res.Sent++

		logger.Debug("outbox event sent",
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
			zap.String("request_id", event.RequestID),
		)
	}

	return res, nil
}
