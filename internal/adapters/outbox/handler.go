package outbox

import (
	"context"
	"time"

	"github.com/rafaelleal24/sales/internal/adapters/config"
	"github.com/rafaelleal24/sales/internal/core/logger"
	"github.com/rafaelleal24/sales/internal/core/port"
)

const defaultMaxAttempts = 5

// Handler relays outbox entries to the broker. Entries are deleted only after a
// successful publish, so delivery is at least once. An entry that keeps failing is
// parked after maxAttempts publishes so it stops holding up the batch.
type Handler struct {
	outbox      Repository
	broker      port.BrokerPort
	interval    time.Duration
	batch       int
	maxAttempts int
}

func NewHandler(outbox Repository, broker port.BrokerPort, config config.OutboxConfig) *Handler {
	maxAttempts := config.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	return &Handler{
		outbox:      outbox,
		broker:      broker,
		interval:    config.Interval,
		batch:       config.BatchSize,
		maxAttempts: maxAttempts,
	}
}

// Start polls immediately and then on every interval until ctx is cancelled.
func (h *Handler) Start(ctx context.Context) {
	h.processEvents(ctx)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.processEvents(ctx)
		}
	}
}

func (h *Handler) processEvents(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	entries, err := h.outbox.FetchPending(ctx, h.batch)
	if err != nil {
		logger.Error(ctx, "outbox: failed to fetch pending events", err, map[string]any{
			"batch": h.batch,
		})
		return
	}

	for _, entry := range entries {
		eventLogAttributes := map[string]any{
			"event_id":    entry.ID,
			"event_name":  entry.EventName,
			"entity_name": entry.EntityName,
		}
		if err := h.broker.PublishRaw(ctx, entry.EventName, entry.EntityName, entry.EventData); err != nil {
			logger.Error(ctx, "outbox: failed to publish event", err, eventLogAttributes)
			h.recordFailure(ctx, entry, err, eventLogAttributes)
			continue
		}

		logger.Debug(ctx, "outbox: event published", eventLogAttributes)

		// the entry is already on the broker; delete it even if ctx was cancelled meanwhile
		if err := h.outbox.Delete(context.WithoutCancel(ctx), entry.ID); err != nil {
			logger.Error(ctx, "outbox: failed to delete event after publish", err, eventLogAttributes)
		}

		if ctx.Err() != nil {
			return
		}
	}
}

func (h *Handler) recordFailure(ctx context.Context, entry Entry, cause error, attrs map[string]any) {
	ctx = context.WithoutCancel(ctx)

	attempts, err := h.outbox.RecordFailure(ctx, entry.ID, cause.Error())
	if err != nil {
		logger.Error(ctx, "outbox: failed to record publish failure", err, attrs)
		return
	}
	if attempts < h.maxAttempts {
		return
	}

	attrs["attempts"] = attempts
	if err := h.outbox.Park(ctx, entry.ID); err != nil {
		logger.Error(ctx, "outbox: failed to park event", err, attrs)
		return
	}
	logger.Warn(ctx, "outbox: event parked after repeated publish failures", attrs)
}
