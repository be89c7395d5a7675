package workers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	application "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/application"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/ports"
	"github.com/chetanck03/Terminal-Tribe/internal/shared/events"
)

// OutboxRelay drains pending outbox rows onto the message bus. The topic is
// the row's event type, so new event kinds need no relay changes.
type OutboxRelay struct {
	Outbox    ports.OutboxRepository
	Publisher ports.EventPublisher
	Clock     ports.Clock
	BatchSize int
	Logger    *slog.Logger
}

func (r OutboxRelay) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(r.Logger)
	limit := r.BatchSize
	if limit <= 0 {
		limit = 100
	}

	pending, err := r.Outbox.ListPendingOutbox(ctx, limit)
	if err != nil {
		logger.Error("outbox list failed",
			"event", "event_outbox_list_failed",
			"module", "campus-events/event-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	now := time.Now().UTC()
	if r.Clock != nil {
		now = r.Clock.Now().UTC()
	}

	for _, row := range pending {
		var envelope events.Envelope
		if err := json.Unmarshal(row.Payload, &envelope); err != nil {
			return err
		}
		if err := r.Publisher.Publish(ctx, row.EventType, envelope); err != nil {
			logger.Error("outbox publish failed",
				"event", "event_outbox_publish_failed",
				"module", "campus-events/event-service",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"error", err.Error(),
			)
			return err
		}
		if err := r.Outbox.MarkOutboxPublished(ctx, row.OutboxID, now); err != nil {
			return err
		}
	}
	return nil
}
