package ports

import (
	"context"
	"time"

	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/domain/entities"
	"github.com/chetanck03/Terminal-Tribe/internal/shared/events"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// Repository persists notification rows. MarkRead and DeleteNotification are
// scoped to the addressee: a mismatched userID behaves exactly like a missing
// row.
type Repository interface {
	CreateNotification(ctx context.Context, notification entities.Notification) error
	ListForUser(ctx context.Context, userID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, notificationID string, userID string) (entities.Notification, error)
	DeleteNotification(ctx context.Context, notificationID string, userID string) error
}

// DedupStore remembers which bus envelopes a consumer group already handled.
// MarkProcessed returns false when the envelope was seen before.
type DedupStore interface {
	MarkProcessed(ctx context.Context, consumerGroup string, eventID string) (bool, error)
}

// Subscriber attaches a consumer to a bus topic.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, consumerGroup string, handler func(context.Context, events.Envelope) error) error
}
