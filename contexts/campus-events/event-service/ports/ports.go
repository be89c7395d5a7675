package ports

import (
	"context"
	"time"

	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/entities"
	"github.com/chetanck03/Terminal-Tribe/internal/shared/events"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID generation for events and outbox rows.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// EventFilter narrows event listings. Zero value lists everything.
type EventFilter struct {
	Status entities.EventStatus
}

// EventUpdate carries the client-mutable event fields. Status is absent on
// purpose: it only moves through StatusChangeInput.
type EventUpdate struct {
	Title       *string
	Description *string
	Location    *string
	StartsAt    *time.Time
	EndsAt      *time.Time
	Capacity    *int
	UpdatedAt   time.Time
}

// StatusChangeInput is persisted atomically with its outbox row. From guards
// the transition so concurrent moderation settles on one winner.
type StatusChangeInput struct {
	EventID       string
	From          entities.EventStatus
	To            entities.EventStatus
	ChangedBy     string
	ChangedAt     time.Time
	OutboxID      string
	OutboxPayload []byte
}

// JoinInput records one attendance edge plus its outbox row.
type JoinInput struct {
	EventID       string
	UserID        string
	JoinedAt      time.Time
	OutboxID      string
	OutboxPayload []byte
}

// LeaveInput removes one attendance edge plus its outbox row.
type LeaveInput struct {
	EventID       string
	UserID        string
	LeftAt        time.Time
	OutboxID      string
	OutboxPayload []byte
}

// Repository is the write/read boundary for event domain state.
type Repository interface {
	CreateEvent(ctx context.Context, event entities.Event) error
	GetEvent(ctx context.Context, id string) (entities.Event, error)
	ListEvents(ctx context.Context, filter EventFilter) ([]entities.Event, error)
	UpdateEvent(ctx context.Context, id string, update EventUpdate) (entities.Event, error)
	// DeleteEvent removes the event and cascades its attendance edges.
	DeleteEvent(ctx context.Context, id string) error
	// ChangeStatus applies a guarded transition; ErrInvalidTransition when the
	// row is no longer in the expected From status.
	ChangeStatus(ctx context.Context, input StatusChangeInput) (entities.Event, error)
	AddAttendance(ctx context.Context, input JoinInput) error
	RemoveAttendance(ctx context.Context, input LeaveInput) error
	ListAttendance(ctx context.Context, eventID string) ([]entities.Attendance, error)
}

// OutboxMessage represents a pending relay message.
type OutboxMessage struct {
	OutboxID  string
	EventType string
	Payload   []byte
	CreatedAt time.Time
}

// OutboxRepository supports worker relay polling and acknowledgement.
type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

// EventPublisher emits envelopes to the message bus adapter.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event events.Envelope) error
}

// NotificationInput is what a moderation decision tells the addressee.
type NotificationInput struct {
	UserID  string
	Type    string
	Title   string
	Message string
}

// Notifier records a notification for a directory record. Moderation writes
// through this port so the notification row exists when the call returns.
type Notifier interface {
	RecordNotification(ctx context.Context, input NotificationInput) error
}
