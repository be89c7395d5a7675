package workers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/adapters/memory"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/application"
	"github.com/chetanck03/Terminal-Tribe/internal/shared/events"
)

func newConsumer(store *memory.Store) MembershipActivityConsumer {
	return MembershipActivityConsumer{
		Service: application.Service{Repo: store, Clock: store, IDGenerator: store},
		Dedup:   store,
	}
}

func attendanceEnvelope(t *testing.T, envelopeID string, creatorID string, userID string, action string) events.Envelope {
	t.Helper()
	data, err := json.Marshal(map[string]string{
		"event_id":    "event-1",
		"event_title": "Open Mic Night",
		"creator_id":  creatorID,
		"user_id":     userID,
		"action":      action,
	})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return events.Envelope{
		EventID:       envelopeID,
		EventType:     "events.attendance",
		SourceService: "campus-events/event-service",
		OccurredAt:    time.Now().UTC(),
		EntityType:    "event",
		EntityID:      "event-1",
		Data:          data,
	}
}

func TestHandleNotifiesCreatorOnce(t *testing.T) {
	store := memory.NewStore()
	consumer := newConsumer(store)
	envelope := attendanceEnvelope(t, "env-1", "creator-1", "user-1", "joined")

	if err := consumer.Handle(context.Background(), envelope); err != nil {
		t.Fatalf("first delivery failed: %v", err)
	}
	// Redelivery of the same envelope id must be a no-op.
	if err := consumer.Handle(context.Background(), envelope); err != nil {
		t.Fatalf("redelivery failed: %v", err)
	}

	inbox, err := store.ListForUser(context.Background(), "creator-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(inbox) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(inbox))
	}
	if inbox[0].Title != "New attendee" {
		t.Fatalf("unexpected title %q", inbox[0].Title)
	}
}

func TestHandleIgnoresLeaveActivity(t *testing.T) {
	store := memory.NewStore()
	consumer := newConsumer(store)

	if err := consumer.Handle(context.Background(), attendanceEnvelope(t, "env-1", "creator-1", "user-1", "left")); err != nil {
		t.Fatalf("handle failed: %v", err)
	}

	inbox, err := store.ListForUser(context.Background(), "creator-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(inbox) != 0 {
		t.Fatalf("leave activity must not notify, got %d", len(inbox))
	}
}

func TestHandleIgnoresSelfJoin(t *testing.T) {
	store := memory.NewStore()
	consumer := newConsumer(store)

	if err := consumer.Handle(context.Background(), attendanceEnvelope(t, "env-1", "creator-1", "creator-1", "joined")); err != nil {
		t.Fatalf("handle failed: %v", err)
	}

	inbox, err := store.ListForUser(context.Background(), "creator-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(inbox) != 0 {
		t.Fatalf("self-joins must not notify, got %d", len(inbox))
	}
}
