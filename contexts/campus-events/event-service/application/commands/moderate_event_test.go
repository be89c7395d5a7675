package commands

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/adapters/memory"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/entities"
	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/errors"
	sharedevents "github.com/chetanck03/Terminal-Tribe/internal/shared/events"
)

func seedEvent(t *testing.T, store *memory.Store, status entities.EventStatus) entities.Event {
	t.Helper()
	now := time.Now().UTC()
	event := entities.Event{
		ID:        "event-1",
		Title:     "Open Mic Night",
		StartsAt:  now.Add(24 * time.Hour),
		Status:    status,
		CreatedBy: "creator-1",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := store.CreateEvent(context.Background(), event); err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return event
}

func moderateUseCase(store *memory.Store) ModerateEventUseCase {
	return ModerateEventUseCase{
		Repository:  store,
		Notifier:    store,
		Clock:       store,
		IDGenerator: store,
	}
}

func TestModerateEventApprovePending(t *testing.T) {
	store := memory.NewStore()
	seedEvent(t, store, entities.StatusPending)
	useCase := moderateUseCase(store)

	updated, err := useCase.Execute(context.Background(), ModerateEventCommand{
		EventID:    "event-1",
		ActorID:    "admin-1",
		ActorAdmin: true,
		Action:     ActionApprove,
	})
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if updated.Status != entities.StatusApproved {
		t.Fatalf("expected APPROVED, got %s", updated.Status)
	}

	notices := store.Notifications()
	if len(notices) != 1 {
		t.Fatalf("expected one notification, got %d", len(notices))
	}
	if notices[0].UserID != "creator-1" || notices[0].Type != "success" {
		t.Fatalf("unexpected notification %+v", notices[0])
	}

	pending, err := store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list outbox: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected one outbox row, got %d", len(pending))
	}
	if pending[0].EventType != "events.status_changed" {
		t.Fatalf("unexpected outbox event type %q", pending[0].EventType)
	}
	var envelope sharedevents.Envelope
	if err := json.Unmarshal(pending[0].Payload, &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if envelope.EntityID != "event-1" {
		t.Fatalf("envelope should reference the event, got %q", envelope.EntityID)
	}
}

func TestModerateEventRejectsIllegalTransition(t *testing.T) {
	store := memory.NewStore()
	seedEvent(t, store, entities.StatusRejected)
	useCase := moderateUseCase(store)

	_, err := useCase.Execute(context.Background(), ModerateEventCommand{
		EventID:    "event-1",
		ActorID:    "admin-1",
		ActorAdmin: true,
		Action:     ActionApprove,
	})
	if !errors.Is(err, domainerrors.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if len(store.Notifications()) != 0 {
		t.Fatal("failed transition must not notify")
	}
}

func TestModerateEventApproveRequiresAdmin(t *testing.T) {
	store := memory.NewStore()
	seedEvent(t, store, entities.StatusPending)
	useCase := moderateUseCase(store)

	_, err := useCase.Execute(context.Background(), ModerateEventCommand{
		EventID: "event-1",
		ActorID: "creator-1",
		Action:  ActionApprove,
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestModerateEventCreatorCanCancel(t *testing.T) {
	store := memory.NewStore()
	seedEvent(t, store, entities.StatusApproved)
	useCase := moderateUseCase(store)

	updated, err := useCase.Execute(context.Background(), ModerateEventCommand{
		EventID: "event-1",
		ActorID: "creator-1",
		Action:  ActionCancel,
	})
	if err != nil {
		t.Fatalf("creator cancel failed: %v", err)
	}
	if updated.Status != entities.StatusCancelled {
		t.Fatalf("expected CANCELLED, got %s", updated.Status)
	}

	notices := store.Notifications()
	if len(notices) != 1 || notices[0].Type != "warning" {
		t.Fatalf("expected one warning notification, got %+v", notices)
	}
}

func TestModerateEventCancelByStrangerForbidden(t *testing.T) {
	store := memory.NewStore()
	seedEvent(t, store, entities.StatusApproved)
	useCase := moderateUseCase(store)

	_, err := useCase.Execute(context.Background(), ModerateEventCommand{
		EventID: "event-1",
		ActorID: "someone-else",
		Action:  ActionCancel,
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestModerateEventUnknownEvent(t *testing.T) {
	store := memory.NewStore()
	useCase := moderateUseCase(store)

	_, err := useCase.Execute(context.Background(), ModerateEventCommand{
		EventID:    "missing",
		ActorID:    "admin-1",
		ActorAdmin: true,
		Action:     ActionReject,
	})
	if !errors.Is(err, domainerrors.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}
