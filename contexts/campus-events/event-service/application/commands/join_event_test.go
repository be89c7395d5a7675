package commands

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/adapters/memory"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/entities"
	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/errors"
	sharedevents "github.com/chetanck03/Terminal-Tribe/internal/shared/events"
)

func TestJoinEventApprovedOnly(t *testing.T) {
	store := memory.NewStore()
	seedEvent(t, store, entities.StatusPending)
	useCase := JoinEventUseCase{Repository: store, Clock: store, IDGenerator: store}

	_, err := useCase.Execute(context.Background(), JoinEventCommand{EventID: "event-1", ActorID: "user-1"})
	if !errors.Is(err, domainerrors.ErrEventNotJoinable) {
		t.Fatalf("joining a pending event must fail, got %v", err)
	}
}

func TestJoinEventRecordsAttendanceAndOutbox(t *testing.T) {
	store := memory.NewStore()
	seedEvent(t, store, entities.StatusApproved)
	useCase := JoinEventUseCase{Repository: store, Clock: store, IDGenerator: store}

	attendance, err := useCase.Execute(context.Background(), JoinEventCommand{EventID: "event-1", ActorID: "user-1"})
	if err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if attendance.EventID != "event-1" || attendance.UserID != "user-1" {
		t.Fatalf("unexpected attendance %+v", attendance)
	}

	edges, err := store.ListAttendance(context.Background(), "event-1")
	if err != nil {
		t.Fatalf("list attendance: %v", err)
	}
	if len(edges) != 1 {
		t.Fatalf("expected one attendee, got %d", len(edges))
	}

	pending, err := store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list outbox: %v", err)
	}
	if len(pending) != 1 || pending[0].EventType != "events.attendance" {
		t.Fatalf("expected one attendance outbox row, got %+v", pending)
	}

	var envelope sharedevents.Envelope
	if err := json.Unmarshal(pending[0].Payload, &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	var data map[string]string
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if data["action"] != "joined" || data["creator_id"] != "creator-1" {
		t.Fatalf("envelope data missing join details: %+v", data)
	}
}

func TestJoinEventDuplicateConflict(t *testing.T) {
	store := memory.NewStore()
	seedEvent(t, store, entities.StatusApproved)
	useCase := JoinEventUseCase{Repository: store, Clock: store, IDGenerator: store}

	if _, err := useCase.Execute(context.Background(), JoinEventCommand{EventID: "event-1", ActorID: "user-1"}); err != nil {
		t.Fatalf("first join failed: %v", err)
	}
	_, err := useCase.Execute(context.Background(), JoinEventCommand{EventID: "event-1", ActorID: "user-1"})
	if !errors.Is(err, domainerrors.ErrAlreadyJoined) {
		t.Fatalf("expected ErrAlreadyJoined, got %v", err)
	}
}

func TestLeaveEventWithoutJoin(t *testing.T) {
	store := memory.NewStore()
	seedEvent(t, store, entities.StatusApproved)
	useCase := LeaveEventUseCase{Repository: store, Clock: store, IDGenerator: store}

	err := useCase.Execute(context.Background(), LeaveEventCommand{EventID: "event-1", ActorID: "user-1"})
	if !errors.Is(err, domainerrors.ErrNotJoined) {
		t.Fatalf("expected ErrNotJoined, got %v", err)
	}
}

func TestLeaveEventRemovesAttendance(t *testing.T) {
	store := memory.NewStore()
	seedEvent(t, store, entities.StatusApproved)
	join := JoinEventUseCase{Repository: store, Clock: store, IDGenerator: store}
	leave := LeaveEventUseCase{Repository: store, Clock: store, IDGenerator: store}

	if _, err := join.Execute(context.Background(), JoinEventCommand{EventID: "event-1", ActorID: "user-1"}); err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if err := leave.Execute(context.Background(), LeaveEventCommand{EventID: "event-1", ActorID: "user-1"}); err != nil {
		t.Fatalf("leave failed: %v", err)
	}

	edges, err := store.ListAttendance(context.Background(), "event-1")
	if err != nil {
		t.Fatalf("list attendance: %v", err)
	}
	if len(edges) != 0 {
		t.Fatalf("expected no attendees after leave, got %d", len(edges))
	}
}
