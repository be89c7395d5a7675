package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/adapters/memory"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/entities"
	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/errors"
)

func TestCreateEventStartsPending(t *testing.T) {
	store := memory.NewStore()
	useCase := CreateEventUseCase{Repository: store, Clock: store, IDGenerator: store}

	event, err := useCase.Execute(context.Background(), CreateEventCommand{
		ActorID:  "user-1",
		Title:    "Hack Night",
		StartsAt: time.Now().UTC().Add(48 * time.Hour),
		Capacity: 40,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if event.Status != entities.StatusPending {
		t.Fatalf("new events must start PENDING, got %s", event.Status)
	}
	if event.ID == "" {
		t.Fatal("expected a generated id")
	}
	if event.CreatedBy != "user-1" {
		t.Fatalf("expected creator recorded, got %q", event.CreatedBy)
	}
}

func TestCreateEventValidation(t *testing.T) {
	store := memory.NewStore()
	useCase := CreateEventUseCase{Repository: store, Clock: store, IDGenerator: store}
	starts := time.Now().UTC().Add(time.Hour)
	before := starts.Add(-time.Minute)

	cases := []struct {
		name string
		cmd  CreateEventCommand
		want error
	}{
		{"missing title", CreateEventCommand{ActorID: "u", StartsAt: starts}, domainerrors.ErrInvalidInput},
		{"missing start", CreateEventCommand{ActorID: "u", Title: "x"}, domainerrors.ErrInvalidInput},
		{"ends before start", CreateEventCommand{ActorID: "u", Title: "x", StartsAt: starts, EndsAt: &before}, domainerrors.ErrInvalidInput},
		{"negative capacity", CreateEventCommand{ActorID: "u", Title: "x", StartsAt: starts, Capacity: -1}, domainerrors.ErrInvalidInput},
		{"anonymous actor", CreateEventCommand{Title: "x", StartsAt: starts}, domainerrors.ErrForbidden},
	}
	for _, tc := range cases {
		if _, err := useCase.Execute(context.Background(), tc.cmd); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestUpdateEventOwnershipRequired(t *testing.T) {
	store := memory.NewStore()
	seedEvent(t, store, entities.StatusPending)
	useCase := UpdateEventUseCase{Repository: store, Clock: store}

	title := "Renamed"
	_, err := useCase.Execute(context.Background(), UpdateEventCommand{
		EventID: "event-1",
		ActorID: "stranger",
		Title:   &title,
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	updated, err := useCase.Execute(context.Background(), UpdateEventCommand{
		EventID: "event-1",
		ActorID: "creator-1",
		Title:   &title,
	})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Fatalf("expected renamed title, got %q", updated.Title)
	}
}

func TestDeleteEventAdminOverride(t *testing.T) {
	store := memory.NewStore()
	seedEvent(t, store, entities.StatusPending)
	useCase := DeleteEventUseCase{Repository: store}

	if err := useCase.Execute(context.Background(), DeleteEventCommand{EventID: "event-1", ActorID: "stranger"}); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := useCase.Execute(context.Background(), DeleteEventCommand{EventID: "event-1", ActorID: "admin-1", ActorAdmin: true}); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if _, err := store.GetEvent(context.Background(), "event-1"); !errors.Is(err, domainerrors.ErrEventNotFound) {
		t.Fatalf("expected event gone, got %v", err)
	}
}
