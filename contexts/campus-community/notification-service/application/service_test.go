package application

import (
	"context"
	"errors"
	"testing"

	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/adapters/memory"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/domain/entities"
	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/domain/errors"
)

func newService(store *memory.Store) Service {
	return Service{Repo: store, Clock: store, IDGenerator: store}
}

func TestRecordDefaultsTypeToInfo(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	notification, err := service.Record(context.Background(), RecordInput{
		UserID: "user-1",
		Title:  "Welcome",
	})
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if notification.Type != entities.TypeInfo {
		t.Fatalf("expected info type default, got %q", notification.Type)
	}
	if notification.Read {
		t.Fatal("new notifications start unread")
	}
}

func TestRecordRequiresUserAndTitle(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	if _, err := service.Record(context.Background(), RecordInput{Title: "x"}); !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing user, got %v", err)
	}
	if _, err := service.Record(context.Background(), RecordInput{UserID: "user-1"}); !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing title, got %v", err)
	}
}

func TestMarkReadAddresseeOnly(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	notification, err := service.Record(context.Background(), RecordInput{UserID: "user-1", Title: "Hello"})
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}

	// Another user's id yields not-found, never a hint the row exists.
	if _, err := service.MarkRead(context.Background(), notification.ID, "user-2"); !errors.Is(err, domainerrors.ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}

	updated, err := service.MarkRead(context.Background(), notification.ID, "user-1")
	if err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	if !updated.Read {
		t.Fatal("expected notification marked read")
	}
}

func TestDeleteAddresseeOnly(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	notification, err := service.Record(context.Background(), RecordInput{UserID: "user-1", Title: "Hello"})
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}

	if err := service.Delete(context.Background(), notification.ID, "user-2"); !errors.Is(err, domainerrors.ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}
	if err := service.Delete(context.Background(), notification.ID, "user-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	remaining, err := service.ListForUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected empty inbox, got %d", len(remaining))
	}
}
