package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/adapters/memory"
	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/domain/entities"
	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/domain/errors"
)

func seededStore() *memory.Store {
	store := memory.NewStore()
	store.Seed(entities.User{ID: "user-1", Email: "one@campus.edu", Name: "One", Role: entities.RoleUser})
	store.Seed(entities.User{ID: "admin-1", Email: "root@campus.edu", Name: "Root", Role: entities.RoleAdmin})
	return store
}

func TestUpdateUserOwnerCanEditProfile(t *testing.T) {
	store := seededStore()
	useCase := UpdateUserUseCase{Repository: store, Clock: store}

	name := "Renamed"
	user, err := useCase.Execute(context.Background(), UpdateUserCommand{
		ActorID:  "user-1",
		TargetID: "user-1",
		Name:     &name,
	})
	if err != nil {
		t.Fatalf("owner profile update failed: %v", err)
	}
	if user.Name != "Renamed" {
		t.Fatalf("expected updated name, got %q", user.Name)
	}
}

func TestUpdateUserNonOwnerForbidden(t *testing.T) {
	store := seededStore()
	useCase := UpdateUserUseCase{Repository: store, Clock: store}

	name := "Hijack"
	_, err := useCase.Execute(context.Background(), UpdateUserCommand{
		ActorID:  "user-2",
		TargetID: "user-1",
		Name:     &name,
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUpdateUserRoleChangeRequiresAdmin(t *testing.T) {
	store := seededStore()
	useCase := UpdateUserUseCase{Repository: store, Clock: store}

	role := "ADMIN"
	_, err := useCase.Execute(context.Background(), UpdateUserCommand{
		ActorID:  "user-1",
		TargetID: "user-1",
		Role:     &role,
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("self-promotion must be forbidden, got %v", err)
	}

	user, err := useCase.Execute(context.Background(), UpdateUserCommand{
		ActorID:    "admin-1",
		ActorAdmin: true,
		TargetID:   "user-1",
		Role:       &role,
	})
	if err != nil {
		t.Fatalf("admin role change failed: %v", err)
	}
	if user.Role != entities.RoleAdmin {
		t.Fatalf("expected ADMIN after promotion, got %s", user.Role)
	}
}

func TestUpdateUserRejectsUnknownRole(t *testing.T) {
	store := seededStore()
	useCase := UpdateUserUseCase{Repository: store, Clock: store}

	role := "SUPERUSER"
	_, err := useCase.Execute(context.Background(), UpdateUserCommand{
		ActorID:    "admin-1",
		ActorAdmin: true,
		TargetID:   "user-1",
		Role:       &role,
	})
	if !errors.Is(err, domainerrors.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUpdateUserRejectsEmptyPatch(t *testing.T) {
	store := seededStore()
	useCase := UpdateUserUseCase{Repository: store, Clock: store}

	_, err := useCase.Execute(context.Background(), UpdateUserCommand{
		ActorID:  "user-1",
		TargetID: "user-1",
	})
	if !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdateUserUnknownTarget(t *testing.T) {
	store := seededStore()
	useCase := UpdateUserUseCase{Repository: store, Clock: store}

	name := "Ghost"
	_, err := useCase.Execute(context.Background(), UpdateUserCommand{
		ActorID:    "admin-1",
		ActorAdmin: true,
		TargetID:   "missing",
		Name:       &name,
	})
	if !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
