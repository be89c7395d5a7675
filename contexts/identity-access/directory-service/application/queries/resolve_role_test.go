package queries

import (
	"context"
	"testing"
	"time"

	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/adapters/memory"
	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/domain/entities"
)

func TestResolveRoleProvisionsFirstLogin(t *testing.T) {
	store := memory.NewStore()
	useCase := ResolveRoleUseCase{Repository: store, Clock: store}

	resolution := useCase.Execute(context.Background(), ResolveRoleQuery{
		SubjectID: "sub-1",
		Email:     "dana@campus.edu",
	})
	if resolution.Outcome != entities.OutcomeCreated {
		t.Fatalf("expected created outcome, got %s", resolution.Outcome)
	}
	if resolution.Role != entities.RoleUser {
		t.Fatalf("provisioned record must carry USER, got %s", resolution.Role)
	}

	record, err := store.GetUser(context.Background(), "sub-1")
	if err != nil {
		t.Fatalf("expected provisioned record, got %v", err)
	}
	if record.Name != "dana" {
		t.Fatalf("expected name defaulted from email local-part, got %q", record.Name)
	}
}

func TestResolveRoleIsIdempotent(t *testing.T) {
	store := memory.NewStore()
	useCase := ResolveRoleUseCase{Repository: store, Clock: store}

	first := useCase.Execute(context.Background(), ResolveRoleQuery{SubjectID: "sub-1", Email: "a@campus.edu"})
	second := useCase.Execute(context.Background(), ResolveRoleQuery{SubjectID: "sub-1", Email: "a@campus.edu"})

	if first.Outcome != entities.OutcomeCreated {
		t.Fatalf("first resolution should create, got %s", first.Outcome)
	}
	if second.Outcome != entities.OutcomeFound {
		t.Fatalf("second resolution should find, got %s", second.Outcome)
	}

	users, err := store.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected exactly one record after repeated logins, got %d", len(users))
	}
}

func TestResolveRoleKeepsExistingRole(t *testing.T) {
	store := memory.NewStore()
	store.Seed(entities.User{
		ID:        "admin-1",
		Email:     "root@campus.edu",
		Name:      "Root",
		Role:      entities.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	})
	useCase := ResolveRoleUseCase{Repository: store, Clock: store}

	resolution := useCase.Execute(context.Background(), ResolveRoleQuery{SubjectID: "admin-1"})
	if resolution.Outcome != entities.OutcomeFound {
		t.Fatalf("expected found outcome, got %s", resolution.Outcome)
	}
	if !resolution.IsAdmin() {
		t.Fatal("existing ADMIN record should resolve as admin")
	}
}

func TestResolveRoleFailsClosedOnStoreFailure(t *testing.T) {
	store := memory.NewStore()
	store.Seed(entities.User{ID: "admin-1", Email: "root@campus.edu", Role: entities.RoleAdmin})
	store.FailLookups = true
	useCase := ResolveRoleUseCase{Repository: store, Clock: store}

	resolution := useCase.Execute(context.Background(), ResolveRoleQuery{SubjectID: "admin-1"})
	if resolution.Outcome != entities.OutcomeDenied {
		t.Fatalf("store failure must deny, got %s", resolution.Outcome)
	}
	if resolution.IsAdmin() {
		t.Fatal("denied resolution must never grant admin")
	}
	if resolution.Role != entities.RoleUser {
		t.Fatalf("denied resolution must carry USER, got %s", resolution.Role)
	}
}

func TestResolveRoleDeniesAnonymousSubject(t *testing.T) {
	store := memory.NewStore()
	useCase := ResolveRoleUseCase{Repository: store, Clock: store}

	resolution := useCase.Execute(context.Background(), ResolveRoleQuery{SubjectID: "   "})
	if resolution.Outcome != entities.OutcomeDenied {
		t.Fatalf("blank subject must deny, got %s", resolution.Outcome)
	}
}
