package application

import (
	"context"
	"errors"
	"testing"

	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service/adapters/memory"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service/domain/entities"
	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service/domain/errors"
)

func newService(store *memory.Store) Service {
	return Service{Repo: store, Clock: store, IDGenerator: store}
}

func TestCreateClubEnrollsCreatorAsAdmin(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	club, err := service.CreateClub(context.Background(), CreateClubInput{
		ActorID: "founder-1",
		Name:    "Chess Club",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	detail, err := service.GetClub(context.Background(), club.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if detail.MemberCount != 1 {
		t.Fatalf("expected the founder enrolled, got %d members", detail.MemberCount)
	}
	if detail.Members[0].UserID != "founder-1" || detail.Members[0].Role != entities.MemberRoleAdmin {
		t.Fatalf("founder must hold the ADMIN member role, got %+v", detail.Members[0])
	}
}

func TestCreateClubRequiresName(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	_, err := service.CreateClub(context.Background(), CreateClubInput{ActorID: "founder-1", Name: "   "})
	if !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJoinClubDuplicateConflict(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	club, err := service.CreateClub(context.Background(), CreateClubInput{ActorID: "founder-1", Name: "Chess Club"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	membership, err := service.JoinClub(context.Background(), club.ID, "member-1")
	if err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if membership.Role != entities.MemberRoleMember {
		t.Fatalf("joiners get the MEMBER role, got %s", membership.Role)
	}

	if _, err := service.JoinClub(context.Background(), club.ID, "member-1"); !errors.Is(err, domainerrors.ErrAlreadyMember) {
		t.Fatalf("expected ErrAlreadyMember, got %v", err)
	}
}

func TestLeaveClubCreatorBlocked(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	club, err := service.CreateClub(context.Background(), CreateClubInput{ActorID: "founder-1", Name: "Chess Club"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := service.LeaveClub(context.Background(), club.ID, "founder-1"); !errors.Is(err, domainerrors.ErrCreatorCannotLeave) {
		t.Fatalf("expected ErrCreatorCannotLeave, got %v", err)
	}
}

func TestLeaveClubNonMember(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	club, err := service.CreateClub(context.Background(), CreateClubInput{ActorID: "founder-1", Name: "Chess Club"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := service.LeaveClub(context.Background(), club.ID, "drifter-1"); !errors.Is(err, domainerrors.ErrNotMember) {
		t.Fatalf("expected ErrNotMember, got %v", err)
	}
}

func TestUpdateClubOwnerOrAdminOnly(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	club, err := service.CreateClub(context.Background(), CreateClubInput{ActorID: "founder-1", Name: "Chess Club"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	name := "Go Club"
	_, err = service.UpdateClub(context.Background(), UpdateClubInput{ClubID: club.ID, ActorID: "member-1", Name: &name})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	updated, err := service.UpdateClub(context.Background(), UpdateClubInput{ClubID: club.ID, ActorID: "member-1", ActorAdmin: true, Name: &name})
	if err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
	if updated.Name != "Go Club" {
		t.Fatalf("expected renamed club, got %q", updated.Name)
	}
}

func TestDeleteClubCascadesMemberships(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	club, err := service.CreateClub(context.Background(), CreateClubInput{ActorID: "founder-1", Name: "Chess Club"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := service.JoinClub(context.Background(), club.ID, "member-1"); err != nil {
		t.Fatalf("join failed: %v", err)
	}

	if err := service.DeleteClub(context.Background(), club.ID, "founder-1", false); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := service.GetClub(context.Background(), club.ID); !errors.Is(err, domainerrors.ErrClubNotFound) {
		t.Fatalf("expected ErrClubNotFound, got %v", err)
	}
	members, err := store.ListMembers(context.Background(), club.ID)
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	if len(members) != 0 {
		t.Fatalf("memberships must be removed with the club, got %d", len(members))
	}
}
