package application

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service/domain/errors"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service/domain/entities"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service/ports"
)

// Service implements club CRUD and membership operations.
type Service struct {
	Repo        ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

type CreateClubInput struct {
	ActorID     string
	Name        string
	Description string
}

type UpdateClubInput struct {
	ClubID      string
	ActorID     string
	ActorAdmin  bool
	Name        *string
	Description *string
}

// ClubDetail is a club together with its membership edges.
type ClubDetail struct {
	Club        entities.Club
	MemberCount int
	Members     []entities.Membership
}

func (s Service) CreateClub(ctx context.Context, input CreateClubInput) (entities.Club, error) {
	input.ActorID = strings.TrimSpace(input.ActorID)
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	if input.ActorID == "" || input.Name == "" {
		return entities.Club{}, domainerrors.ErrInvalidInput
	}

	clubID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Club{}, err
	}
	now := s.Clock.Now()
	club := entities.Club{
		ID:          clubID,
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   input.ActorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	creator := entities.Membership{
		ClubID:   clubID,
		UserID:   input.ActorID,
		Role:     entities.MemberRoleAdmin,
		JoinedAt: now,
	}
	if err := s.Repo.CreateClub(ctx, club, creator); err != nil {
		return entities.Club{}, err
	}

	s.logger().Info("club created",
		"event", "club_created",
		"module", "campus-community/club-service",
		"layer", "application",
		"club_id", club.ID,
		"created_by", club.CreatedBy,
	)
	return club, nil
}

func (s Service) GetClub(ctx context.Context, clubID string) (ClubDetail, error) {
	clubID = strings.TrimSpace(clubID)
	if clubID == "" {
		return ClubDetail{}, domainerrors.ErrInvalidClubID
	}
	club, err := s.Repo.GetClub(ctx, clubID)
	if err != nil {
		return ClubDetail{}, err
	}
	members, err := s.Repo.ListMembers(ctx, clubID)
	if err != nil {
		return ClubDetail{}, err
	}
	return ClubDetail{Club: club, MemberCount: len(members), Members: members}, nil
}

func (s Service) ListClubs(ctx context.Context) ([]entities.Club, error) {
	return s.Repo.ListClubs(ctx)
}

func (s Service) UpdateClub(ctx context.Context, input UpdateClubInput) (entities.Club, error) {
	input.ClubID = strings.TrimSpace(input.ClubID)
	input.ActorID = strings.TrimSpace(input.ActorID)
	if input.ClubID == "" {
		return entities.Club{}, domainerrors.ErrInvalidClubID
	}
	if input.Name == nil && input.Description == nil {
		return entities.Club{}, domainerrors.ErrInvalidInput
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return entities.Club{}, domainerrors.ErrInvalidInput
	}

	club, err := s.Repo.GetClub(ctx, input.ClubID)
	if err != nil {
		return entities.Club{}, err
	}
	if club.CreatedBy != input.ActorID && !input.ActorAdmin {
		return entities.Club{}, domainerrors.ErrForbidden
	}

	return s.Repo.UpdateClub(ctx, input.ClubID, ports.ClubUpdate{
		Name:        input.Name,
		Description: input.Description,
		UpdatedAt:   s.Clock.Now(),
	})
}

func (s Service) DeleteClub(ctx context.Context, clubID string, actorID string, actorAdmin bool) error {
	clubID = strings.TrimSpace(clubID)
	if clubID == "" {
		return domainerrors.ErrInvalidClubID
	}
	club, err := s.Repo.GetClub(ctx, clubID)
	if err != nil {
		return err
	}
	if club.CreatedBy != strings.TrimSpace(actorID) && !actorAdmin {
		return domainerrors.ErrForbidden
	}
	if err := s.Repo.DeleteClub(ctx, clubID); err != nil {
		return err
	}

	s.logger().Info("club deleted",
		"event", "club_deleted",
		"module", "campus-community/club-service",
		"layer", "application",
		"club_id", clubID,
		"actor_id", actorID,
	)
	return nil
}

func (s Service) JoinClub(ctx context.Context, clubID string, actorID string) (entities.Membership, error) {
	clubID = strings.TrimSpace(clubID)
	actorID = strings.TrimSpace(actorID)
	if clubID == "" {
		return entities.Membership{}, domainerrors.ErrInvalidClubID
	}
	if actorID == "" {
		return entities.Membership{}, domainerrors.ErrInvalidInput
	}
	if _, err := s.Repo.GetClub(ctx, clubID); err != nil {
		return entities.Membership{}, err
	}

	membership := entities.Membership{
		ClubID:   clubID,
		UserID:   actorID,
		Role:     entities.MemberRoleMember,
		JoinedAt: s.Clock.Now(),
	}
	if err := s.Repo.AddMember(ctx, membership); err != nil {
		return entities.Membership{}, err
	}

	s.logger().Info("club joined",
		"event", "club_member_joined",
		"module", "campus-community/club-service",
		"layer", "application",
		"club_id", clubID,
		"user_id", actorID,
	)
	return membership, nil
}

func (s Service) LeaveClub(ctx context.Context, clubID string, actorID string) error {
	clubID = strings.TrimSpace(clubID)
	actorID = strings.TrimSpace(actorID)
	if clubID == "" {
		return domainerrors.ErrInvalidClubID
	}
	club, err := s.Repo.GetClub(ctx, clubID)
	if err != nil {
		return err
	}
	if club.CreatedBy == actorID {
		return domainerrors.ErrCreatorCannotLeave
	}
	if err := s.Repo.RemoveMember(ctx, clubID, actorID); err != nil {
		return err
	}

	s.logger().Info("club left",
		"event", "club_member_left",
		"module", "campus-community/club-service",
		"layer", "application",
		"club_id", clubID,
		"user_id", actorID,
	)
	return nil
}

func (s Service) logger() *slog.Logger {
	return ResolveLogger(s.Logger)
}
