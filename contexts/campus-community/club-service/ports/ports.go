package ports

import (
	"context"
	"time"

	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// ClubUpdate carries partial changes; nil fields are left untouched.
type ClubUpdate struct {
	Name        *string
	Description *string
	UpdatedAt   time.Time
}

// Repository persists clubs and their membership edges.
//
// CreateClub stores the club and the creator's membership atomically.
// AddMember reports ErrAlreadyMember on a duplicate edge; RemoveMember
// reports ErrNotMember when no edge exists. DeleteClub cascades edges.
type Repository interface {
	CreateClub(ctx context.Context, club entities.Club, creator entities.Membership) error
	GetClub(ctx context.Context, clubID string) (entities.Club, error)
	ListClubs(ctx context.Context) ([]entities.Club, error)
	UpdateClub(ctx context.Context, clubID string, update ClubUpdate) (entities.Club, error)
	DeleteClub(ctx context.Context, clubID string) error
	AddMember(ctx context.Context, membership entities.Membership) error
	RemoveMember(ctx context.Context, clubID string, userID string) error
	ListMembers(ctx context.Context, clubID string) ([]entities.Membership, error)
}
