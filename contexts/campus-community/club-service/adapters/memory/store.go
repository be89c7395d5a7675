package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service/domain/errors"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service/domain/entities"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service/ports"
)

type memberKey struct {
	clubID string
	userID string
}

// Store is an in-memory Repository, Clock and IDGenerator for tests and
// local development.
type Store struct {
	mu      sync.RWMutex
	clubs   map[string]entities.Club
	members map[memberKey]entities.Membership
}

func NewStore() *Store {
	return &Store{
		clubs:   make(map[string]entities.Club),
		members: make(map[memberKey]entities.Membership),
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func (s *Store) CreateClub(_ context.Context, club entities.Club, creator entities.Membership) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clubs[club.ID] = club
	s.members[memberKey{clubID: creator.ClubID, userID: creator.UserID}] = creator
	return nil
}

func (s *Store) GetClub(_ context.Context, clubID string) (entities.Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	club, ok := s.clubs[clubID]
	if !ok {
		return entities.Club{}, domainerrors.ErrClubNotFound
	}
	return club, nil
}

func (s *Store) ListClubs(_ context.Context) ([]entities.Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clubs := make([]entities.Club, 0, len(s.clubs))
	for _, club := range s.clubs {
		clubs = append(clubs, club)
	}
	sort.Slice(clubs, func(i, j int) bool {
		if clubs[i].CreatedAt.Equal(clubs[j].CreatedAt) {
			return clubs[i].ID < clubs[j].ID
		}
		return clubs[i].CreatedAt.After(clubs[j].CreatedAt)
	})
	return clubs, nil
}

func (s *Store) UpdateClub(_ context.Context, clubID string, update ports.ClubUpdate) (entities.Club, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	club, ok := s.clubs[clubID]
	if !ok {
		return entities.Club{}, domainerrors.ErrClubNotFound
	}
	if update.Name != nil {
		club.Name = *update.Name
	}
	if update.Description != nil {
		club.Description = *update.Description
	}
	club.UpdatedAt = update.UpdatedAt
	s.clubs[clubID] = club
	return club, nil
}

func (s *Store) DeleteClub(_ context.Context, clubID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clubs[clubID]; !ok {
		return domainerrors.ErrClubNotFound
	}
	delete(s.clubs, clubID)
	for key := range s.members {
		if key.clubID == clubID {
			delete(s.members, key)
		}
	}
	return nil
}

func (s *Store) AddMember(_ context.Context, membership entities.Membership) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := memberKey{clubID: membership.ClubID, userID: membership.UserID}
	if _, ok := s.members[key]; ok {
		return domainerrors.ErrAlreadyMember
	}
	s.members[key] = membership
	return nil
}

func (s *Store) RemoveMember(_ context.Context, clubID string, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := memberKey{clubID: clubID, userID: userID}
	if _, ok := s.members[key]; !ok {
		return domainerrors.ErrNotMember
	}
	delete(s.members, key)
	return nil
}

func (s *Store) ListMembers(_ context.Context, clubID string) ([]entities.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	members := make([]entities.Membership, 0)
	for key, membership := range s.members {
		if key.clubID == clubID {
			members = append(members, membership)
		}
	}
	sort.Slice(members, func(i, j int) bool {
		if members[i].JoinedAt.Equal(members[j].JoinedAt) {
			return members[i].UserID < members[j].UserID
		}
		return members[i].JoinedAt.Before(members[j].JoinedAt)
	})
	return members, nil
}
