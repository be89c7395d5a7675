package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/domain/entities"
	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/domain/errors"
	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/ports"
)

// Store is an in-memory adapter implementing the directory ports.
// It is intended for tests and local development wiring.
type Store struct {
	mu    sync.RWMutex
	users map[string]entities.User

	// FailLookups forces every read to fail so tests can exercise the
	// fail-closed resolution branch.
	FailLookups bool
}

func NewStore() *Store {
	return &Store{users: make(map[string]entities.User)}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

// Seed inserts a record directly, bypassing provisioning rules.
func (s *Store) Seed(user entities.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.Role == "" {
		user.Role = entities.RoleUser
	}
	s.users[user.ID] = user
}

func (s *Store) GetUser(_ context.Context, id string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.FailLookups {
		return entities.User{}, errStoreUnavailable
	}
	user, ok := s.users[id]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) ProvisionUser(_ context.Context, input ports.ProvisionUserInput) (entities.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailLookups {
		return entities.User{}, false, errStoreUnavailable
	}
	if existing, ok := s.users[input.ID]; ok {
		return existing, false, nil
	}
	for _, user := range s.users {
		if input.Email != "" && strings.EqualFold(user.Email, input.Email) {
			return entities.User{}, false, domainerrors.ErrEmailTaken
		}
	}
	user := entities.User{
		ID:        input.ID,
		Email:     input.Email,
		Name:      input.Name,
		Role:      entities.RoleUser,
		CreatedAt: input.CreatedAt,
		UpdatedAt: input.CreatedAt,
	}
	s.users[input.ID] = user
	return user, true, nil
}

func (s *Store) ListUsers(_ context.Context) ([]entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.FailLookups {
		return nil, errStoreUnavailable
	}
	items := make([]entities.User, 0, len(s.users))
	for _, user := range s.users {
		items = append(items, user)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) UpdateUser(_ context.Context, id string, update ports.UserUpdate) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailLookups {
		return entities.User{}, errStoreUnavailable
	}
	user, ok := s.users[id]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	if update.Name != nil {
		user.Name = strings.TrimSpace(*update.Name)
	}
	if update.Avatar != nil {
		user.Avatar = strings.TrimSpace(*update.Avatar)
	}
	if update.Role != nil {
		user.Role = *update.Role
	}
	user.UpdatedAt = update.UpdatedAt
	s.users[id] = user
	return user, nil
}
