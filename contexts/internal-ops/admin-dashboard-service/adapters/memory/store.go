package memory

import (
	"context"
	"sync"
	"time"

	"github.com/chetanck03/Terminal-Tribe/contexts/internal-ops/admin-dashboard-service/ports"
)

// Store is a seedable in-memory Repository and Clock for tests. QueryCount
// increments on every repository read so cache behavior is observable.
type Store struct {
	mu           sync.Mutex
	users        []ports.RecentUser
	events       []ports.RecentEvent
	clubCount    int
	postCount    int
	statusCounts map[string]int
	now          time.Time

	QueryCount int
}

func NewStore() *Store {
	return &Store{
		statusCounts: make(map[string]int),
		now:          time.Now().UTC(),
	}
}

// SeedUser appends a user; newest last.
func (s *Store) SeedUser(user ports.RecentUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
}

func (s *Store) SeedEvent(event ports.RecentEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	s.statusCounts[event.Status]++
}

func (s *Store) SeedCounts(clubs int, posts int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clubCount = clubs
	s.postCount = posts
}

// SetNow pins the clock for TTL tests.
func (s *Store) SetNow(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *Store) CountUsers(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.QueryCount++
	return len(s.users), nil
}

func (s *Store) CountEvents(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.QueryCount++
	return len(s.events), nil
}

func (s *Store) CountClubs(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.QueryCount++
	return s.clubCount, nil
}

func (s *Store) CountPosts(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.QueryCount++
	return s.postCount, nil
}

func (s *Store) CountEventsByStatus(_ context.Context) (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.QueryCount++
	counts := make(map[string]int, len(s.statusCounts))
	for status, count := range s.statusCounts {
		counts[status] = count
	}
	return counts, nil
}

func (s *Store) ListRecentUsers(_ context.Context, limit int) ([]ports.RecentUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.QueryCount++
	if limit <= 0 || len(s.users) == 0 {
		return nil, nil
	}
	if limit > len(s.users) {
		limit = len(s.users)
	}
	out := make([]ports.RecentUser, 0, limit)
	for i := len(s.users) - 1; i >= len(s.users)-limit; i-- {
		out = append(out, s.users[i])
	}
	return out, nil
}

func (s *Store) ListRecentEvents(_ context.Context, limit int) ([]ports.RecentEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.QueryCount++
	if limit <= 0 || len(s.events) == 0 {
		return nil, nil
	}
	if limit > len(s.events) {
		limit = len(s.events)
	}
	out := make([]ports.RecentEvent, 0, limit)
	for i := len(s.events) - 1; i >= len(s.events)-limit; i-- {
		out = append(out, s.events[i])
	}
	return out, nil
}
