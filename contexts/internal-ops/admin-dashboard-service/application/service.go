package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/chetanck03/Terminal-Tribe/contexts/internal-ops/admin-dashboard-service/ports"
)

const recentLimit = 5

// Service computes the admin dashboard snapshot behind a read-through
// single-entry TTL cache.
type Service struct {
	Repo     ports.Repository
	Cache    ports.SnapshotCache
	Clock    ports.Clock
	CacheTTL time.Duration
	Logger   *slog.Logger
}

func (s Service) Snapshot(ctx context.Context) (ports.Snapshot, error) {
	now := s.Clock.Now()
	if cached, ok := s.Cache.Get(now); ok {
		return cached, nil
	}

	snapshot, err := s.compute(ctx, now)
	if err != nil {
		return ports.Snapshot{}, err
	}

	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	s.Cache.Set(snapshot, now.Add(ttl))

	ResolveLogger(s.Logger).Info("dashboard snapshot recomputed",
		"event", "dashboard_snapshot_recomputed",
		"module", "internal-ops/admin-dashboard-service",
		"layer", "application",
		"total_users", snapshot.TotalUsers,
		"total_events", snapshot.TotalEvents,
		"cache_ttl", ttl.String(),
	)
	return snapshot, nil
}

func (s Service) compute(ctx context.Context, now time.Time) (ports.Snapshot, error) {
	users, err := s.Repo.CountUsers(ctx)
	if err != nil {
		return ports.Snapshot{}, err
	}
	eventsTotal, err := s.Repo.CountEvents(ctx)
	if err != nil {
		return ports.Snapshot{}, err
	}
	clubs, err := s.Repo.CountClubs(ctx)
	if err != nil {
		return ports.Snapshot{}, err
	}
	posts, err := s.Repo.CountPosts(ctx)
	if err != nil {
		return ports.Snapshot{}, err
	}
	byStatus, err := s.Repo.CountEventsByStatus(ctx)
	if err != nil {
		return ports.Snapshot{}, err
	}
	recentUsers, err := s.Repo.ListRecentUsers(ctx, recentLimit)
	if err != nil {
		return ports.Snapshot{}, err
	}
	recentEvents, err := s.Repo.ListRecentEvents(ctx, recentLimit)
	if err != nil {
		return ports.Snapshot{}, err
	}

	return ports.Snapshot{
		TotalUsers:     users,
		TotalEvents:    eventsTotal,
		TotalClubs:     clubs,
		TotalPosts:     posts,
		EventsByStatus: byStatus,
		RecentUsers:    recentUsers,
		RecentEvents:   recentEvents,
		GeneratedAt:    now,
	}, nil
}
