package ports

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

type RecentUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type RecentEvent struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Snapshot is the full dashboard payload computed in one pass.
type Snapshot struct {
	TotalUsers     int            `json:"total_users"`
	TotalEvents    int            `json:"total_events"`
	TotalClubs     int            `json:"total_clubs"`
	TotalPosts     int            `json:"total_posts"`
	EventsByStatus map[string]int `json:"events_by_status"`
	RecentUsers    []RecentUser   `json:"recent_users"`
	RecentEvents   []RecentEvent  `json:"recent_events"`
	GeneratedAt    time.Time      `json:"generated_at"`
}

// Repository reads aggregate state across the portal schema.
type Repository interface {
	CountUsers(ctx context.Context) (int, error)
	CountEvents(ctx context.Context) (int, error)
	CountClubs(ctx context.Context) (int, error)
	CountPosts(ctx context.Context) (int, error)
	CountEventsByStatus(ctx context.Context) (map[string]int, error)
	ListRecentUsers(ctx context.Context, limit int) ([]RecentUser, error)
	ListRecentEvents(ctx context.Context, limit int) ([]RecentEvent, error)
}

// SnapshotCache is a single-entry cache. Get returns ok=false when the entry
// is absent or expired relative to now. Snapshots may be stale up to the TTL;
// writes do not invalidate.
type SnapshotCache interface {
	Get(now time.Time) (Snapshot, bool)
	Set(snapshot Snapshot, expiresAt time.Time)
}
