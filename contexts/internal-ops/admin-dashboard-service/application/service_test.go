package application

import (
	"context"
	"testing"
	"time"

	"github.com/chetanck03/Terminal-Tribe/contexts/internal-ops/admin-dashboard-service/adapters/memory"
	"github.com/chetanck03/Terminal-Tribe/contexts/internal-ops/admin-dashboard-service/ports"
)

func seededStore(now time.Time) *memory.Store {
	store := memory.NewStore()
	store.SetNow(now)
	store.SeedCounts(3, 7)
	store.SeedUser(ports.RecentUser{ID: "u-1", Name: "One", Email: "one@campus.edu", Role: "USER", CreatedAt: now.Add(-2 * time.Hour)})
	store.SeedUser(ports.RecentUser{ID: "u-2", Name: "Two", Email: "two@campus.edu", Role: "ADMIN", CreatedAt: now.Add(-time.Hour)})
	store.SeedEvent(ports.RecentEvent{ID: "e-1", Title: "Open Mic", Status: "APPROVED", CreatedAt: now.Add(-time.Hour)})
	store.SeedEvent(ports.RecentEvent{ID: "e-2", Title: "Hack Night", Status: "PENDING", CreatedAt: now.Add(-30 * time.Minute)})
	return store
}

func TestSnapshotAggregates(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := seededStore(now)
	service := Service{Repo: store, Cache: memory.NewSnapshotCache(), Clock: store, CacheTTL: 30 * time.Second}

	snapshot, err := service.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if snapshot.TotalUsers != 2 || snapshot.TotalEvents != 2 || snapshot.TotalClubs != 3 || snapshot.TotalPosts != 7 {
		t.Fatalf("unexpected totals %+v", snapshot)
	}
	if snapshot.EventsByStatus["APPROVED"] != 1 || snapshot.EventsByStatus["PENDING"] != 1 {
		t.Fatalf("unexpected status breakdown %+v", snapshot.EventsByStatus)
	}
	if len(snapshot.RecentUsers) != 2 || snapshot.RecentUsers[0].ID != "u-2" {
		t.Fatalf("recent users must be newest first, got %+v", snapshot.RecentUsers)
	}
	if len(snapshot.RecentEvents) != 2 || snapshot.RecentEvents[0].ID != "e-2" {
		t.Fatalf("recent events must be newest first, got %+v", snapshot.RecentEvents)
	}
	if !snapshot.GeneratedAt.Equal(now) {
		t.Fatalf("expected GeneratedAt pinned to the clock, got %v", snapshot.GeneratedAt)
	}
}

func TestSnapshotServedFromCacheWithinTTL(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := seededStore(now)
	service := Service{Repo: store, Cache: memory.NewSnapshotCache(), Clock: store, CacheTTL: 30 * time.Second}

	if _, err := service.Snapshot(context.Background()); err != nil {
		t.Fatalf("first snapshot failed: %v", err)
	}
	queriesAfterFirst := store.QueryCount

	store.SetNow(now.Add(10 * time.Second))
	if _, err := service.Snapshot(context.Background()); err != nil {
		t.Fatalf("second snapshot failed: %v", err)
	}
	if store.QueryCount != queriesAfterFirst {
		t.Fatalf("snapshot inside the TTL must not hit the repository, queries went %d -> %d", queriesAfterFirst, store.QueryCount)
	}
}

func TestSnapshotRecomputedAfterExpiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := seededStore(now)
	service := Service{Repo: store, Cache: memory.NewSnapshotCache(), Clock: store, CacheTTL: 30 * time.Second}

	if _, err := service.Snapshot(context.Background()); err != nil {
		t.Fatalf("first snapshot failed: %v", err)
	}
	queriesAfterFirst := store.QueryCount

	store.SeedUser(ports.RecentUser{ID: "u-3", Name: "Three", Email: "three@campus.edu", Role: "USER", CreatedAt: now})
	store.SetNow(now.Add(31 * time.Second))

	snapshot, err := service.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("post-expiry snapshot failed: %v", err)
	}
	if store.QueryCount == queriesAfterFirst {
		t.Fatal("expired cache entry must trigger a recompute")
	}
	if snapshot.TotalUsers != 3 {
		t.Fatalf("recompute must observe new rows, got %d users", snapshot.TotalUsers)
	}
}

func TestSnapshotDefaultTTLApplied(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := seededStore(now)
	service := Service{Repo: store, Cache: memory.NewSnapshotCache(), Clock: store}

	if _, err := service.Snapshot(context.Background()); err != nil {
		t.Fatalf("first snapshot failed: %v", err)
	}
	queriesAfterFirst := store.QueryCount

	store.SetNow(now.Add(29 * time.Second))
	if _, err := service.Snapshot(context.Background()); err != nil {
		t.Fatalf("second snapshot failed: %v", err)
	}
	if store.QueryCount != queriesAfterFirst {
		t.Fatal("zero TTL must fall back to the 30s default")
	}
}
