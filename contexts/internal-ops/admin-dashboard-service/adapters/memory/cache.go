package memory

import (
	"sync"
	"time"

	"github.com/chetanck03/Terminal-Tribe/contexts/internal-ops/admin-dashboard-service/ports"
)

// SnapshotCache holds at most one snapshot with an expiry instant.
type SnapshotCache struct {
	mu        sync.RWMutex
	value     ports.Snapshot
	expiresAt time.Time
	populated bool
}

func NewSnapshotCache() *SnapshotCache {
	return &SnapshotCache{}
}

func (c *SnapshotCache) Get(now time.Time) (ports.Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.populated || !now.Before(c.expiresAt) {
		return ports.Snapshot{}, false
	}
	return c.value, true
}

func (c *SnapshotCache) Set(snapshot ports.Snapshot, expiresAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = snapshot
	c.expiresAt = expiresAt
	c.populated = true
}
