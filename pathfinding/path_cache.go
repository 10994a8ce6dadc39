package pathfinding

import (
	"fmt"
	"sync"
	"time"

	"navgrid/core"
)

// cacheKey identifies a request by the grid cells its endpoints round to,
// so requests landing in the same pair of cells share one entry.
type cacheKey struct {
	FromGX, FromGY int
	ToGX, ToGY     int
}

type cacheEntry struct {
	waypoints []core.Waypoint
	createdAt time.Time
}

// PathCache memoizes recent results for a fixed time-to-live and keeps a
// registry of active (in-use) paths that outlive the TTL but are
// re-validated against the changing world. Both maps are mutex-guarded:
// periodic revalidation and request-time inserts touch them from different
// places.
type PathCache struct {
	mu     sync.RWMutex
	ttl    time.Duration
	cache  map[cacheKey]cacheEntry
	active map[cacheKey][]core.Waypoint

	hits, misses int64
}

// NewPathCache creates a cache whose entries expire after ttl.
func NewPathCache(ttl time.Duration) *PathCache {
	return &PathCache{
		ttl:    ttl,
		cache:  make(map[cacheKey]cacheEntry),
		active: make(map[cacheKey][]core.Waypoint),
	}
}

func keyFor(from, to core.GridPoint) cacheKey {
	return cacheKey{FromGX: from.GX, FromGY: from.GY, ToGX: to.GX, ToGY: to.GY}
}

// Get returns the cached waypoints for the endpoint pair if a live entry
// exists. Expired entries are evicted silently.
func (c *PathCache) Get(from, to core.GridPoint, now time.Time) ([]core.Waypoint, bool) {
	key := keyFor(from, to)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, found := c.cache[key]
	if found && now.Sub(entry.createdAt) > c.ttl {
		delete(c.cache, key)
		found = false
	}
	if !found {
		c.misses++
		return nil, false
	}
	c.hits++
	return entry.waypoints, true
}

// Put stores a result and registers it as an active path.
func (c *PathCache) Put(from, to core.GridPoint, waypoints []core.Waypoint, now time.Time) {
	key := keyFor(from, to)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache[key] = cacheEntry{waypoints: waypoints, createdAt: now}
	c.active[key] = waypoints
}

// Release drops the active registration for an endpoint pair, e.g. when the
// agent following the path has arrived.
func (c *PathCache) Release(from, to core.GridPoint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.active, keyFor(from, to))
}

// ActiveCount returns the number of registered active paths.
func (c *PathCache) ActiveCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.active)
}

// Revalidate checks every active path with valid and, for the ones that
// fail, recomputes via recompute. A failed recompute drops the path; a
// successful one replaces both the active registration and the TTL entry.
func (c *PathCache) Revalidate(
	valid func(waypoints []core.Waypoint) bool,
	recompute func(key cacheKey) []core.Waypoint,
	now time.Time,
) {
	c.mu.Lock()
	stale := make([]cacheKey, 0)
	for key, waypoints := range c.active {
		if !valid(waypoints) {
			stale = append(stale, key)
		}
	}
	c.mu.Unlock()

	for _, key := range stale {
		replacement := recompute(key)

		c.mu.Lock()
		if len(replacement) == 0 {
			delete(c.active, key)
			delete(c.cache, key)
		} else {
			c.active[key] = replacement
			c.cache[key] = cacheEntry{waypoints: replacement, createdAt: now}
		}
		c.mu.Unlock()
	}
}

// Clear removes all cached and active entries.
func (c *PathCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[cacheKey]cacheEntry)
	c.active = make(map[cacheKey][]core.Waypoint)
	c.hits = 0
	c.misses = 0
}

// String returns a string representation of cache statistics.
func (c *PathCache) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := c.hits + c.misses
	rate := 0.0
	if total > 0 {
		rate = float64(c.hits) / float64(total) * 100
	}
	return fmt.Sprintf("PathCache[size=%d, active=%d, hits=%d, misses=%d, hitRate=%.1f%%]",
		len(c.cache), len(c.active), c.hits, c.misses, rate)
}
