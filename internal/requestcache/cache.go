package requestcache

import (
	"sync"
	"time"
)

// Defaults match the behaviour the mobile client shipped with.
const (
	DefaultTTL              = 10 * time.Minute
	DefaultThrottleInterval = time.Second
)

// Cache is an in-memory response cache with TTL expiry plus an advisory
// throttle over outgoing requests. Expired entries are only removed when
// looked up; the key space is small (a handful of categories and recent
// searches), so there is no background eviction.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]entry
	ttl      time.Duration
	interval time.Duration
	lastCall time.Time
	now      func() time.Time
}

type entry struct {
	value    any
	storedAt time.Time
}

func New(ttl, throttleInterval time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if throttleInterval <= 0 {
		throttleInterval = DefaultThrottleInterval
	}
	return &Cache{
		entries:  make(map[string]entry),
		ttl:      ttl,
		interval: throttleInterval,
		now:      time.Now,
	}
}

// Get returns the cached value for key if it is still fresh.
// An expired entry is purged and treated as a miss.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key, replacing any previous entry.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, storedAt: c.now()}
}

// Allow reports whether an outgoing request may be made now. When it
// returns true the call time is recorded, so back-to-back callers within
// the throttle interval are denied. The decision is advisory: denied
// callers fall back to cached or bundled data instead of queueing.
func (c *Cache) Allow() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if now.Sub(c.lastCall) < c.interval {
		return false
	}
	c.lastCall = now
	return true
}

// Clear drops all cached entries. Throttle state is preserved.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Len returns the number of stored entries, counting expired entries that
// have not been purged yet.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
