package cache

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	gocache "github.com/patrickmn/go-cache"
)

// CleanupInterval is how often the janitor removes expired entries.
const CleanupInterval = 30 * time.Second

// Class selects one of the configured TTLs.
type Class int

const (
	// ClassShort is for per-request aggregate queries (minutes).
	ClassShort Class = iota
	// ClassStatic is for institution-level binary resources (hours).
	ClassStatic
)

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// Cache is the process-wide TTL store shared by all in-flight requests.
// Expiry is judged against the injected clock; the go-cache janitor only
// reclaims memory.
type Cache struct {
	store     *gocache.Cache
	clock     clock.Clock
	mu        sync.Mutex
	ttl       time.Duration
	staticTTL time.Duration
}

// Option -.
type Option func(*Cache)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(clk clock.Clock) Option {
	return func(c *Cache) {
		c.clock = clk
	}
}

// New creates a cache with the short and static TTL classes.
// A zero TTL disables caching for that class.
func New(ttl, staticTTL time.Duration, opts ...Option) *Cache {
	c := &Cache{
		store:     gocache.New(gocache.NoExpiration, CleanupInterval),
		clock:     clock.New(),
		ttl:       ttl,
		staticTTL: staticTTL,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Set stores value until now+ttl. A non-positive ttl skips caching.
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Set(key, &entry{value: value, expiresAt: c.clock.Now().Add(ttl)}, ttl)
}

// Get returns the value if it has not expired. A stale entry is dropped.
func (c *Cache) Get(key string) (interface{}, bool) {
	raw, found := c.store.Get(key)
	if !found {
		recordLookup(key, false)

		return nil, false
	}

	e, ok := raw.(*entry)
	if !ok {
		c.store.Delete(key)
		recordLookup(key, false)

		return nil, false
	}

	if c.clock.Now().Before(e.expiresAt) {
		recordLookup(key, true)

		return e.value, true
	}

	c.dropStale(key, e)
	recordLookup(key, false)

	return nil, false
}

// dropStale deletes key only if it still holds the stale entry, so a
// concurrent Set of a fresh value survives.
func (c *Cache) dropStale(key string, stale *entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if current, found := c.store.Get(key); found && current == interface{}(stale) {
		c.store.Delete(key)
	}
}

// TTLFor returns the configured duration for class.
func (c *Cache) TTLFor(class Class) time.Duration {
	switch class {
	case ClassStatic:
		return c.staticTTL
	case ClassShort:
		return c.ttl
	default:
		return 0
	}
}

// IsEnabled returns whether any class caches.
func (c *Cache) IsEnabled() bool {
	return c.ttl > 0 || c.staticTTL > 0
}

// GetTTL returns the short TTL.
func (c *Cache) GetTTL() time.Duration {
	return c.ttl
}

// GetStaticTTL -.
func (c *Cache) GetStaticTTL() time.Duration {
	return c.staticTTL
}

// Delete removes a value from the cache.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Delete(key)
}

// Len counts stored entries, including stale ones not yet swept.
func (c *Cache) Len() int {
	return c.store.ItemCount()
}

// Clear removes all items from the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Flush()
}
