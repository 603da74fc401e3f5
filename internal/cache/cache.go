package cache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	// DefaultTTL applies to generic entries.
	DefaultTTL = 5 * time.Minute
	// PredicateTTL applies to derived values that are expensive to recompute.
	PredicateTTL = 10 * time.Minute
)

type entry struct {
	value     any
	createdAt time.Time
	expiresAt time.Time
}

// Stats summarizes the entries currently held, fresh or not.
type Stats struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Expired int `json:"expired"`
}

// Cache is an in-memory TTL store keyed by opaque strings. It is safe for
// concurrent use.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]entry
	defaultTTL time.Duration
	now        func() time.Time
	group      singleflight.Group
}

type Option func(*Cache)

func WithDefaultTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.defaultTTL = ttl
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

func New(opts ...Option) *Cache {
	c := &Cache{
		entries:    make(map[string]entry),
		defaultTTL: DefaultTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Set stores value under key, replacing any previous entry. A ttl <= 0 uses
// the cache default.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.entries[key] = entry{
		value:     value,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}
}

// Get returns the value for key if it has not expired. Expired entries are
// evicted on the way out.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lookupLocked(key)
}

func (c *Cache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.lookupLocked(key)
	return ok
}

func (c *Cache) lookupLocked(key string) (any, bool) {
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
}

// Cleanup evicts every expired entry and reports how many were dropped.
func (c *Cache) Cleanup() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	stats := Stats{Total: len(c.entries)}
	for _, e := range c.entries {
		if now.After(e.expiresAt) {
			stats.Expired++
		} else {
			stats.Valid++
		}
	}
	return stats
}

// Remember returns the cached value for key, or calls load and caches its
// result for ttl. Concurrent callers for the same key share a single load.
// Failed loads are not cached.
func (c *Cache) Remember(key string, ttl time.Duration, load func() (any, error)) (any, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		v, err := load()
		if err != nil {
			return nil, err
		}
		c.Set(key, v, ttl)
		return v, nil
	})
	return v, err
}

// Lookup is a typed Get. A value stored with a different type reads as a miss.
func Lookup[T any](c *Cache, key string) (T, bool) {
	var zero T
	v, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}
