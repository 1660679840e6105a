package cache

import (
	"sync"
	"time"
)

// Catalog is a TTL-bound in-memory read-through cache for catalog reads.
// Correctness never depends on it: any course mutation flushes it wholesale
// and the store remains the source of truth.
type Catalog struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	hits    uint64
	misses  uint64
}

type entry struct {
	value     any
	expiresAt time.Time
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Entries int    `json:"entries"`
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
}

// New creates a catalog cache. A zero ttl means entries never expire on
// their own and only mutations evict them.
func New(ttl time.Duration) *Catalog {
	return &Catalog{
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

func (c *Catalog) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		c.misses++
		return nil, false
	}
	c.hits++
	return e.value, true
}

func (c *Catalog) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := entry{value: value}
	if c.ttl > 0 {
		e.expiresAt = time.Now().Add(c.ttl)
	}
	c.entries[key] = e
}

// Flush drops every entry. Called on any catalog mutation.
func (c *Catalog) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

func (c *Catalog) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{
		Entries: len(c.entries),
		Hits:    c.hits,
		Misses:  c.misses,
	}
}
