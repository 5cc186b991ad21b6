package content

import (
	"sync"
	"time"
)

// DefaultTTL is how long a fetched content update stays fresh.
const DefaultTTL = 5 * time.Minute

// Cache is a single-value TTL cache for content updates. Expired entries
// are kept around so the service can fall back to stale content when a
// fresh fetch fails.
type Cache struct {
	mu       sync.Mutex
	value    ContentUpdate
	storedAt time.Time
	hasValue bool
	ttl      time.Duration

	now func() time.Time
}

// NewCache creates a Cache with the given TTL. A zero ttl uses DefaultTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{ttl: ttl, now: time.Now}
}

// Get returns the cached value if it is still fresh, along with its age.
func (c *Cache) Get() (ContentUpdate, time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hasValue {
		return ContentUpdate{}, 0, false
	}
	age := c.now().Sub(c.storedAt)
	if age >= c.ttl {
		return ContentUpdate{}, 0, false
	}
	return c.value, age, true
}

// Stale returns the cached value regardless of freshness.
func (c *Cache) Stale() (ContentUpdate, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.hasValue
}

// Put stores a new value and resets its age.
func (c *Cache) Put(v ContentUpdate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
	c.storedAt = c.now()
	c.hasValue = true
}

// Invalidate drops the cached value entirely.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hasValue = false
	c.value = ContentUpdate{}
}
