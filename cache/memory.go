package cache

import (
	"container/list"
	"sync"
	"time"
)

// lruEntry holds a cached value with its insertion timestamp.
type lruEntry struct {
	key      string
	value    string
	storedAt time.Time
}

// LRUCache is a thread-safe in-memory cache bounded by entry count, with
// recency-based eviction and lazy TTL expiry. Reads promote entries to
// most-recently-used, so frequently re-requested text stays resident under
// capacity pressure. Expiry is checked only on access; there is no background
// sweep goroutine.
type LRUCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	order    *list.List // front = most recently used
	items    map[string]*list.Element
	now      func() time.Time // injectable for tests
}

// NewLRUCache creates a cache holding at most capacity entries, each living
// at most ttlSeconds. A non-positive capacity falls back to 2000 entries; a
// non-positive TTL disables expiry.
func NewLRUCache(capacity, ttlSeconds int) *LRUCache {
	if capacity <= 0 {
		capacity = 2000
	}
	ttl := time.Duration(ttlSeconds) * time.Second
	if ttlSeconds <= 0 {
		ttl = 0
	}
	return &LRUCache{
		capacity: capacity,
		ttl:      ttl,
		order:    list.New(),
		items:    make(map[string]*list.Element),
		now:      time.Now,
	}
}

// Get retrieves a value. An entry older than the TTL is removed and treated
// as absent; a live entry is promoted to most-recently-used.
func (c *LRUCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return "", false
	}

	entry := el.Value.(*lruEntry)
	if c.ttl > 0 && c.now().Sub(entry.storedAt) > c.ttl {
		c.removeElement(el)
		return "", false
	}

	c.order.MoveToFront(el)
	return entry.value, true
}

// Set inserts or overwrites a value, resets its timestamp and promotes it to
// most-recently-used, then evicts least-recently-used entries until the cache
// fits its capacity again. It never fails.
func (c *LRUCache) Set(key string, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		entry := el.Value.(*lruEntry)
		entry.value = value
		entry.storedAt = c.now()
		c.order.MoveToFront(el)
		return nil
	}

	el := c.order.PushFront(&lruEntry{key: key, value: value, storedAt: c.now()})
	c.items[key] = el

	for len(c.items) > c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}
	return nil
}

// Len returns the number of resident entries, including any whose TTL has
// elapsed but which no read has evicted yet.
func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear removes all entries.
func (c *LRUCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.items = make(map[string]*list.Element)
}

// removeElement drops one entry (must be called with the lock held).
func (c *LRUCache) removeElement(el *list.Element) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*lruEntry).key)
}

// Verify LRUCache implements TranslationCache
var _ TranslationCache = (*LRUCache)(nil)
