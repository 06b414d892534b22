package cache

import (
	"container/list"
	"sync"
)

// Cache maps keys to values and forgets the least recently used entry once
// it holds more than its capacity.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int // 0 means unbounded
	items    map[K]*list.Element
	order    *list.List // front is most recent; elements hold *item[K, V]

	hits, misses uint64
}

type item[K comparable, V any] struct {
	key   K
	value V
}

// New returns an empty cache holding at most capacity entries.
// A capacity of 0 disables eviction.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	return &Cache[K, V]{
		capacity: max(capacity, 0),
		items:    make(map[K]*list.Element),
		order:    list.New(),
	}
}

// Get returns the value for key and marks it as recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookup(key)
}

// Set stores value under key.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store(key, value)
}

// GetOrCreate returns the value for key, calling create on a miss and
// remembering its result. create runs without the lock held; two callers
// missing the same key concurrently may both call it.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	if v, ok := c.lookup(key); ok {
		c.mu.Unlock()
		return v
	}
	c.mu.Unlock()

	v := create()

	c.mu.Lock()
	c.store(key, v)
	c.mu.Unlock()
	return v
}

// DeleteFunc removes the entries whose key satisfies del and returns how
// many were removed.
func (c *Cache[K, V]) DeleteFunc(del func(K) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for e := c.order.Front(); e != nil; {
		next := e.Next()
		if it := e.Value.(*item[K, V]); del(it.key) {
			c.order.Remove(e)
			delete(c.items, it.key)
			n++
		}
		e = next
	}
	return n
}

// Clear drops every entry. Hit and miss counters are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.items)
	c.order.Init()
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats is a snapshot of the cache counters.
type Stats struct {
	Len      int
	Capacity int
	Hits     uint64
	Misses   uint64
}

// HitRate returns Hits / (Hits + Misses), or 0 before the first lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Stats returns the current counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Len:      c.order.Len(),
		Capacity: c.capacity,
		Hits:     c.hits,
		Misses:   c.misses,
	}
}

// lookup and store require c.mu.

func (c *Cache[K, V]) lookup(key K) (V, bool) {
	e, ok := c.items[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.order.MoveToFront(e)
	return e.Value.(*item[K, V]).value, true
}

func (c *Cache[K, V]) store(key K, value V) {
	if e, ok := c.items[key]; ok {
		e.Value.(*item[K, V]).value = value
		c.order.MoveToFront(e)
		return
	}
	c.items[key] = c.order.PushFront(&item[K, V]{key: key, value: value})

	for c.capacity > 0 && c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*item[K, V]).key)
	}
}
