// Package cache provides the bounded LRU map that memoizes text
// measurements.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	v, ok := c.Get("key")
//
// Cache is safe for concurrent use.
package cache
