package generics

import (
	"slices"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache is an unbounded map that remembers insertion order. Overwriting a
// key keeps its original position.
type Cache[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
	order []K
}

func NewCache[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{items: make(map[K]V)}
}

func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists {
		c.order = append(c.order, key)
	}
	c.items[key] = value
}

// Get never fails: a missing key reports false.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.items[key]
	return v, ok
}

func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists {
		return false
	}
	delete(c.items, key)
	c.order = slices.DeleteFunc(c.order, func(k K) bool { return k == key })
	return true
}

// Keys returns the keys in insertion order.
func (c *Cache[K, V]) Keys() []K {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.order)
}

func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// BoundedCache keeps at most size entries, evicting the least recently used.
// A positive ttl also expires entries by age.
type BoundedCache[K comparable, V any] struct {
	lru *expirable.LRU[K, V]
}

func NewBoundedCache[K comparable, V any](size int, ttl time.Duration, onEvict func(K, V)) *BoundedCache[K, V] {
	var cb expirable.EvictCallback[K, V]
	if onEvict != nil {
		cb = func(key K, value V) { onEvict(key, value) }
	}
	return &BoundedCache[K, V]{lru: expirable.NewLRU[K, V](size, cb, ttl)}
}

// Put reports whether an entry was evicted to make room.
func (c *BoundedCache[K, V]) Put(key K, value V) bool { return c.lru.Add(key, value) }

// Get marks the entry as recently used.
func (c *BoundedCache[K, V]) Get(key K) (V, bool) { return c.lru.Get(key) }

// Peek reads without touching recency.
func (c *BoundedCache[K, V]) Peek(key K) (V, bool) { return c.lru.Peek(key) }

// Keys returns the keys from least to most recently used.
func (c *BoundedCache[K, V]) Keys() []K { return c.lru.Keys() }

func (c *BoundedCache[K, V]) Len() int { return c.lru.Len() }
