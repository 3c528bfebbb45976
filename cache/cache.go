package cache

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ResultCache maps a normalized key to a previously produced value.
// Capacity 0 means unbounded and ttl 0 means entries never expire, which is
// the process-lifetime policy the service runs with by default.
// Safe for concurrent use.
type ResultCache[V any] struct {
	lru    *expirable.LRU[string, V]
	hits   atomic.Int64
	misses atomic.Int64
}

func New[V any](capacity int, ttl time.Duration) *ResultCache[V] {
	return &ResultCache[V]{
		lru: expirable.NewLRU[string, V](capacity, nil, ttl),
	}
}

// Get returns the value stored under key, if any.
func (c *ResultCache[V]) Get(key string) (V, bool) {
	v, ok := c.lru.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// Put stores value under key, overwriting any previous entry.
func (c *ResultCache[V]) Put(key string, value V) {
	c.lru.Add(key, value)
}

func (c *ResultCache[V]) Len() int {
	return c.lru.Len()
}

// Stats returns hit/miss counters since creation.
func (c *ResultCache[V]) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Key builds a namespaced key from parts. Long parts are hashed so that keys
// derived from request bodies stay short.
func Key(namespace string, parts ...string) string {
	joined := strings.Join(parts, "|")
	if len(joined) <= 64 {
		return namespace + ":" + joined
	}
	hash := sha256.Sum256([]byte(joined))
	return fmt.Sprintf("%s:%x", namespace, hash[:12])
}
