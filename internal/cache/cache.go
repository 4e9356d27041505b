// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache memoizes extraction results per operation and content.
// Extractors receive a Cache as a dependency so tests can substitute an
// isolated or no-op instance.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache stores derived results keyed by Key. Implementations must be safe
// for concurrent use. Set on an existing key replaces the value.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// Key builds a cache key from an operation tag and its inputs. Each input
// is hashed in full with SHA-256, so two contents sharing a long prefix
// never share a key. Parts are length-prefixed before hashing so
// ("ab","c") and ("a","bc") differ.
func Key(op string, parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		fmt.Fprintf(h, "%d:", len(p))
		h.Write([]byte(p))
	}
	return op + ":" + hex.EncodeToString(h.Sum(nil))
}

// Stats holds lookup counters for an LRU.
type Stats struct {
	Hits   uint64
	Misses uint64
	Len    int
}

// LRU is a bounded Cache that evicts the least recently used entry once
// capacity is reached.
type LRU struct {
	entries *lru.Cache[string, any]
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// NewLRU returns an LRU holding at most capacity entries.
func NewLRU(capacity int) (*LRU, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("cache capacity %d: must be positive", capacity)
	}
	entries, err := lru.New[string, any](capacity)
	if err != nil {
		return nil, fmt.Errorf("creating LRU: %w", err)
	}
	return &LRU{entries: entries}, nil
}

// Get returns the cached value for key and marks it recently used.
func (c *LRU) Get(key string) (any, bool) {
	v, ok := c.entries.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// Set stores value under key.
func (c *LRU) Set(key string, value any) {
	c.entries.Add(key, value)
}

// Purge drops every entry. Counters are kept.
func (c *LRU) Purge() {
	c.entries.Purge()
}

// Stats returns a snapshot of the lookup counters.
func (c *LRU) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Len:    c.entries.Len(),
	}
}

// Nop never stores anything. Every Get misses.
type Nop struct{}

// Get always misses.
func (Nop) Get(string) (any, bool) { return nil, false }

// Set discards the value.
func (Nop) Set(string, any) {}
