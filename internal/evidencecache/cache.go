// Package evidencecache memoizes evidence lookups within a single
// traversal. Composite behaviors (Disjunction, Conjunction, Negation)
// recompute evidence by recursively asking their operands, and a diamond-
// shaped graph can ask the same node for the same evidence kind more than
// once per top-level query. This cache only changes how many times a
// node's behavior is consulted, never what it answers.
package evidencecache

import (
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Key identifies one memoized lookup: a node and which evidence polarity
// was requested of it.
type Key struct {
	NodeID   uuid.UUID
	Polarity bool // true = "elements for true", false = "elements for false"
}

// Cache is a small bounded memo keyed by Key. A nil *Cache behaves as an
// always-miss cache, so EngineOptions.EvidenceCacheSize == 0 can simply
// produce a nil Cache and every call site works unchanged.
type Cache struct {
	inner *lru.Cache[Key, any]
}

// New returns a Cache bounded to size entries, or nil if size <= 0.
func New(size int) *Cache {
	if size <= 0 {
		return nil
	}
	inner, err := lru.New[Key, any](size)
	if err != nil {
		// Only returned by golang-lru for a non-positive size, which is
		// already excluded above.
		return nil
	}
	return &Cache{inner: inner}
}

// Get returns the memoized value for key, if present.
func (c *Cache) Get(key Key) (any, bool) {
	if c == nil {
		return nil, false
	}
	return c.inner.Get(key)
}

// Add memoizes value under key.
func (c *Cache) Add(key Key, value any) {
	if c == nil {
		return
	}
	c.inner.Add(key, value)
}
