package genealogy

import "sync"

// Cache holds the most recently loaded person list for repeated queries.
//
// The lifecycle is explicit: Store replaces the contents, Clear empties them,
// and nothing is invalidated automatically. Callers clear or re-store when the
// underlying source changes. A Cache is safe for concurrent use.
type Cache struct {
	opts []Option

	mu    sync.RWMutex
	graph *Graph
	stats Statistics
}

// NewCache returns an empty cache. The options configure every Graph built
// by Store.
func NewCache(opts ...Option) *Cache {
	c := &Cache{opts: opts}
	c.graph = NewGraph(nil, opts...)
	return c
}

// Store replaces the cached people and their statistics.
func (c *Cache) Store(people []Person, stats Statistics) {
	g := NewGraph(people, c.opts...)
	c.mu.Lock()
	c.graph = g
	c.stats = stats
	c.mu.Unlock()
}

// Graph returns the graph over the cached people. It is never nil; an empty
// cache yields an empty graph. The returned Graph stays valid after a later
// Store or Clear.
func (c *Cache) Graph() *Graph {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.graph
}

// People returns the cached people in source order.
func (c *Cache) People() []Person {
	return c.Graph().People()
}

// Loaded reports whether the cache holds at least one person.
func (c *Cache) Loaded() bool {
	return c.Graph().Len() > 0
}

// Statistics returns the statistics stored with the people.
func (c *Cache) Statistics() Statistics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// Clear empties the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.graph = NewGraph(nil, c.opts...)
	c.stats = Statistics{}
	c.mu.Unlock()
}
