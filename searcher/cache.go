package searcher

import (
	"othello/game"
	"sync"
)

// Fingerprint identifies a cached leaf evaluation. Perspective keeps values
// computed for opposite colors apart when a cache is shared.
type Fingerprint struct {
	Board       game.Board
	Mover       game.Color
	Depth       int
	Perspective game.Color
}

func NewFingerprint(state game.GameState, depth int, perspective game.Color) Fingerprint {
	return Fingerprint{
		Board:       state.Board,
		Mover:       state.Mover,
		Depth:       depth,
		Perspective: perspective,
	}
}

// Cache maps fingerprints to static evaluations. It is safe for concurrent use.
type Cache struct {
	mu       sync.RWMutex
	entries  map[Fingerprint]int
	capacity int // 0 means unbounded
}

func NewCache() *Cache {
	return &Cache{entries: make(map[Fingerprint]int)}
}

// NewBoundedCache returns a cache that stops accepting entries once it holds capacity of them.
func NewBoundedCache(capacity int) *Cache {
	c := NewCache()
	if capacity > 0 {
		c.capacity = capacity
	}
	return c
}

func (c *Cache) Lookup(fp Fingerprint) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[fp]
	return v, ok
}

func (c *Cache) Store(fp Fingerprint, value int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[fp]; !ok && c.capacity > 0 && len(c.entries) >= c.capacity {
		return
	}
	c.entries[fp] = value
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
