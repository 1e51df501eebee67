package searcher

import (
	"fmt"
	"sync"

	"tictactoe/game"

	"golang.org/x/exp/maps"
	"golang.org/x/sync/singleflight"
)

// Key identifies one memoized evaluation: the position and the role it was
// evaluated for. The same position carries generally different values for
// the two roles, so both fields discriminate. The tree is deliberately not
// part of the key; a Cache belongs to exactly one tree and must never be
// consulted for another.
type Key struct {
	ID   game.Position
	Role Role
}

func (k Key) flightKey() string {
	return fmt.Sprintf("%s/%d", k.ID, k.Role)
}

// Entry is one stored evaluation, exported for snapshots.
type Entry struct {
	ID    game.Position
	Role  Role
	Score int
}

// Cache memoizes evaluations. Entries are written at most once per key and
// never evicted; the key space is bounded by the legal position/role pairs
// of a finite game. Safe for concurrent use: racing first accesses of the
// same key compute once.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]int
	group   singleflight.Group
}

func NewCache() *Cache {
	return &Cache{entries: make(map[Key]int)}
}

// Get returns the stored score for the key, if any.
func (c *Cache) Get(key Key) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	score, ok := c.entries[key]
	return score, ok
}

// GetOrCompute returns the stored score for the key, or invokes compute
// exactly once, stores its result, and returns it. A compute error is
// returned and nothing is stored, so a later call retries.
func (c *Cache) GetOrCompute(key Key, compute func() (int, error)) (int, error) {
	if score, ok := c.Get(key); ok {
		return score, nil
	}

	score, err, _ := c.group.Do(key.flightKey(), func() (any, error) {
		if score, ok := c.Get(key); ok {
			return score, nil
		}
		score, err := compute()
		if err != nil {
			return 0, err
		}
		c.mu.Lock()
		c.entries[key] = score
		c.mu.Unlock()
		return score, nil
	})
	if err != nil {
		return 0, err
	}
	return score.(int), nil
}

// Len returns the number of stored entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Keys returns every stored key, in no particular order.
func (c *Cache) Keys() []Key {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return maps.Keys(c.entries)
}

// Snapshot returns a copy of every stored entry.
func (c *Cache) Snapshot() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entries := make([]Entry, 0, len(c.entries))
	for key, score := range c.entries {
		entries = append(entries, Entry{ID: key.ID, Role: key.Role, Score: score})
	}
	return entries
}

// Restore inserts entries that are not already present. Existing entries
// are kept as-is, preserving write-once semantics.
func (c *Cache) Restore(entries []Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range entries {
		key := Key{ID: e.ID, Role: e.Role}
		if _, ok := c.entries[key]; !ok {
			c.entries[key] = e.Score
		}
	}
}
