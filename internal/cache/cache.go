package cache

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/exp/slices"
)

// ErrNotFound is returned when a coordinate doesn't exist in the cache.
var ErrNotFound = errors.New("cached data not found")

// Coordinate identifies one output partition of one shuffle operation.
// It is used both as the cache key and as the HTTP path suffix.
type Coordinate struct {
	ShuffleID uint64 // Which shuffle operation produced the block
	InputID   uint64 // Which map-side input produced it
	ReduceID  uint64 // Which reduce-side partition it belongs to
}

// String renders the coordinate in its path form, "shuffle/input/reduce".
func (c Coordinate) String() string {
	return fmt.Sprintf("%d/%d/%d", c.ShuffleID, c.InputID, c.ReduceID)
}

// Stats contains statistics about the cache contents.
type Stats struct {
	Blocks int // Number of cached blocks
	Bytes  int // Total size of all blocks in bytes
}

// Cache is a thread-safe mapping from shuffle coordinates to partition
// bytes. The zero value is not usable; use New.
type Cache struct {
	mu   sync.RWMutex
	data map[Coordinate][]byte
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		data: make(map[Coordinate][]byte),
	}
}

// Get retrieves the block for a coordinate.
// Returns a copy of the bytes so the caller's view is independent of later
// writes; returns ErrNotFound if the coordinate has no entry.
func (c *Cache) Get(coord Coordinate) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	block, exists := c.data[coord]
	if !exists {
		return nil, ErrNotFound
	}

	out := make([]byte, len(block))
	copy(out, block)
	return out, nil
}

// Put stores a block for a coordinate, overwriting any previous entry.
// The bytes are copied, so the caller may reuse its slice.
func (c *Cache) Put(coord Coordinate, block []byte) {
	stored := make([]byte, len(block))
	copy(stored, block)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[coord] = stored
}

// Delete removes a coordinate's entry. No error if it doesn't exist.
func (c *Cache) Delete(coord Coordinate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, coord)
}

// Coordinates returns all cached coordinates in a stable order, sorted by
// shuffle, then input, then reduce ID.
func (c *Cache) Coordinates() []Coordinate {
	c.mu.RLock()
	coords := make([]Coordinate, 0, len(c.data))
	for coord := range c.data {
		coords = append(coords, coord)
	}
	c.mu.RUnlock()

	slices.SortFunc(coords, func(a, b Coordinate) int {
		if a.ShuffleID != b.ShuffleID {
			return cmpUint64(a.ShuffleID, b.ShuffleID)
		}
		if a.InputID != b.InputID {
			return cmpUint64(a.InputID, b.InputID)
		}
		return cmpUint64(a.ReduceID, b.ReduceID)
	})
	return coords
}

func cmpUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Stats returns the current block and byte counts.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	totalBytes := 0
	for _, block := range c.data {
		totalBytes += len(block)
	}

	return Stats{
		Blocks: len(c.data),
		Bytes:  totalBytes,
	}
}
