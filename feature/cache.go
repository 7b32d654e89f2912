// Package feature: per-graph memoization cache.
package feature

// Cache memoizes expensive derived structures (spectral decompositions,
// all-pairs distances...) within a single graph's pass, so several
// features of one class, or related classes on the same graph, share one
// computation.
//
// Keys are explicit string constants owned by the producing package
// (e.g. "spectrum/adjacency"), replacing memoization-by-function-identity
// with something auditable.
//
// A Cache belongs to exactly one graph pass on one worker: unbounded while
// it lives, discarded when the pass ends, never locked because it is never
// shared.
type Cache struct {
	entries map[string]any
}

// NewCache returns an empty Cache for one graph pass.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]any)}
}

// Len returns the number of memoized entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Memo returns the cached value under key, producing and storing it on
// first use. A produce error is returned as-is and nothing is stored, so
// the next caller retries.
func Memo[T any](c *Cache, key string, produce func() (T, error)) (T, error) {
	if v, ok := c.entries[key]; ok {
		return v.(T), nil
	}

	v, err := produce()
	if err != nil {
		var zero T

		return zero, err
	}
	c.entries[key] = v

	return v, nil
}
