package config

import (
	"sync"
	"time"
)

// BelowWorldPolicy selects the sentinel substituted under the lowest level
// of a column.
type BelowWorldPolicy string

const (
	// BelowWorldSky substitutes the full-sky empty chunk, same as above the
	// top level.
	BelowWorldSky BelowWorldPolicy = "sky"
	// BelowWorldDark substitutes an unlit empty chunk.
	BelowWorldDark BelowWorldPolicy = "dark"
)

// IndexSettings holds chunk index configuration
type IndexSettings struct {
	mu               sync.RWMutex
	belowWorld       BelowWorldPolicy
	traversalWorkers int
	slowTraversal    time.Duration
}

var globalIndexSettings = &IndexSettings{
	belowWorld:       BelowWorldSky,
	traversalWorkers: 4,
	slowTraversal:    8 * time.Millisecond,
}

// GetBelowWorldPolicy returns the current below-world substitution policy
func GetBelowWorldPolicy() BelowWorldPolicy {
	globalIndexSettings.mu.RLock()
	defer globalIndexSettings.mu.RUnlock()
	return globalIndexSettings.belowWorld
}

// SetBelowWorldPolicy sets the policy. Unknown values fall back to sky.
func SetBelowWorldPolicy(p BelowWorldPolicy) {
	globalIndexSettings.mu.Lock()
	defer globalIndexSettings.mu.Unlock()

	if p != BelowWorldDark {
		p = BelowWorldSky
	}
	globalIndexSettings.belowWorld = p
}

// GetTraversalWorkers returns the worker count for parallel traversal
func GetTraversalWorkers() int {
	globalIndexSettings.mu.RLock()
	defer globalIndexSettings.mu.RUnlock()
	return globalIndexSettings.traversalWorkers
}

// SetTraversalWorkers sets the worker count for parallel traversal
func SetTraversalWorkers(n int) {
	globalIndexSettings.mu.Lock()
	defer globalIndexSettings.mu.Unlock()

	// Clamp to reasonable values
	if n < 1 {
		n = 1
	}
	if n > 64 {
		n = 64
	}

	globalIndexSettings.traversalWorkers = n
}

// GetSlowTraversal returns the duration above which a traversal is logged as slow
func GetSlowTraversal() time.Duration {
	globalIndexSettings.mu.RLock()
	defer globalIndexSettings.mu.RUnlock()
	return globalIndexSettings.slowTraversal
}

// SetSlowTraversal sets the slow traversal threshold. Zero disables the log line.
func SetSlowTraversal(d time.Duration) {
	globalIndexSettings.mu.Lock()
	defer globalIndexSettings.mu.Unlock()
	if d < 0 {
		d = 0
	}
	globalIndexSettings.slowTraversal = d
}
