package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Lightweight per-pass profiler for index traversals.

// Entry is the accumulated time and call count for one tracked name.
type Entry struct {
	Total time.Duration
	Calls int
}

var (
	mu     sync.Mutex
	totals = make(map[string]Entry)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("world.ForEachChunk")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		e := totals[name]
		e.Total += d
		e.Calls++
		totals[name] = e
		mu.Unlock()
	}
}

// ResetFrame clears the current totals. Call at the start of each pass.
func ResetFrame() {
	mu.Lock()
	clear(totals)
	mu.Unlock()
}

// Snapshot returns a copy of the current totals.
func Snapshot() map[string]Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]Entry, len(totals))
	for k, v := range totals {
		out[k] = v
	}
	return out
}

// TopN formats the n slowest names, for example
// "world.ForEachChunkWithNeighbors:4.2ms(1), world.ForEachChunk:0.3ms(2)".
func TopN(n int) string {
	ss := Snapshot()
	names := make([]string, 0, len(ss))
	for k := range ss {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		if ss[names[i]].Total != ss[names[j]].Total {
			return ss[names[i]].Total > ss[names[j]].Total
		}
		return names[i] < names[j]
	})
	if n > len(names) {
		n = len(names)
	}
	parts := make([]string, 0, n)
	for _, name := range names[:n] {
		e := ss[name]
		ms := float64(e.Total.Microseconds()) / 1000.0
		parts = append(parts, fmt.Sprintf("%s:%.1fms(%d)", name, ms, e.Calls))
	}
	return strings.Join(parts, ", ")
}
