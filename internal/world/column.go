package world

// BufferHandle names a GPU buffer owned by the renderer. The index only
// caches it.
type BufferHandle uint32

// BufferSlot is a cache cell for one chunk's render buffer. It may be written
// through a pointer handed out during a read-only traversal; each slot has a
// single writer and there is no atomicity across slots.
type BufferSlot struct {
	handle BufferHandle
	ok     bool
}

// Get returns the cached handle, if any.
func (s *BufferSlot) Get() (BufferHandle, bool) {
	return s.handle, s.ok
}

// Set stores h.
func (s *BufferSlot) Set(h BufferHandle) {
	s.handle, s.ok = h, true
}

// Replace stores h and returns the previous handle so the caller can free it.
func (s *BufferSlot) Replace(h BufferHandle) (old BufferHandle, ok bool) {
	old, ok = s.handle, s.ok
	s.Set(h)
	return old, ok
}

// Clear empties the slot and returns what was there.
func (s *BufferSlot) Clear() (old BufferHandle, ok bool) {
	old, ok = s.handle, s.ok
	s.handle, s.ok = 0, false
	return old, ok
}

// Column is a vertical stack of chunks over one 16x16 footprint. Level 0 is
// the lowest chunk. Buffers[i] caches the render buffer of Chunks[i].
type Column struct {
	Chunks  []Chunk
	Buffers []BufferSlot
	Biomes  BiomeGrid
}

// NewColumn builds a column from a fully populated chunk stack and biome
// grid. The chunks are stored as given; the caller must not keep writing to
// the slice after handing it over.
func NewColumn(chunks []Chunk, biomes BiomeGrid) *Column {
	return &Column{
		Chunks:  chunks,
		Buffers: make([]BufferSlot, len(chunks)),
		Biomes:  biomes,
	}
}

// Height returns the number of stored levels.
func (c *Column) Height() int {
	return len(c.Chunks)
}

// Chunk returns the chunk at level, or false when level is outside the stack.
func (c *Column) Chunk(level int) (*Chunk, bool) {
	if level < 0 || level >= len(c.Chunks) {
		return nil, false
	}
	return &c.Chunks[level], true
}

// Buffer returns the cache slot for level. Level must be inside the stack.
func (c *Column) Buffer(level int) *BufferSlot {
	return &c.Buffers[level]
}
