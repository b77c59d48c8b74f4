package world

const (
	// ChunkSize is the edge length of a chunk in blocks.
	ChunkSize = 16
	// ChunkVolume is the number of cells in a chunk.
	ChunkVolume = ChunkSize * ChunkSize * ChunkSize
)

// Chunk is a 16x16x16 grid of blocks and light levels in YZX order.
// It is a plain value: assigning a Chunk copies all of its cells.
type Chunk struct {
	Blocks [ChunkVolume]BlockState
	Lights [ChunkVolume]LightLevel
}

// EmptyChunk stands in for every chunk that has no data: all air under
// full sky. It must never be written to.
var EmptyChunk = newSentinelChunk(FullSky)

// DarkChunk is the all-air, unlit alternative to EmptyChunk used below the
// lowest level when the below-world policy is "dark".
var DarkChunk = newSentinelChunk(Dark)

func newSentinelChunk(light LightLevel) Chunk {
	var c Chunk
	c.FillLight(light)
	return c
}

// NewChunk returns an all-air chunk lit by full sky.
func NewChunk() Chunk {
	return newSentinelChunk(FullSky)
}

// cellIndex converts local (x, y, z) to the flat YZX index.
func cellIndex(x, y, z int) int {
	return (y*ChunkSize+z)*ChunkSize + x
}

// Block returns the block at local coordinates, each in [0, 16).
func (c *Chunk) Block(x, y, z int) BlockState {
	return c.Blocks[cellIndex(x, y, z)]
}

// SetBlock stores a block at local coordinates.
func (c *Chunk) SetBlock(x, y, z int, b BlockState) {
	c.Blocks[cellIndex(x, y, z)] = b
}

// Light returns the light level at local coordinates.
func (c *Chunk) Light(x, y, z int) LightLevel {
	return c.Lights[cellIndex(x, y, z)]
}

// SetLight stores a light level at local coordinates.
func (c *Chunk) SetLight(x, y, z int, l LightLevel) {
	c.Lights[cellIndex(x, y, z)] = l
}

// Fill sets every block to b. Light is left untouched.
func (c *Chunk) Fill(b BlockState) {
	for i := range c.Blocks {
		c.Blocks[i] = b
	}
}

// FillLight sets every light cell to l.
func (c *Chunk) FillLight(l LightLevel) {
	for i := range c.Lights {
		c.Lights[i] = l
	}
}

// IsEmpty reports whether every block is air.
func (c *Chunk) IsEmpty() bool {
	for _, b := range c.Blocks {
		if b != EmptyBlock {
			return false
		}
	}
	return true
}

// Clone returns an independent copy. Callers that keep chunk data past a
// traversal must clone it.
func (c *Chunk) Clone() Chunk {
	return *c
}

// IsSentinel reports whether c is one of the shared no-data chunks.
func IsSentinel(c *Chunk) bool {
	return c == &EmptyChunk || c == &DarkChunk
}
