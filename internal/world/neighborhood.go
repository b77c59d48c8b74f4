package world

// Neighborhood is the 3x3x3 stencil around one stored chunk.
//
// Chunks is indexed [dy+1][dz+1][dx+1] and never holds nil: absent
// neighbors are sentinel chunks. Biomes is indexed [dz+1][dx+1] and is nil
// where no column is registered. Chunks[1][1][1] is the stored chunk itself.
type Neighborhood struct {
	Coord  ChunkCoord
	Buffer *BufferSlot
	Chunks [3][3][3]*Chunk
	Biomes [3][3]*BiomeGrid
}

// Center returns the chunk the neighborhood was built for.
func (n *Neighborhood) Center() *Chunk {
	return n.Chunks[1][1][1]
}

// Chunk returns the neighbor at relative offset (dx, dy, dz), each in {-1, 0, 1}.
func (n *Neighborhood) Chunk(dx, dy, dz int) *Chunk {
	return n.Chunks[dy+1][dz+1][dx+1]
}

// Biome returns the biome grid of the neighboring column at (dx, dz), or
// nil when no column is registered there.
func (n *Neighborhood) Biome(dx, dz int) *BiomeGrid {
	return n.Biomes[dz+1][dx+1]
}

// split maps a local coordinate in [-16, 32) to a stencil offset and a
// coordinate inside that chunk.
func split(v int) (d, local int) {
	switch {
	case v < 0:
		return -1, v + ChunkSize
	case v >= ChunkSize:
		return 1, v - ChunkSize
	default:
		return 0, v
	}
}

// Block returns the block at coordinates relative to the central chunk's
// origin. Each coordinate must be in [-16, 32).
func (n *Neighborhood) Block(x, y, z int) BlockState {
	dx, lx := split(x)
	dy, ly := split(y)
	dz, lz := split(z)
	return n.Chunk(dx, dy, dz).Block(lx, ly, lz)
}

// Light returns the light level at coordinates relative to the central
// chunk's origin. Each coordinate must be in [-16, 32).
func (n *Neighborhood) Light(x, y, z int) LightLevel {
	dx, lx := split(x)
	dy, ly := split(y)
	dz, lz := split(z)
	return n.Chunk(dx, dy, dz).Light(lx, ly, lz)
}

// BiomeAt returns the biome at horizontal coordinates relative to the
// central column. ok is false when that column is not loaded.
func (n *Neighborhood) BiomeAt(x, z int) (id BiomeID, ok bool) {
	dx, lx := split(x)
	dz, lz := split(z)
	g := n.Biome(dx, dz)
	if g == nil {
		return 0, false
	}
	return g.At(lx, lz), true
}

// TouchesSentinel reports whether any of the 26 neighbors is a sentinel,
// i.e. the chunk sits on a world edge or next to unloaded space.
func (n *Neighborhood) TouchesSentinel() bool {
	for dy := range 3 {
		for dz := range 3 {
			for dx := range 3 {
				if IsSentinel(n.Chunks[dy][dz][dx]) {
					return true
				}
			}
		}
	}
	return false
}
