package world

import "github.com/go-gl/mathgl/mgl32"

// ColumnCoord keys a column in the index.
type ColumnCoord struct {
	X, Z int
}

// ChunkCoord addresses a chunk as (column x, vertical level, column z).
type ChunkCoord struct {
	X, Y, Z int
}

// Column returns the column part of the coordinate.
func (c ChunkCoord) Column() ColumnCoord {
	return ColumnCoord{X: c.X, Z: c.Z}
}

// Bounds returns the world-space AABB of the chunk.
func (c ChunkCoord) Bounds() (min, max mgl32.Vec3) {
	min = mgl32.Vec3{
		float32(c.X * ChunkSize),
		float32(c.Y * ChunkSize),
		float32(c.Z * ChunkSize),
	}
	max = min.Add(mgl32.Vec3{ChunkSize, ChunkSize, ChunkSize})
	return min, max
}

// BlockToChunk splits a world block coordinate into its chunk coordinate and
// the local offset inside that chunk.
func BlockToChunk(wx, wy, wz int) (coord ChunkCoord, lx, ly, lz int) {
	coord = ChunkCoord{
		X: FloorDiv(wx, ChunkSize),
		Y: FloorDiv(wy, ChunkSize),
		Z: FloorDiv(wz, ChunkSize),
	}
	return coord, Mod(wx, ChunkSize), Mod(wy, ChunkSize), Mod(wz, ChunkSize)
}

// FloorDiv divides rounding toward negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Mod returns a non-negative remainder for positive b.
func Mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
