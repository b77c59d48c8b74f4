package world

import (
	"iter"
	"sort"

	"voxel-index/internal/config"
	"voxel-index/internal/profiling"
)

// ChunkIndex is a sparse map from column coordinate to column with
// neighbor-aware traversal over every stored chunk.
//
// The index is not safe for concurrent mutation. Columns must be added or
// removed strictly between traversals.
type ChunkIndex struct {
	columns  map[ColumnCoord]*Column
	modCount uint64 // Increases on any column add/remove
}

// NewChunkIndex creates an empty index.
func NewChunkIndex() *ChunkIndex {
	return &ChunkIndex{
		columns: make(map[ColumnCoord]*Column),
	}
}

// AddColumn registers col at (x, z), replacing any column already there.
// Neighborhoods handed out earlier for the old column are no longer valid.
func (ci *ChunkIndex) AddColumn(x, z int, col *Column) {
	if len(col.Buffers) < len(col.Chunks) {
		buffers := make([]BufferSlot, len(col.Chunks))
		copy(buffers, col.Buffers)
		col.Buffers = buffers
	}
	ci.columns[ColumnCoord{X: x, Z: z}] = col
	ci.modCount++
}

// RemoveColumn drops the column at (x, z). It reports whether one was there.
func (ci *ChunkIndex) RemoveColumn(x, z int) bool {
	key := ColumnCoord{X: x, Z: z}
	if _, ok := ci.columns[key]; !ok {
		return false
	}
	delete(ci.columns, key)
	ci.modCount++
	return true
}

// EvictFarColumns removes columns outside the given radius (in columns)
// around (cx, cz). Returns number of removed columns.
func (ci *ChunkIndex) EvictFarColumns(cx, cz, radius int) int {
	defer profiling.Track("world.EvictFarColumns")()
	removed := 0
	for key := range ci.columns {
		dx := key.X - cx
		dz := key.Z - cz
		if dx*dx+dz*dz > radius*radius {
			delete(ci.columns, key)
			ci.modCount++
			removed++
		}
	}
	return removed
}

// Column returns the column registered at (x, z).
func (ci *ChunkIndex) Column(x, z int) (*Column, bool) {
	col, ok := ci.columns[ColumnCoord{X: x, Z: z}]
	return col, ok
}

// Len returns the number of registered columns.
func (ci *ChunkIndex) Len() int {
	return len(ci.columns)
}

// ModCount returns a counter that changes whenever a column is added or removed.
func (ci *ChunkIndex) ModCount() uint64 {
	return ci.modCount
}

// Coords returns the registered column coordinates sorted by X, then Z.
func (ci *ChunkIndex) Coords() []ColumnCoord {
	keys := make([]ColumnCoord, 0, len(ci.columns))
	for k := range ci.columns {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].X != keys[j].X {
			return keys[i].X < keys[j].X
		}
		return keys[i].Z < keys[j].Z
	})
	return keys
}

// ChunkAt returns the chunk at (x, y, z), or &EmptyChunk when nothing is
// stored there.
func (ci *ChunkIndex) ChunkAt(x, y, z int) *Chunk {
	col, ok := ci.columns[ColumnCoord{X: x, Z: z}]
	if !ok {
		return &EmptyChunk
	}
	if c, ok := col.Chunk(y); ok {
		return c
	}
	return &EmptyChunk
}

// BlockAt returns the block at world block coordinates. Unloaded space is air.
func (ci *ChunkIndex) BlockAt(wx, wy, wz int) BlockState {
	coord, lx, ly, lz := BlockToChunk(wx, wy, wz)
	return ci.ChunkAt(coord.X, coord.Y, coord.Z).Block(lx, ly, lz)
}

// ForEachChunk calls visit once per stored chunk with its cached buffer
// handle. Order is unspecified.
func (ci *ChunkIndex) ForEachChunk(visit func(x, y, z int, c *Chunk, b BufferHandle, ok bool)) {
	defer profiling.Track("world.ForEachChunk")()
	for key, col := range ci.columns {
		for y := range col.Chunks {
			h, ok := col.Buffers[y].Get()
			visit(key.X, y, key.Z, &col.Chunks[y], h, ok)
		}
	}
}

// ForEachChunkWithNeighbors calls visit once per stored chunk with its full
// 3x3x3 neighborhood. The Neighborhood and everything it points to is only
// valid during the call to visit.
func (ci *ChunkIndex) ForEachChunkWithNeighbors(visit func(n *Neighborhood)) {
	for n := range ci.Neighborhoods() {
		visit(n)
	}
}

// Neighborhoods yields the same records as ForEachChunkWithNeighbors as a
// lazy sequence. The yielded record is reused between iterations.
func (ci *ChunkIndex) Neighborhoods() iter.Seq[*Neighborhood] {
	return func(yield func(*Neighborhood) bool) {
		defer profiling.Track("world.ForEachChunkWithNeighbors")()
		below := belowWorldChunk()
		var n Neighborhood
		for key := range ci.columns {
			columns := ci.neighborColumns(key)
			central := columns[1][1]
			for y := range central.Chunks {
				fillNeighborhood(&n, key, y, &columns, below)
				if !yield(&n) {
					return
				}
			}
		}
	}
}

// neighborColumns resolves the 3x3 horizontal ring around key, indexed
// [dz+1][dx+1]. Missing columns are nil.
func (ci *ChunkIndex) neighborColumns(key ColumnCoord) [3][3]*Column {
	var columns [3][3]*Column
	for dz := -1; dz <= 1; dz++ {
		for dx := -1; dx <= 1; dx++ {
			columns[dz+1][dx+1] = ci.columns[ColumnCoord{X: key.X + dx, Z: key.Z + dz}]
		}
	}
	return columns
}

func fillNeighborhood(n *Neighborhood, key ColumnCoord, y int, columns *[3][3]*Column, below *Chunk) {
	central := columns[1][1]
	n.Coord = ChunkCoord{X: key.X, Y: y, Z: key.Z}
	n.Buffer = &central.Buffers[y]
	for dz := 0; dz < 3; dz++ {
		for dx := 0; dx < 3; dx++ {
			col := columns[dz][dx]
			if col == nil {
				n.Biomes[dz][dx] = nil
			} else {
				n.Biomes[dz][dx] = &col.Biomes
			}
			for dy := 0; dy < 3; dy++ {
				n.Chunks[dy][dz][dx] = resolveChunk(col, y+dy-1, below)
			}
		}
	}
}

// resolveChunk substitutes a sentinel for a missing column or a level
// outside the column's stack. Horizontal and vertical misses compose: a
// diagonal that is both unregistered and out of range is just a sentinel.
func resolveChunk(col *Column, level int, below *Chunk) *Chunk {
	if level < 0 {
		return below
	}
	if col != nil {
		if c, ok := col.Chunk(level); ok {
			return c
		}
	}
	return &EmptyChunk
}

func belowWorldChunk() *Chunk {
	if config.GetBelowWorldPolicy() == config.BelowWorldDark {
		return &DarkChunk
	}
	return &EmptyChunk
}
