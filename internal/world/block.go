package world

// BlockState identifies the voxel stored in a chunk cell.
type BlockState uint16

// EmptyBlock is air. Zero is reserved for it everywhere.
const EmptyBlock BlockState = 0

// IsAir reports whether b is the empty sentinel.
func (b BlockState) IsAir() bool {
	return b == EmptyBlock
}
