package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBlockToChunkNegative(t *testing.T) {
	coord, lx, ly, lz := BlockToChunk(-1, 16, -17)
	if coord != (ChunkCoord{X: -1, Y: 1, Z: -2}) {
		t.Fatalf("coord = %+v", coord)
	}
	if lx != 15 || ly != 0 || lz != 15 {
		t.Fatalf("local = %d,%d,%d, want 15,0,15", lx, ly, lz)
	}
}

func TestChunkBounds(t *testing.T) {
	min, max := ChunkCoord{X: -1, Y: 2, Z: 0}.Bounds()
	if min != (mgl32.Vec3{-16, 32, 0}) || max != (mgl32.Vec3{0, 48, 16}) {
		t.Fatalf("bounds = %v %v", min, max)
	}
}
