package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testViewProj() mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(70), 16.0/9.0, 0.1, 1000)
	view := mgl32.LookAtV(mgl32.Vec3{8, 8, 40}, mgl32.Vec3{8, 8, 0}, mgl32.Vec3{0, 1, 0})
	return proj.Mul4(view)
}

func TestFrustumIntersectsAABB(t *testing.T) {
	f := NewFrustum(testViewProj())
	if !f.IntersectsAABB(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{16, 16, 16}) {
		t.Error("chunk in front of the camera should be visible")
	}
	if f.IntersectsAABB(mgl32.Vec3{0, 0, 160}, mgl32.Vec3{16, 16, 176}) {
		t.Error("chunk behind the camera should be culled")
	}
	if f.IntersectsAABB(mgl32.Vec3{1600, 0, 0}, mgl32.Vec3{1616, 16, 16}) {
		t.Error("chunk far to the side should be culled")
	}
}

func TestForEachChunkInFrustum(t *testing.T) {
	ci := NewChunkIndex()
	front := makeColumn(1, 1, BiomePlains)
	front.Buffer(0).Set(42)
	ci.AddColumn(0, 0, front)
	ci.AddColumn(0, 10, makeColumn(1, 1, BiomePlains))
	ci.AddColumn(100, 0, makeColumn(1, 1, BiomePlains))

	var visited []ChunkCoord
	ci.ForEachChunkInFrustum(testViewProj(), func(x, y, z int, c *Chunk, b BufferHandle, ok bool) {
		visited = append(visited, ChunkCoord{X: x, Y: y, Z: z})
		if !ok || b != 42 {
			t.Errorf("buffer = %d,%v, want 42,true", b, ok)
		}
		if c != &front.Chunks[0] {
			t.Error("visited chunk is not the stored chunk")
		}
	})
	if len(visited) != 1 || visited[0] != (ChunkCoord{}) {
		t.Fatalf("visited = %v, want only the origin chunk", visited)
	}
}
