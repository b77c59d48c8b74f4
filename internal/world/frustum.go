package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"voxel-index/internal/profiling"
)

// FrustumMargin inflates chunk AABBs (in blocks) before testing them.
var FrustumMargin float32 = 1.0

// plane is a*x + b*y + c*z + d = 0 with a unit normal.
type plane struct {
	a, b, c, d float32
}

// Frustum is the six clip planes of a projection*view matrix.
type Frustum [6]plane

// NewFrustum builds the planes from the combined projection*view matrix.
// Planes are stored in order: left, right, bottom, top, near, far.
func NewFrustum(viewProj mgl32.Mat4) Frustum {
	// Matrix is in column-major order in mgl32
	row := func(i int) [4]float32 {
		return [4]float32{viewProj[i], viewProj[i+4], viewProj[i+8], viewProj[i+12]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)
	combine := func(a [4]float32, sign float32) plane {
		return normalizePlane(plane{
			r3[0] + sign*a[0],
			r3[1] + sign*a[1],
			r3[2] + sign*a[2],
			r3[3] + sign*a[3],
		})
	}
	return Frustum{
		combine(r0, 1), combine(r0, -1),
		combine(r1, 1), combine(r1, -1),
		combine(r2, 1), combine(r2, -1),
	}
}

func normalizePlane(p plane) plane {
	l := float32(math.Sqrt(float64(p.a*p.a + p.b*p.b + p.c*p.c)))
	if l == 0 {
		return p
	}
	return plane{p.a / l, p.b / l, p.c / l, p.d / l}
}

// IntersectsAABB tests an axis-aligned box against every plane using the
// box corner furthest along each plane normal.
func (f *Frustum) IntersectsAABB(min, max mgl32.Vec3) bool {
	for _, p := range f {
		px := max.X()
		if p.a < 0 {
			px = min.X()
		}
		py := max.Y()
		if p.b < 0 {
			py = min.Y()
		}
		pz := max.Z()
		if p.c < 0 {
			pz = min.Z()
		}
		if p.a*px+p.b*py+p.c*pz+p.d < 0 {
			return false
		}
	}
	return true
}

// ForEachChunkInFrustum is ForEachChunk limited to chunks whose bounds
// intersect the view frustum. Renderers use it to resubmit cached buffers.
func (ci *ChunkIndex) ForEachChunkInFrustum(viewProj mgl32.Mat4, visit func(x, y, z int, c *Chunk, b BufferHandle, ok bool)) {
	defer profiling.Track("world.ForEachChunkInFrustum")()
	f := NewFrustum(viewProj)
	margin := mgl32.Vec3{FrustumMargin, FrustumMargin, FrustumMargin}
	for key, col := range ci.columns {
		for y := range col.Chunks {
			min, max := ChunkCoord{X: key.X, Y: y, Z: key.Z}.Bounds()
			if !f.IntersectsAABB(min.Sub(margin), max.Add(margin)) {
				continue
			}
			h, ok := col.Buffers[y].Get()
			visit(key.X, y, key.Z, &col.Chunks[y], h, ok)
		}
	}
}
