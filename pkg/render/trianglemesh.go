package render

import (
	"github.com/solidgen/polysplit/pkg/math3d"
	"github.com/solidgen/polysplit/pkg/model"
	"github.com/solidgen/polysplit/pkg/vec"
)

// TriangleMesh adapts a model.Triangulation to the MeshRenderer and
// BoundedMeshRenderer interfaces so the rasterizer can draw the core's
// output directly, without an intermediate indexed-mesh representation:
// every triangle already carries its own three resolved vertices, so
// VertexCount/GetFace simply address triangle i's own corner i%3.
type TriangleMesh struct {
	tri        *model.Triangulation
	boundsMin  math3d.Vec3
	boundsMax  math3d.Vec3
	haveBounds bool
}

// NewTriangleMesh wraps tri and precomputes its local-space bounding box
// for frustum culling.
func NewTriangleMesh(tri *model.Triangulation) *TriangleMesh {
	m := &TriangleMesh{tri: tri}
	for i := 0; i < tri.Len(); i++ {
		t := tri.At(i)
		m.expand(t.V0)
		m.expand(t.V1)
		m.expand(t.V2)
	}
	return m
}

func (m *TriangleMesh) expand(v vec.Vec3) {
	p := math3d.V3(float64(v.X), float64(v.Y), float64(v.Z))
	if !m.haveBounds {
		m.boundsMin, m.boundsMax = p, p
		m.haveBounds = true
		return
	}
	m.boundsMin = m.boundsMin.Min(p)
	m.boundsMax = m.boundsMax.Max(p)
}

// VertexCount reports 3 vertices per triangle; there is no shared index.
func (m *TriangleMesh) VertexCount() int {
	return m.tri.Len() * 3
}

// TriangleCount returns the number of triangles in the triangulation.
func (m *TriangleMesh) TriangleCount() int {
	return m.tri.Len()
}

// GetVertex returns corner (i % 3) of triangle (i / 3). uv is always the
// zero vector: FaceData carries a color and a normal, never texture
// coordinates.
func (m *TriangleMesh) GetVertex(i int) (pos, normal math3d.Vec3, uv math3d.Vec2) {
	t := m.tri.At(i / 3)
	var p vec.Vec3
	switch i % 3 {
	case 0:
		p = t.V0
	case 1:
		p = t.V1
	default:
		p = t.V2
	}
	pos = math3d.V3(float64(p.X), float64(p.Y), float64(p.Z))
	n := t.Data.Normal
	normal = math3d.V3(float64(n.X), float64(n.Y), float64(n.Z))
	return pos, normal, math3d.Vec2{}
}

// GetFace returns the trivial (3i, 3i+1, 3i+2) index triple for triangle i:
// with no shared vertex table, every triangle owns its three corners.
func (m *TriangleMesh) GetFace(i int) [3]int {
	return [3]int{i * 3, i*3 + 1, i*3 + 2}
}

// GetColor returns the packed color of triangle i, used by callers that
// draw with per-face (not per-vertex) color, i.e. every caller in this
// engine.
func (m *TriangleMesh) GetColor(i int) Color {
	t := m.tri.At(i)
	r, g, b, _ := t.Data.RGBA()
	return RGB(r, g, b)
}

// GetBounds returns the mesh's local-space bounding box.
func (m *TriangleMesh) GetBounds() (min, max math3d.Vec3) {
	return m.boundsMin, m.boundsMax
}

// DrawTriangleMesh renders every triangle in m with its own FaceData color
// and normal, transformed by transform and lit from lightDir. This is how
// the polyhedron driver renders its output: each face supplies its own
// color.
func (r *Rasterizer) DrawTriangleMesh(m *TriangleMesh, transform math3d.Mat4, lightDir math3d.Vec3) {
	if r.tryFrustumCull(m, transform) {
		return
	}

	invTransform := transform.Inverse()
	for i := 0; i < m.TriangleCount(); i++ {
		face := m.GetFace(i)
		p0, n0, _ := m.GetVertex(face[0])
		p1, _, _ := m.GetVertex(face[1])
		p2, _, _ := m.GetVertex(face[2])

		v0 := transform.MulVec3(p0)
		v1 := transform.MulVec3(p1)
		v2 := transform.MulVec3(p2)

		localLight := invTransform.MulVec3Dir(lightDir).Normalize()
		faceNormal := invTransform.MulVec3Dir(n0).Normalize()
		intensity := clamp01(0.3 + 0.7*faceNormal.Dot(localLight.Negate()))

		color := m.GetColor(i)
		lit := RGB(
			uint8(float64(color.R)*intensity),
			uint8(float64(color.G)*intensity),
			uint8(float64(color.B)*intensity),
		)
		r.DrawTriangleFlat(v0, v1, v2, lit)
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
