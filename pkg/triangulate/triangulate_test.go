package triangulate

import (
	"math"
	"testing"

	"github.com/solidgen/polysplit/pkg/model"
	"github.com/solidgen/polysplit/pkg/pslg"
	"github.com/solidgen/polysplit/pkg/status"
	"github.com/solidgen/polysplit/pkg/vec"
)

const eps = 1e-5

func polygon(verts ...vec.Vec3) model.PolygonRaw {
	return model.PolygonRaw{Vertices: verts}
}

func totalAbsArea(tri *model.Triangulation) float32 {
	var sum float32
	for i := 0; i < tri.Len(); i++ {
		a := tri.At(i).SignedArea2D()
		if a < 0 {
			a = -a
		}
		sum += a
	}
	return sum
}

// signedAreaMagnitude sums triangle areas WITH sign before taking the
// absolute value, as conservation of area requires: the ear-attack driver
// has no convexity test, so on a concave boundary its triangles can
// geometrically overlap, relying on opposing signs to still telescope to
// the polygon's true area.
func signedAreaMagnitude(tri *model.Triangulation) float32 {
	var sum float32
	for i := 0; i < tri.Len(); i++ {
		sum += tri.At(i).SignedArea2D()
	}
	if sum < 0 {
		sum = -sum
	}
	return sum
}

func runFace(t *testing.T, face model.PolygonRaw) *model.Triangulation {
	t.Helper()
	p := pslg.FromPolygon(face, eps)
	SplitEntirely(&p)
	tri := model.NewTriangulation()
	AttackAll(&p, tri)
	return tri
}

// scenario (a): a single triangle, already an ear.
func TestTriangleScenario(t *testing.T) {
	face := polygon(vec.New(0, 0, 0), vec.New(1, 0, 0), vec.New(0, 1, 0))
	tri := runFace(t, face)
	if tri.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tri.Len())
	}
}

// scenario (b): a convex quad splits into two triangles covering area 1.
func TestSquareScenario(t *testing.T) {
	face := polygon(vec.New(0, 0, 0), vec.New(1, 0, 0), vec.New(1, 1, 0), vec.New(0, 1, 0))
	tri := runFace(t, face)
	if tri.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tri.Len())
	}
	if area := totalAbsArea(tri); math.Abs(float64(area-1)) > 1e-3 {
		t.Errorf("total area = %v, want 1", area)
	}
}

// scenario (c): self-crossing bowtie splits at its center. The attack
// driver has no convexity test, so a shared closing edge between the two
// true lobes can leave a last, zero-area degenerate triangle once the
// center vertex's remaining two edges turn out collinear; total absolute
// area nonetheless still comes out to 0.5.
func TestBowtieScenario(t *testing.T) {
	face := polygon(vec.New(0, 0, 0), vec.New(1, 1, 0), vec.New(1, 0, 0), vec.New(0, 1, 0))
	tri := runFace(t, face)
	if tri.Len() < 2 {
		t.Fatalf("Len() = %d, want at least 2", tri.Len())
	}
	if area := totalAbsArea(tri); math.Abs(float64(area-0.5)) > 1e-3 {
		t.Errorf("total area = %v, want 0.5", area)
	}
}

// scenario (d): concave "arrow" pentagon, three triangles, total area 3.
func TestConcavePentagonScenario(t *testing.T) {
	face := polygon(
		vec.New(0, 0, 0), vec.New(2, 0, 0), vec.New(2, 2, 0),
		vec.New(1, 1, 0), vec.New(0, 2, 0),
	)
	tri := runFace(t, face)
	if tri.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tri.Len())
	}
	if area := signedAreaMagnitude(tri); math.Abs(float64(area-3)) > 1e-3 {
		t.Errorf("|signed area| = %v, want 3", area)
	}
}

// scenario (e): cube (side 2), 6 quad faces, 12 triangles total.
func TestCubeScenario(t *testing.T) {
	cube := model.Cube()
	out, err := Polyhedron(cube, eps)
	if err != nil {
		t.Fatalf("Polyhedron: %v", err)
	}
	if out.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", out.Len())
	}
}

// scenario (f): tetrahedron with one face listed clockwise still yields 4
// triangles; winding is not corrected.
func TestTetrahedronMixedWindingScenario(t *testing.T) {
	tet := model.Tetrahedron()
	out, err := Polyhedron(tet, eps)
	if err != nil {
		t.Fatalf("Polyhedron: %v", err)
	}
	if out.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", out.Len())
	}
}

// property 2: every vertex of P appears as a vertex of at least one
// emitted triangle.
func TestVertexContainment(t *testing.T) {
	face := polygon(
		vec.New(0, 0, 0), vec.New(2, 0, 0), vec.New(2, 2, 0),
		vec.New(1, 1, 0), vec.New(0, 2, 0),
	)
	tri := runFace(t, face)

	for _, want := range face.Vertices {
		found := false
		for i := 0; i < tri.Len(); i++ {
			tt := tri.At(i)
			if tt.V0.Equal(want, eps) || tt.V1.Equal(want, eps) || tt.V2.Equal(want, eps) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("vertex %v not present in any output triangle", want)
		}
	}
}

// property 7: per-face independence — a polyhedron whose faces are
// disjoint yields the concatenation of each face's triangulation, in
// face-iteration order.
func TestPerFaceIndependence(t *testing.T) {
	poly := model.Polyhedron{
		Vertices: []vec.Vec3{
			vec.New(0, 0, 0), vec.New(1, 0, 0), vec.New(0, 1, 0),
			vec.New(10, 0, 0), vec.New(11, 0, 0), vec.New(10, 1, 0),
		},
		Faces: []model.PolygonIndexed{
			{Indices: []int{0, 1, 2}},
			{Indices: []int{3, 4, 5}},
		},
	}
	out, err := Polyhedron(poly, eps)
	if err != nil {
		t.Fatalf("Polyhedron: %v", err)
	}
	if out.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", out.Len())
	}
	// Attack emits (V[a], V[i], V[b]); the first face's ear is vertex 0,
	// which therefore lands in the middle slot.
	if !out.At(0).V1.Equal(vec.New(0, 0, 0), eps) {
		t.Errorf("first face's triangle not first in output: %v", out.At(0))
	}
}

func TestPolyhedronPropagatesFatalOnBadIndex(t *testing.T) {
	poly := model.Polyhedron{
		Vertices: []vec.Vec3{vec.New(0, 0, 0)},
		Faces:    []model.PolygonIndexed{{Indices: []int{0, 1, 2}}},
	}
	if _, err := Polyhedron(poly, eps); err == nil {
		t.Error("expected a fatal error from an out-of-range face index")
	}
}

// property 5: after each successful split, |V| grows by exactly 1 and |E|
// by exactly 2.
func TestSplitMonotonicity(t *testing.T) {
	face := polygon(vec.New(0, 0, 0), vec.New(1, 1, 0), vec.New(1, 0, 0), vec.New(0, 1, 0))
	p := pslg.FromPolygon(face, eps)
	beforeV, beforeE := len(p.V), len(p.E)
	if got := pslg.Split(&p, 0, 2); got != status.Success {
		t.Fatalf("Split = %v, want Success", got)
	}
	if len(p.V) != beforeV+1 {
		t.Errorf("|V| grew by %d, want 1", len(p.V)-beforeV)
	}
	if len(p.E) != beforeE+2 {
		t.Errorf("|E| grew by %d, want 2", len(p.E)-beforeE)
	}
}

// property 6: after each successful attack, |E| decreases by 1 or 2 and
// the triangle count increases by exactly 1.
func TestAttackMonotonicity(t *testing.T) {
	face := polygon(vec.New(0, 0, 0), vec.New(1, 0, 0), vec.New(0, 1, 0))
	p := pslg.FromPolygon(face, eps)
	tri := model.NewTriangulation()

	beforeE := len(p.E)
	if got := Attack(&p, tri, 0); got != status.Success {
		t.Fatalf("Attack = %v, want Success", got)
	}
	diff := beforeE - len(p.E)
	if diff != 1 && diff != 2 {
		t.Errorf("|E| shrank by %d, want 1 or 2", diff)
	}
	if tri.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tri.Len())
	}
}

func TestAttackNoOpOnNonDegreeTwoVertex(t *testing.T) {
	face := polygon(
		vec.New(0, 0, 0), vec.New(2, 0, 0), vec.New(2, 2, 0),
		vec.New(1, 1, 0), vec.New(0, 2, 0),
	)
	p := pslg.FromPolygon(face, eps)
	// All boundary vertices start at degree 2 in a simple cycle; force a
	// degree-3 vertex by adding a chord, then attack one of its endpoints.
	p.E = append(p.E, pslg.Edge{U: 0, V: 2})
	tri := model.NewTriangulation()
	if got := Attack(&p, tri, 0); got != status.NoOp {
		t.Errorf("Attack on degree-3 vertex = %v, want NoOp", got)
	}
}

// "V no longer reflects live vertices" design note: AttackAll never
// shrinks p.V even though many of its positions become degree-0.
func TestAttackAllDoesNotCompactVertices(t *testing.T) {
	face := polygon(vec.New(0, 0, 0), vec.New(1, 0, 0), vec.New(1, 1, 0), vec.New(0, 1, 0))
	p := pslg.FromPolygon(face, eps)
	beforeV := len(p.V)
	tri := model.NewTriangulation()
	AttackAll(&p, tri)
	if len(p.V) != beforeV {
		t.Errorf("len(V) changed from %d to %d; vertices must not be compacted", beforeV, len(p.V))
	}
}
