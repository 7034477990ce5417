package model

import (
	"testing"

	"github.com/solidgen/polysplit/pkg/vec"
)

func TestAlignedCapacity(t *testing.T) {
	cases := []struct{ count, want int }{
		{0, 1},
		{1, 16},
		{16, 16},
		{17, 32},
		{32, 32},
		{33, 48},
	}
	for _, c := range cases {
		if got := AlignedCapacity(c.count, 4); got != c.want {
			t.Errorf("AlignedCapacity(%d, 4) = %d, want %d", c.count, got, c.want)
		}
	}
}

func TestFaceDataRoundTrip(t *testing.T) {
	fd := NewFaceData(10, 20, 30, 255, vec.New(0, 1, 0))
	r, g, b, a := fd.RGBA()
	if r != 10 || g != 20 || b != 30 || a != 255 {
		t.Errorf("RGBA() = (%d,%d,%d,%d), want (10,20,30,255)", r, g, b, a)
	}
}

func TestTriangulationAppendGrows(t *testing.T) {
	tr := NewTriangulation()
	for i := 0; i < 20; i++ {
		tr.Append(TriangleRaw{})
	}
	if tr.Len() != 20 {
		t.Fatalf("Len() = %d, want 20", tr.Len())
	}
}

func TestTriangulationAppendAllCopies(t *testing.T) {
	dst := NewTriangulation()
	src := NewTriangulation()
	src.Append(TriangleRaw{V0: vec.New(1, 0, 0)})
	src.Append(TriangleRaw{V0: vec.New(2, 0, 0)})

	dst.AppendAll(src)
	if dst.Len() != 2 {
		t.Fatalf("dst.Len() = %d, want 2", dst.Len())
	}

	// Mutating src after the copy must not affect dst.
	src.Append(TriangleRaw{V0: vec.New(3, 0, 0)})
	if dst.Len() != 2 {
		t.Errorf("dst.Len() changed after mutating src: got %d, want 2", dst.Len())
	}
}

func TestPolyhedronFaceOutOfRange(t *testing.T) {
	p := Polyhedron{
		Vertices: []vec.Vec3{vec.New(0, 0, 0)},
		Faces:    []PolygonIndexed{{Indices: []int{0, 1, 2}}},
	}
	if _, err := p.Face(0); err == nil {
		t.Error("expected out-of-range index error")
	}
}

func TestCubeHasSixQuadFaces(t *testing.T) {
	c := Cube()
	if c.FaceCount() != 6 {
		t.Fatalf("Cube FaceCount() = %d, want 6", c.FaceCount())
	}
	for i := 0; i < c.FaceCount(); i++ {
		face, err := c.Face(i)
		if err != nil {
			t.Fatalf("Face(%d): %v", i, err)
		}
		if len(face.Vertices) != 4 {
			t.Errorf("Face(%d) has %d vertices, want 4", i, len(face.Vertices))
		}
	}
}

func TestTetrahedronMixedWinding(t *testing.T) {
	tet := Tetrahedron()
	if tet.FaceCount() != 4 {
		t.Fatalf("Tetrahedron FaceCount() = %d, want 4", tet.FaceCount())
	}
}
