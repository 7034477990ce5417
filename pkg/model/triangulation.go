package model

// BucketBits is the aligned-capacity bucket size (2^BucketBits) used when
// growing a Triangulation's backing array. Overridable at startup (before
// any Triangulation is built) to tune allocation granularity.
var BucketBits = 4

// Triangulation is an ordered, append-only sequence of triangles. It owns
// its backing storage, growing it by aligned-capacity doubling.
type Triangulation struct {
	triangles []TriangleRaw
}

// NewTriangulation returns an empty triangulation.
func NewTriangulation() *Triangulation {
	return &Triangulation{triangles: make([]TriangleRaw, 0, AlignedCapacity(0, BucketBits))}
}

// Len returns the number of triangles currently held.
func (t *Triangulation) Len() int {
	return len(t.triangles)
}

// At returns the i'th triangle.
func (t *Triangulation) At(i int) TriangleRaw {
	return t.triangles[i]
}

// Triangles returns the live triangles. The returned slice aliases the
// Triangulation's backing array and must not be retained past the next
// mutating call.
func (t *Triangulation) Triangles() []TriangleRaw {
	return t.triangles
}

// Append adds tri to the end of the triangulation, reallocating the
// backing array only when the aligned capacity of the new length differs
// from the aligned capacity of the old one.
func (t *Triangulation) Append(tri TriangleRaw) {
	oldAligned := AlignedCapacity(len(t.triangles), BucketBits)
	newLen := len(t.triangles) + 1
	newAligned := AlignedCapacity(newLen, BucketBits)
	if newAligned != oldAligned {
		grown := make([]TriangleRaw, len(t.triangles), newAligned)
		copy(grown, t.triangles)
		t.triangles = grown
	}
	t.triangles = append(t.triangles, tri)
}

// AppendAll appends every triangle of other to t, in order. Used by the
// polyhedron driver to merge a per-face Triangulation into the global one
// by copying, not by transferring ownership.
func (t *Triangulation) AppendAll(other *Triangulation) {
	for _, tri := range other.triangles {
		t.Append(tri)
	}
}
