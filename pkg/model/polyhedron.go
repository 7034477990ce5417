package model

import (
	"fmt"

	"github.com/solidgen/polysplit/pkg/vec"
)

// Polyhedron is a shared vertex table plus a sequence of indexed faces, as
// produced by an external face reader and consumed read-only by the
// triangulation pipeline.
type Polyhedron struct {
	Vertices []vec.Vec3
	Faces    []PolygonIndexed
}

// Face resolves the i'th face's indices into a PolygonRaw, copying
// coordinates out of the shared vertex table.
func (p Polyhedron) Face(i int) (PolygonRaw, error) {
	f := p.Faces[i]
	verts := make([]vec.Vec3, len(f.Indices))
	for j, idx := range f.Indices {
		if idx < 0 || idx >= len(p.Vertices) {
			return PolygonRaw{}, fmt.Errorf("face %d: vertex index %d out of range [0,%d)", i, idx, len(p.Vertices))
		}
		verts[j] = p.Vertices[idx]
	}
	return PolygonRaw{Vertices: verts, Data: f.Data}, nil
}

// FaceCount returns the number of faces.
func (p Polyhedron) FaceCount() int {
	return len(p.Faces)
}
