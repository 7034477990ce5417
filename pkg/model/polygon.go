package model

import "github.com/solidgen/polysplit/pkg/vec"

// PolygonRaw is an ordered sequence of vertices forming a polygon's
// boundary cycle, in input order, plus the FaceData it carries. No
// constraint is placed on simplicity or convexity: edge i connects
// vertex i to vertex (i+1) mod n, implicitly.
type PolygonRaw struct {
	Vertices []vec.Vec3
	Data     FaceData
}

// EdgeAt returns the i'th boundary edge (vertex i, vertex (i+1)%n).
func (p PolygonRaw) EdgeAt(i int) (vec.Vec3, vec.Vec3) {
	n := len(p.Vertices)
	return p.Vertices[i], p.Vertices[(i+1)%n]
}

// PolygonIndexed is one face of a Polyhedron: a FaceData plus indices into
// the polyhedron's shared vertex table.
type PolygonIndexed struct {
	Indices []int
	Data    FaceData
}
