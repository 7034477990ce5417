package model

import "github.com/solidgen/polysplit/pkg/vec"

// The functions below build small, ready-made solids for demos and tests,
// restoring the "built-in shape gallery" present in the system this spec
// was distilled from (see SPEC_FULL.md §10). Each face is tagged with a
// distinct FaceData color so a rendered/triangulated solid is visually
// legible without loading an external asset.

var faceColors = []uint32{
	0xFF0000FF, 0x00FF00FF, 0x0000FFFF, 0xFFFF00FF,
	0xFF00FFFF, 0x00FFFFFF, 0xFFFFFFFF, 0x808080FF,
}

func colorFor(i int) uint32 {
	return faceColors[i%len(faceColors)]
}

func faceWithNormal(verts []vec.Vec3, idx []int, color uint32) PolygonIndexed {
	a, b, c := verts[idx[0]], verts[idx[1]], verts[idx[2]]
	n := vec.Normal(a, b, c, vec.Epsilon)
	return PolygonIndexed{Indices: idx, Data: FaceData{Color: color, Normal: n}}
}

// Tetrahedron returns a regular tetrahedron centered on the origin, one
// face deliberately listed clockwise relative to the others: winding must
// not affect triangle count.
func Tetrahedron() Polyhedron {
	v := []vec.Vec3{
		vec.New(1, 1, 1),
		vec.New(-1, -1, 1),
		vec.New(-1, 1, -1),
		vec.New(1, -1, -1),
	}
	faces := [][]int{
		{0, 1, 2},
		{0, 3, 1},
		{0, 2, 3},
		{1, 2, 3}, // clockwise relative to the other three, on purpose
	}
	poly := Polyhedron{Vertices: v}
	for i, f := range faces {
		poly.Faces = append(poly.Faces, faceWithNormal(v, f, colorFor(i)))
	}
	return poly
}

// Cube returns an axis-aligned cube of side 2 centered on the origin, with
// six quadrilateral faces.
func Cube() Polyhedron {
	v := []vec.Vec3{
		vec.New(-1, -1, -1), vec.New(1, -1, -1), vec.New(1, 1, -1), vec.New(-1, 1, -1),
		vec.New(-1, -1, 1), vec.New(1, -1, 1), vec.New(1, 1, 1), vec.New(-1, 1, 1),
	}
	faces := [][]int{
		{0, 1, 2, 3}, // -z
		{4, 7, 6, 5}, // +z
		{0, 4, 5, 1}, // -y
		{3, 2, 6, 7}, // +y
		{0, 3, 7, 4}, // -x
		{1, 5, 6, 2}, // +x
	}
	poly := Polyhedron{Vertices: v}
	for i, f := range faces {
		poly.Faces = append(poly.Faces, faceWithNormal(v, f, colorFor(i)))
	}
	return poly
}

// Octahedron returns a regular octahedron centered on the origin.
func Octahedron() Polyhedron {
	v := []vec.Vec3{
		vec.New(1, 0, 0), vec.New(-1, 0, 0),
		vec.New(0, 1, 0), vec.New(0, -1, 0),
		vec.New(0, 0, 1), vec.New(0, 0, -1),
	}
	faces := [][]int{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	}
	poly := Polyhedron{Vertices: v}
	for i, f := range faces {
		poly.Faces = append(poly.Faces, faceWithNormal(v, f, colorFor(i)))
	}
	return poly
}
