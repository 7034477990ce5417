package model

import "github.com/solidgen/polysplit/pkg/vec"

// FaceData is carried alongside every polygon and every triangle emitted
// from it: a packed RGBA color and a unit normal. Triangles inherit their
// source face's FaceData verbatim; nothing recomputes a per-triangle
// normal from the emitted winding. Rendering trusts the supplied normal,
// not the triangle's winding order.
type FaceData struct {
	Color  uint32 // packed 0xRRGGBBAA
	Normal vec.Vec3
}

// NewFaceData packs r,g,b,a into Color and stores normal as-is (the caller
// is responsible for normalizing it; FaceData does not second-guess it).
func NewFaceData(r, g, b, a uint8, normal vec.Vec3) FaceData {
	return FaceData{
		Color:  uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a),
		Normal: normal,
	}
}

// RGBA unpacks Color back into its four components.
func (f FaceData) RGBA() (r, g, b, a uint8) {
	return uint8(f.Color >> 24), uint8(f.Color >> 16), uint8(f.Color >> 8), uint8(f.Color)
}
