package model

import "github.com/solidgen/polysplit/pkg/vec"

// TriangleRaw holds three resolved (not indexed) vertex coordinates plus
// the FaceData inherited from the polygon it was carved from.
type TriangleRaw struct {
	V0, V1, V2 vec.Vec3
	Data       FaceData
}

// SignedArea2D returns the signed area of the triangle's xy-projection
// (positive for counter-clockwise winding). The z-coordinate is ignored
// because by the time a face reaches this stage it has been canonicalized
// onto its own plane.
func (t TriangleRaw) SignedArea2D() float32 {
	return 0.5 * ((t.V1.X-t.V0.X)*(t.V2.Y-t.V0.Y) - (t.V2.X-t.V0.X)*(t.V1.Y-t.V0.Y))
}
