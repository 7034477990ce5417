// Package vec provides the 3D vector arithmetic the triangulation core is
// built on: addition, scaling, interpolation, cross product, and equality
// within a configurable epsilon.
package vec

import "math"

// Epsilon is the default absolute tolerance used by geometric predicates
// when no caller-supplied tolerance is available.
const Epsilon = 1e-6

// Vec3 is a three-component vector of 32-bit floats, matching the
// interchange format's coordinate precision.
type Vec3 struct {
	X, Y, Z float32
}

// New returns the vector (x, y, z).
func New(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Zero is the zero vector.
var Zero = Vec3{}

// Add returns a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns a scaled by s.
func (a Vec3) Scale(s float32) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Lerp returns a + (b-a)*t.
func (a Vec3) Lerp(b Vec3, t float32) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// Dot returns the dot product of a and b.
func (a Vec3) Dot(b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a x b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Magnitude returns the Euclidean length of a.
func (a Vec3) Magnitude() float32 {
	return float32(math.Sqrt(float64(a.Dot(a))))
}

// Distance returns the Euclidean distance between a and b.
func (a Vec3) Distance(b Vec3) float32 {
	return a.Sub(b).Magnitude()
}

// Normalize returns the unit vector in the direction of a. A vector whose
// magnitude is within eps of zero normalizes to the zero vector rather than
// producing NaN/Inf components.
func (a Vec3) Normalize(eps float32) Vec3 {
	m := a.Magnitude()
	if m < eps {
		return Zero
	}
	return a.Scale(1 / m)
}

// Equal reports whether a and b are within eps of each other (absolute
// tolerance on the Euclidean distance, per the data model's equality rule).
func (a Vec3) Equal(b Vec3, eps float32) bool {
	return a.Distance(b) < eps
}

// Normal returns the unit normal of the plane through a, b, c, i.e.
// normalize(cross(b-a, c-a)). Degenerate (collinear or coincident) inputs
// normalize to the zero vector.
func Normal(a, b, c Vec3, eps float32) Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize(eps)
}
