package vec

import "math"

// Quat is a unit quaternion, supplied for the renderer's camera/orbit math.
// The triangulation core never constructs or consumes a Quat.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity is the identity rotation.
var QuatIdentity = Quat{W: 1}

// FromAxisAngle builds a quaternion representing a rotation of angle
// radians around axis (which need not be normalized).
func FromAxisAngle(axis Vec3, angle float32) Quat {
	n := axis.Normalize(Epsilon)
	half := angle * 0.5
	s := float32(math.Sin(float64(half)))
	return Quat{
		X: n.X * s,
		Y: n.Y * s,
		Z: n.Z * s,
		W: float32(math.Cos(float64(half))),
	}
}

// Multiply returns q*r (apply r first, then q).
func (q Quat) Multiply(r Quat) Quat {
	return Quat{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Conjugate returns the conjugate of q (the inverse, for unit quaternions).
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// RotateVector rotates v by q.
func (q Quat) RotateVector(v Vec3) Vec3 {
	qv := Quat{X: v.X, Y: v.Y, Z: v.Z, W: 0}
	r := q.Multiply(qv).Multiply(q.Conjugate())
	return Vec3{X: r.X, Y: r.Y, Z: r.Z}
}
