package vecmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// quatEpsilon is the length below which a quaternion is treated as degenerate.
const quatEpsilon = 0.0001

// Quat represents a rotation quaternion. W is the scalar part.
type Quat struct {
	X, Y, Z, W float64
}

// Mgl returns q as an mgl64 quaternion.
func (q Quat) Mgl() mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

// QuatFrom converts an mgl64 quaternion.
func QuatFrom(q mgl64.Quat) Quat {
	return Quat{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat {
	return QuatFrom(mgl64.QuatIdent())
}

// QuatFromAxisAngle creates a quaternion from a normalized axis and an angle in radians.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	return QuatFrom(mgl64.QuatRotate(angle, axis.Mgl()))
}

// LookRotation returns the yaw-only rotation that turns +Z toward dir.
// The vertical component of dir is ignored; a zero horizontal dir yields identity.
func LookRotation(dir Vec3) Quat {
	h := dir.Horizontal()
	if h.IsZero() {
		return QuatIdentity()
	}
	return QuatFromAxisAngle(Up, math.Atan2(h.X, h.Z))
}

// Normalize returns a unit quaternion, or identity for a degenerate one.
func (q Quat) Normalize() Quat {
	if q.Mgl().Len() < quatEpsilon {
		return QuatIdentity()
	}
	return QuatFrom(q.Mgl().Normalize())
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float64 {
	return q.Mgl().Dot(other.Mgl())
}

// Slerp performs spherical linear interpolation toward other along the
// shorter arc. t is clamped to [0, 1].
func (q Quat) Slerp(other Quat, t float64) Quat {
	to := other.Mgl()
	if q.Dot(other) < 0 {
		to = to.Scale(-1)
	}
	return QuatFrom(mgl64.QuatSlerp(q.Mgl(), to, Clamp01(t)))
}

// Rotate applies the rotation to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	return Vec3From(q.Mgl().Rotate(v.Mgl()))
}

// Forward returns the rotated +Z axis.
func (q Quat) Forward() Vec3 {
	return q.Rotate(Vec3{0, 0, 1})
}

// Yaw returns the rotation about Y in radians, in (-π, π].
func (q Quat) Yaw() float64 {
	return math.Atan2(2*(q.W*q.Y+q.X*q.Z), 1-2*(q.X*q.X+q.Y*q.Y))
}
