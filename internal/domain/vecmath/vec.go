// Package vecmath adapts mathgl's mgl64 vectors and quaternions to the
// locomotion core. Y is up; the horizontal plane is XZ. Normalizing a
// zero-length value yields zero here, never NaN.
package vecmath

import "github.com/go-gl/mathgl/mgl64"

// Vec2 is a 2D vector, used for stick/keyboard movement axes.
type Vec2 struct {
	X, Y float64
}

// Mgl returns v as an mgl64 vector.
func (v Vec2) Mgl() mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

// Vec2From converts an mgl64 vector.
func Vec2From(v mgl64.Vec2) Vec2 {
	return Vec2{v[0], v[1]}
}

// Length returns the magnitude.
func (v Vec2) Length() float64 {
	return v.Mgl().Len()
}

// IsZero reports whether both axes are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns a unit vector, or the zero vector for zero input.
func (v Vec2) Normalize() Vec2 {
	if v.IsZero() {
		return Vec2{}
	}
	return Vec2From(v.Mgl().Normalize())
}

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// Up is the world up axis.
var Up = Vec3{0, 1, 0}

// Mgl returns v as an mgl64 vector.
func (v Vec3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// Vec3From converts an mgl64 vector.
func Vec3From(v mgl64.Vec3) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3From(v.Mgl().Add(other.Mgl()))
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3From(v.Mgl().Sub(other.Mgl()))
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3From(v.Mgl().Mul(s))
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float64 {
	return v.Mgl().Dot(other.Mgl())
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3From(v.Mgl().Cross(other.Mgl()))
}

// Length returns the magnitude.
func (v Vec3) Length() float64 {
	return v.Mgl().Len()
}

// IsZero reports whether all components are exactly zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Normalize returns a unit vector. A zero vector stays zero.
func (v Vec3) Normalize() Vec3 {
	if v.IsZero() {
		return Vec3{}
	}
	return Vec3From(v.Mgl().Normalize())
}

// Horizontal returns v with its Y component zeroed.
func (v Vec3) Horizontal() Vec3 {
	return Vec3{v.X, 0, v.Z}
}

// HorizontalLength returns the magnitude of the XZ components.
func (v Vec3) HorizontalLength() float64 {
	return mgl64.Vec2{v.X, v.Z}.Len()
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float64 {
	return v.Sub(other).Length()
}

// Lerp interpolates a toward b by t, clamping t to [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}

// Clamp01 clamps t to [0, 1].
func Clamp01(t float64) float64 {
	return mgl64.Clamp(t, 0, 1)
}
