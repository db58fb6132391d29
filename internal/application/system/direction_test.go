package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/stride/internal/domain/vecmath"
)

var (
	worldForward = vecmath.Vec3{Z: 1}
	worldRight   = vecmath.Vec3{X: 1}
)

func assertVecInDelta(t *testing.T, want, got vecmath.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y")
	assert.InDelta(t, want.Z, got.Z, 1e-9, "z")
}

func TestProjectDirection(t *testing.T) {
	t.Run("forward input follows camera forward", func(t *testing.T) {
		dir, f, r := ProjectDirection(worldForward, worldRight, vecmath.Vec2{Y: 1}, worldForward, worldRight)

		assertVecInDelta(t, vecmath.Vec3{Z: 1}, dir)
		assert.Equal(t, worldForward, f)
		assert.Equal(t, worldRight, r)
	})

	t.Run("pitched camera is flattened", func(t *testing.T) {
		pitched := vecmath.Vec3{Y: -0.5, Z: math.Sqrt(0.75)}

		dir, f, _ := ProjectDirection(pitched, worldRight, vecmath.Vec2{Y: 1}, worldForward, worldRight)

		assertVecInDelta(t, vecmath.Vec3{Z: 1}, f)
		assertVecInDelta(t, vecmath.Vec3{Z: 1}, dir)
		assert.Equal(t, 0.0, dir.Y)
	})

	t.Run("diagonal input is normalized", func(t *testing.T) {
		dir, _, _ := ProjectDirection(worldForward, worldRight, vecmath.Vec2{X: 1, Y: 1}, worldForward, worldRight)

		assert.InDelta(t, 1.0, dir.Length(), 1e-9)
		assertVecInDelta(t, vecmath.Vec3{X: math.Sqrt2 / 2, Z: math.Sqrt2 / 2}, dir)
	})

	t.Run("camera looking straight down keeps previous forward", func(t *testing.T) {
		prev := vecmath.Vec3{X: -1}
		down := vecmath.Vec3{Y: -1}

		dir, f, r := ProjectDirection(down, vecmath.Vec3{Z: 1}, vecmath.Vec2{Y: 1}, prev, worldRight)

		assert.Equal(t, prev, f)
		assertVecInDelta(t, vecmath.Vec3{Z: 1}, r)
		assertVecInDelta(t, prev, dir)
	})

	t.Run("zero input yields zero without NaN", func(t *testing.T) {
		dir, _, _ := ProjectDirection(worldForward, worldRight, vecmath.Vec2{}, worldForward, worldRight)

		assert.True(t, dir.IsZero())
		assert.False(t, math.IsNaN(dir.X) || math.IsNaN(dir.Z))
	})

	t.Run("opposing inputs cancel to zero", func(t *testing.T) {
		back := vecmath.Vec3{Z: -1}

		dir, _, _ := ProjectDirection(worldForward, back, vecmath.Vec2{X: 1, Y: 1}, worldForward, worldRight)

		assert.True(t, dir.IsZero())
	})
}
