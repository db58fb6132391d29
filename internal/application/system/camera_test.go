package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/stride/internal/domain/vecmath"
	"github.com/younwookim/stride/internal/infrastructure/config"
)

func TestNewOrbitCamera(t *testing.T) {
	cam := NewOrbitCamera(config.CameraConfig{Yaw: 90, Pitch: 35, TurnSpeed: 180})

	assert.InDelta(t, math.Pi/2, cam.Yaw, 1e-9)
	assert.InDelta(t, 35*math.Pi/180, cam.Pitch, 1e-9)
	assert.InDelta(t, math.Pi, cam.TurnSpeed, 1e-9)
}

func TestOrbitCamera_Basis(t *testing.T) {
	t.Run("yaw zero looks along +Z", func(t *testing.T) {
		cam := &OrbitCamera{}

		assertVecInDelta(t, vecmath.Vec3{Z: 1}, cam.Forward())
		assertVecInDelta(t, vecmath.Vec3{X: 1}, cam.Right())
	})

	t.Run("yaw ninety looks along +X", func(t *testing.T) {
		cam := &OrbitCamera{Yaw: math.Pi / 2}

		assertVecInDelta(t, vecmath.Vec3{X: 1}, cam.Forward())
		assertVecInDelta(t, vecmath.Vec3{Z: -1}, cam.Right())
	})

	t.Run("pitch tilts forward down", func(t *testing.T) {
		cam := &OrbitCamera{Pitch: math.Pi / 4}
		f := cam.Forward()

		assert.Less(t, f.Y, 0.0)
		assert.InDelta(t, 1.0, f.Length(), 1e-9)
		assert.InDelta(t, 0.0, f.Dot(cam.Right()), 1e-9)
	})

	t.Run("straight down has no horizontal forward", func(t *testing.T) {
		cam := NewOrbitCamera(config.CameraConfig{Pitch: 120})

		assert.InDelta(t, math.Pi/2, cam.Pitch, 1e-9, "pitch is clamped")
		assert.InDelta(t, 0.0, cam.Forward().HorizontalLength(), 1e-9)
	})
}

func TestOrbitCamera_Turn(t *testing.T) {
	cam := NewOrbitCamera(config.CameraConfig{TurnSpeed: 90})

	cam.Turn(1, 1)
	assert.InDelta(t, math.Pi/2, cam.Yaw, 1e-9)

	cam.Turn(-1, 0.5)
	assert.InDelta(t, math.Pi/4, cam.Yaw, 1e-9)

	cam.Turn(1, 4)
	assert.InDelta(t, math.Pi/4, cam.Yaw, 1e-9, "full turn wraps")
}

func TestOrbitCamera_SetAngles(t *testing.T) {
	cam := &OrbitCamera{}

	cam.SetAngles(2.5*math.Pi, -2)

	assert.InDelta(t, math.Pi/2, cam.Yaw, 1e-9)
	assert.InDelta(t, -math.Pi/2, cam.Pitch, 1e-9)
}

func TestOrbitCamera_SetTurnSpeed(t *testing.T) {
	cam := &OrbitCamera{}

	cam.SetTurnSpeed(45)

	assert.InDelta(t, math.Pi/4, cam.TurnSpeed, 1e-9)
}
