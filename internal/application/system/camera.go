package system

import (
	"math"

	"github.com/younwookim/stride/internal/domain/vecmath"
	"github.com/younwookim/stride/internal/infrastructure/config"
)

// maxPitch keeps the orbit camera from flipping over the top.
const maxPitch = math.Pi / 2

// OrbitCamera is a yaw/pitch camera used as the controller's orientation source.
// Yaw 0 looks along +Z; positive pitch looks down.
type OrbitCamera struct {
	Yaw       float64 // radians
	Pitch     float64 // radians
	TurnSpeed float64 // radians per second
}

// NewOrbitCamera creates a camera from degree-based config
func NewOrbitCamera(cfg config.CameraConfig) *OrbitCamera {
	return &OrbitCamera{
		Yaw:       degToRad(cfg.Yaw),
		Pitch:     clampPitch(degToRad(cfg.Pitch)),
		TurnSpeed: degToRad(cfg.TurnSpeed),
	}
}

// SetTurnSpeed sets the turn rate in degrees per second
func (c *OrbitCamera) SetTurnSpeed(degPerSec float64) {
	c.TurnSpeed = degToRad(degPerSec)
}

// Turn rotates the camera around the vertical axis. axis is in [-1, 1].
func (c *OrbitCamera) Turn(axis, dt float64) {
	c.Yaw = wrapAngle(c.Yaw + axis*c.TurnSpeed*dt)
}

// SetAngles sets yaw and pitch directly, in radians
func (c *OrbitCamera) SetAngles(yaw, pitch float64) {
	c.Yaw = wrapAngle(yaw)
	c.Pitch = clampPitch(pitch)
}

// Forward returns the view direction, including pitch
func (c *OrbitCamera) Forward() vecmath.Vec3 {
	sy, cy := math.Sincos(c.Yaw)
	sp, cp := math.Sincos(c.Pitch)
	return vecmath.Vec3{X: sy * cp, Y: -sp, Z: cy * cp}
}

// Right returns the horizontal right axis
func (c *OrbitCamera) Right() vecmath.Vec3 {
	sy, cy := math.Sincos(c.Yaw)
	return vecmath.Vec3{X: cy, Z: -sy}
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func clampPitch(p float64) float64 {
	return math.Max(-maxPitch, math.Min(maxPitch, p))
}

// wrapAngle maps a into (-π, π]
func wrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
