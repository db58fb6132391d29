package system

import (
	"math"

	"github.com/younwookim/stride/internal/domain/entity"
	"github.com/younwookim/stride/internal/domain/vecmath"
	"github.com/younwookim/stride/internal/infrastructure/config"
)

// blendFloor is the animation blend below which the blend snaps to zero.
const blendFloor = 0.01

// SpeedBlender smooths horizontal speed toward walk/run targets
type SpeedBlender struct {
	config config.MovementConfig
}

// NewSpeedBlender creates a new speed blender
func NewSpeedBlender(cfg config.MovementConfig) *SpeedBlender {
	return &SpeedBlender{config: cfg}
}

// Target returns the speed the character should settle at for this input
func (b *SpeedBlender) Target(move vecmath.Vec2, sprint bool) float64 {
	if move.IsZero() {
		return 0
	}
	if sprint {
		return b.config.RunSpeed
	}
	return b.config.WalkSpeed
}

// Update advances the speed state and returns the horizontal velocity for this frame.
// observed is the horizontal speed the mover actually achieved last frame.
func (b *SpeedBlender) Update(m *entity.Motion, dir vecmath.Vec3, move vecmath.Vec2, sprint bool, observed, dt float64) vecmath.Vec3 {
	target := b.Target(move, sprint)
	t := b.config.SpeedChangeRate * dt

	switch {
	case target == 0:
		// Stopped, also covers walkSpeed == runSpeed == 0
		m.CurrentSpeed = 0
	case math.Abs(observed-target) > b.config.SpeedOffset:
		magnitude := math.Min(move.Length(), 1)
		speed := vecmath.Lerp(observed, target*magnitude, t)
		m.CurrentSpeed = roundMillis(speed)
	default:
		m.CurrentSpeed = target
	}

	m.AnimationBlend = vecmath.Lerp(m.AnimationBlend, target, t)
	if m.AnimationBlend < blendFloor {
		m.AnimationBlend = 0
	}

	return dir.Scale(m.CurrentSpeed)
}

// roundMillis rounds to 3 decimal places
func roundMillis(v float64) float64 {
	return math.Round(v*1000) / 1000
}
