package entity

import "github.com/younwookim/stride/internal/domain/vecmath"

// Motion is the per-character frame state carried between controller updates.
// It is owned by exactly one controller and never shared.
type Motion struct {
	// Horizontal speed smoothing
	CurrentSpeed   float64
	AnimationBlend float64

	// Vertical state (negative = descending)
	VerticalVelocity float64
	IsFalling        bool

	// Timers, always within [0, timeout]
	FallTimer    float64
	JumpCooldown float64

	// Pending one-shot requests, drained once per update
	JumpRequested  bool
	EmoteRequested bool

	// Last valid horizontal camera basis
	Forward vecmath.Vec3
	Right   vecmath.Vec3

	// Facing rotation presented to the model
	Facing vecmath.Quat
}

// NewMotion returns motion state at rest.
// Timers start at their full timeout so the first jump waits out the cooldown.
func NewMotion(groundStick, fallTimeout, jumpTimeout float64) Motion {
	return Motion{
		VerticalVelocity: groundStick,
		FallTimer:        fallTimeout,
		JumpCooldown:     jumpTimeout,
		Forward:          vecmath.Vec3{Z: 1},
		Right:            vecmath.Vec3{X: 1},
		Facing:           vecmath.QuatIdentity(),
	}
}
