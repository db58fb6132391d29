package system

import "github.com/younwookim/stride/internal/domain/entity"

// JumpResult describes what happened to a frame's jump request
type JumpResult int

const (
	JumpNotRequested JumpResult = iota
	JumpGranted
	JumpDroppedAirborne
	JumpDroppedCooldown
)

// String returns the string representation of the result
func (r JumpResult) String() string {
	switch r {
	case JumpNotRequested:
		return "NotRequested"
	case JumpGranted:
		return "Granted"
	case JumpDroppedAirborne:
		return "DroppedAirborne"
	case JumpDroppedCooldown:
		return "DroppedCooldown"
	default:
		return "Unknown"
	}
}

// JumpArbiter grants jumps from the pending request slot and runs the cooldown
type JumpArbiter struct {
	timeout float64
}

// NewJumpArbiter creates a new jump arbiter.
// timeout is the grounded time required between two jumps.
func NewJumpArbiter(timeout float64) *JumpArbiter {
	return &JumpArbiter{timeout: timeout}
}

// Arbitrate consumes the pending request. Requests that cannot be honored this
// frame are dropped, never carried over. The cooldown only drains on the ground.
func (a *JumpArbiter) Arbitrate(m *entity.Motion, grounded bool, dt float64) JumpResult {
	requested := m.JumpRequested
	m.JumpRequested = false

	if grounded && requested && m.JumpCooldown <= 0 {
		m.JumpCooldown = a.timeout
		return JumpGranted
	}

	if grounded && m.JumpCooldown > 0 {
		m.JumpCooldown -= dt
		if m.JumpCooldown < 0 {
			m.JumpCooldown = 0
		}
	}

	switch {
	case !requested:
		return JumpNotRequested
	case !grounded:
		return JumpDroppedAirborne
	default:
		return JumpDroppedCooldown
	}
}
