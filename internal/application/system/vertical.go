package system

import (
	"github.com/younwookim/stride/internal/domain/entity"
	"github.com/younwookim/stride/internal/infrastructure/config"
)

// fallEpsilon absorbs float drift when ungrounded time sums to exactly fallTimeout
const fallEpsilon = 1e-9

// VerticalIntegrator handles gravity, ground stick and the coyote fall timer
type VerticalIntegrator struct {
	config    config.GravityConfig
	jumpForce float64
}

// NewVerticalIntegrator creates a new vertical integrator
func NewVerticalIntegrator(cfg config.GravityConfig, jumpForce float64) *VerticalIntegrator {
	return &VerticalIntegrator{
		config:    cfg,
		jumpForce: jumpForce,
	}
}

// Step updates vertical velocity and the falling flag.
// grounded is the mover's contact from the previous move; jumped is this
// frame's arbitration result and overrides whatever gravity produced.
func (v *VerticalIntegrator) Step(m *entity.Motion, grounded, jumped bool, dt float64) {
	if grounded {
		// Keep pressed onto slopes and steps instead of hopping off them
		m.VerticalVelocity = v.config.GroundStick
		m.FallTimer = v.config.FallTimeout
		m.IsFalling = false
	} else {
		// Coyote time: brief ground loss is not yet a fall
		m.FallTimer -= dt
		if m.FallTimer < -fallEpsilon {
			m.IsFalling = true
		}
		if m.FallTimer < 0 {
			m.FallTimer = 0
		}
		m.VerticalVelocity += v.config.Gravity * v.config.Mass * dt
	}

	if jumped {
		m.VerticalVelocity = v.jumpForce
	}
}
