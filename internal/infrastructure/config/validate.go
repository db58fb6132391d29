package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects tunables that would make the simulation misbehave.
func (c *LocomotionConfig) Validate() error {
	nonNegative := []struct {
		name  string
		value float64
	}{
		{"movement.walkSpeed", c.Movement.WalkSpeed},
		{"movement.runSpeed", c.Movement.RunSpeed},
		{"movement.rotationSpeed", c.Movement.RotationSpeed},
		{"movement.speedChangeRate", c.Movement.SpeedChangeRate},
		{"movement.speedOffset", c.Movement.SpeedOffset},
		{"gravity.mass", c.Gravity.Mass},
		{"gravity.fallTimeout", c.Gravity.FallTimeout},
		{"jump.force", c.Jump.Force},
		{"jump.timeout", c.Jump.Timeout},
	}
	for _, f := range nonNegative {
		if !isFinite(f.value) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidConfig, f.name, f.value)
		}
		if f.value < 0 {
			return fmt.Errorf("%w: %s must be >= 0, got %v", ErrInvalidConfig, f.name, f.value)
		}
	}

	if !isFinite(c.Gravity.Gravity) || !isFinite(c.Gravity.GroundStick) {
		return fmt.Errorf("%w: gravity.gravity and gravity.groundStick must be finite, got %v and %v",
			ErrInvalidConfig, c.Gravity.Gravity, c.Gravity.GroundStick)
	}
	if c.Gravity.Gravity > 0 {
		return fmt.Errorf("%w: gravity.gravity must be <= 0, got %v", ErrInvalidConfig, c.Gravity.Gravity)
	}
	if c.Gravity.GroundStick > 0 {
		return fmt.Errorf("%w: gravity.groundStick must be <= 0, got %v", ErrInvalidConfig, c.Gravity.GroundStick)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate checks level geometry for negative sizes and speeds.
func (c *LevelConfig) Validate() error {
	if c.Bounds.W <= 0 || c.Bounds.D <= 0 {
		return fmt.Errorf("%w: level %q has empty bounds", ErrInvalidConfig, c.ID)
	}
	if c.StepHeight < 0 {
		return fmt.Errorf("%w: level %q stepHeight must be >= 0", ErrInvalidConfig, c.ID)
	}
	for i, w := range c.Walls {
		if w.W < 0 || w.D < 0 {
			return fmt.Errorf("%w: level %q wall %d has negative size", ErrInvalidConfig, c.ID, i)
		}
	}
	for i, p := range c.Platforms {
		if p.Rect.W < 0 || p.Rect.D < 0 || p.Height < 0 {
			return fmt.Errorf("%w: level %q platform %d has negative size", ErrInvalidConfig, c.ID, i)
		}
	}
	for _, p := range c.Patrols {
		if p.Speed < 0 {
			return fmt.Errorf("%w: patrol %q speed must be >= 0", ErrInvalidConfig, p.Name)
		}
	}
	return nil
}
