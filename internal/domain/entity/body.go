package entity

import "github.com/younwookim/stride/internal/domain/vecmath"

// Body is the physical capsule a mover drives around the level.
// Position is the point at the character's feet.
type Body struct {
	Position vecmath.Vec3
	Velocity vecmath.Vec3 // actual displacement / dt of the last move
	Radius   float64
	Grounded bool
}

// NewBody creates a body standing at pos.
func NewBody(pos vecmath.Vec3, radius float64) *Body {
	return &Body{
		Position: pos,
		Radius:   radius,
	}
}
