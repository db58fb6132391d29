package entity

import "github.com/younwookim/stride/internal/domain/vecmath"

// PatrolArrivalThreshold is the distance at which a waypoint counts as reached.
const PatrolArrivalThreshold = 0.1

// Patroller walks a closed loop of waypoints at constant speed.
type Patroller struct {
	Name      string
	Waypoints []vecmath.Vec3
	Speed     float64

	Position vecmath.Vec3
	Index    int // waypoint currently headed for
}

// NewPatroller creates a patroller placed on its first waypoint.
func NewPatroller(name string, waypoints []vecmath.Vec3, speed float64) *Patroller {
	p := &Patroller{
		Name:      name,
		Waypoints: waypoints,
		Speed:     speed,
	}
	if len(waypoints) > 0 {
		p.Position = waypoints[0]
	}
	return p
}

// Target returns the waypoint currently headed for.
func (p *Patroller) Target() (vecmath.Vec3, bool) {
	if len(p.Waypoints) == 0 {
		return vecmath.Vec3{}, false
	}
	return p.Waypoints[p.Index], true
}
