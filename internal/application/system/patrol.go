package system

import (
	"math"

	"github.com/younwookim/stride/internal/domain/entity"
)

// UpdatePatrol moves p toward its current waypoint and advances to the next
// one, wrapping around, once it is within arrival distance.
func UpdatePatrol(p *entity.Patroller, dt float64) {
	target, ok := p.Target()
	if !ok || dt <= 0 {
		return
	}

	toTarget := target.Sub(p.Position)
	dist := toTarget.Length()
	step := math.Min(p.Speed*dt, dist)
	p.Position = p.Position.Add(toTarget.Normalize().Scale(step))

	if p.Position.Distance(target) < entity.PatrolArrivalThreshold {
		p.Index = (p.Index + 1) % len(p.Waypoints)
	}
}

// UpdatePatrols advances every patroller in the level
func UpdatePatrols(level *entity.Level, dt float64) {
	for _, p := range level.Patrols {
		UpdatePatrol(p, dt)
	}
}
