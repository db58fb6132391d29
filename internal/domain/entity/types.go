package entity

import "github.com/younwookim/stride/internal/domain/vecmath"

// Box is an axis-aligned footprint on the XZ plane.
type Box struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
}

// Contains reports whether the point (x, z) lies inside the box.
func (b Box) Contains(x, z float64) bool {
	return x >= b.MinX && x <= b.MaxX && z >= b.MinZ && z <= b.MaxZ
}

// Platform is a raised floor whose top sits at Height.
type Platform struct {
	Box
	Height float64
}

// Level holds static geometry for one play area.
type Level struct {
	Name       string
	Bounds     Box
	Spawn      vecmath.Vec3
	StepHeight float64 // max rise climbed without jumping
	Walls      []Box
	Platforms  []Platform
	Patrols    []*Patroller
}

// GroundHeight returns the highest floor under (x, z). The base floor is 0.
func (l *Level) GroundHeight(x, z float64) float64 {
	h := 0.0
	for _, p := range l.Platforms {
		if p.Contains(x, z) && p.Height > h {
			h = p.Height
		}
	}
	return h
}
