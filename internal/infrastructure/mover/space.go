// Package mover provides a collision-aware Mover backed by a chipmunk space.
//
// The chipmunk space is the level's XZ plane (space X = world X, space Y =
// world Z). Walls, level bounds and patrollers are collision shapes. Raised
// platforms block the character while its feet are below top - stepHeight
// and are ignored once it can step or land on them. Height is resolved
// outside the space against the level's ground query.
package mover

import (
	"github.com/jakecoffman/cp"

	"github.com/younwookim/stride/internal/domain/entity"
	"github.com/younwookim/stride/internal/domain/vecmath"
)

const (
	// maxResolveIterations bounds the push-out passes per move
	maxResolveIterations = 4
	boundsThickness      = 0.25
)

// SpaceMover moves a character body through a level.
type SpaceMover struct {
	level *entity.Level
	space *cp.Space

	// Query shape for the character; its body is kept out of the space
	body  *cp.Body
	shape *cp.Shape

	platformTops map[*cp.Shape]float64
	patrols      map[*entity.Patroller]*cp.Body

	state *entity.Body
}

// NewSpaceMover builds the collision space for level and places a character
// of the given radius at the level spawn.
func NewSpaceMover(level *entity.Level, radius float64) *SpaceMover {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})

	m := &SpaceMover{
		level:        level,
		space:        space,
		platformTops: make(map[*cp.Shape]float64),
		patrols:      make(map[*entity.Patroller]*cp.Body),
		state:        entity.NewBody(level.Spawn, radius),
	}

	m.addBounds()
	for _, w := range level.Walls {
		m.addStaticBox(w)
	}
	for _, p := range level.Platforms {
		shape := m.addStaticBox(p.Box)
		m.platformTops[shape] = p.Height
	}
	for _, p := range level.Patrols {
		m.addPatroller(p, radius)
	}

	m.body = cp.NewKinematicBody()
	m.shape = cp.NewCircle(m.body, radius, cp.Vector{})

	m.Teleport(level.Spawn)
	return m
}

func (m *SpaceMover) addBounds() {
	b := m.level.Bounds
	corners := []cp.Vector{
		{X: b.MinX, Y: b.MinZ},
		{X: b.MaxX, Y: b.MinZ},
		{X: b.MaxX, Y: b.MaxZ},
		{X: b.MinX, Y: b.MaxZ},
	}
	for i := range corners {
		a, c := corners[i], corners[(i+1)%len(corners)]
		shape := m.space.AddShape(cp.NewSegment(m.space.StaticBody, a, c, boundsThickness))
		shape.SetFriction(0)
		shape.SetElasticity(0)
	}
}

func (m *SpaceMover) addStaticBox(box entity.Box) *cp.Shape {
	bb := cp.BB{L: box.MinX, B: box.MinZ, R: box.MaxX, T: box.MaxZ}
	shape := m.space.AddShape(cp.NewBox2(m.space.StaticBody, bb, 0))
	shape.SetFriction(0)
	shape.SetElasticity(0)
	return shape
}

func (m *SpaceMover) addPatroller(p *entity.Patroller, radius float64) {
	body := m.space.AddBody(cp.NewKinematicBody())
	body.SetPosition(toSpace(p.Position))
	shape := m.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetFriction(0)
	shape.SetElasticity(0)
	m.patrols[p] = body
}

// Move applies displacement over dt. Horizontal motion slides along
// obstacles; vertical motion lands on the highest floor under the new position.
func (m *SpaceMover) Move(displacement vecmath.Vec3, dt float64) {
	if dt <= 0 {
		return
	}
	start := m.state.Position

	m.syncPatrols(dt)

	target := toSpace(start).Add(cp.Vector{X: displacement.X, Y: displacement.Z})
	pos := m.resolve(target, start.Y)

	next := vecmath.Vec3{X: pos.X, Y: start.Y + displacement.Y, Z: pos.Y}
	ground := m.level.GroundHeight(next.X, next.Z)
	m.state.Grounded = next.Y <= ground
	if m.state.Grounded {
		next.Y = ground
	}

	m.state.Velocity = next.Sub(start).Scale(1 / dt)
	m.state.Position = next
}

// resolve pushes the character circle at pos out of every blocking shape.
func (m *SpaceMover) resolve(pos cp.Vector, feet float64) cp.Vector {
	for i := 0; i < maxResolveIterations; i++ {
		m.body.SetPosition(pos)

		var push cp.Vector
		m.space.ShapeQuery(m.shape, func(other *cp.Shape, points *cp.ContactPointSet) {
			if m.walkable(other, feet) {
				return
			}
			deepest := 0.0
			for j := 0; j < points.Count; j++ {
				if d := points.Points[j].Distance; d < deepest {
					deepest = d
				}
			}
			// Normal points from the character into other
			push = push.Add(points.Normal.Mult(deepest))
		})

		if push.Length() == 0 {
			break
		}
		pos = pos.Add(push)
	}
	return pos
}

// walkable reports whether a platform shape can be stepped onto from feet height.
func (m *SpaceMover) walkable(shape *cp.Shape, feet float64) bool {
	top, ok := m.platformTops[shape]
	return ok && feet >= top-m.level.StepHeight
}

// syncPatrols moves patroller bodies to their entity positions and refreshes
// the space's index for them.
func (m *SpaceMover) syncPatrols(dt float64) {
	if len(m.patrols) == 0 {
		return
	}
	for p, body := range m.patrols {
		body.SetPosition(toSpace(p.Position))
	}
	m.space.Step(dt)
}

// Grounded reports whether the last move ended on a floor.
func (m *SpaceMover) Grounded() bool {
	return m.state.Grounded
}

// Velocity returns the velocity achieved by the last move.
func (m *SpaceMover) Velocity() vecmath.Vec3 {
	return m.state.Velocity
}

// Position returns the character's feet position.
func (m *SpaceMover) Position() vecmath.Vec3 {
	return m.state.Position
}

// Body returns a snapshot of the character body.
func (m *SpaceMover) Body() entity.Body {
	return *m.state
}

// Teleport places the character at pos, snapping it onto the floor when
// below it, and clears its velocity.
func (m *SpaceMover) Teleport(pos vecmath.Vec3) {
	m.body.SetPosition(toSpace(pos))
	ground := m.level.GroundHeight(pos.X, pos.Z)
	m.state.Grounded = pos.Y <= ground
	if m.state.Grounded {
		pos.Y = ground
	}
	m.state.Position = pos
	m.state.Velocity = vecmath.Vec3{}
}

func toSpace(v vecmath.Vec3) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Z}
}
