package system

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/stride/internal/application/state"
	"github.com/younwookim/stride/internal/domain/entity"
	"github.com/younwookim/stride/internal/domain/vecmath"
	"github.com/younwookim/stride/internal/infrastructure/config"
)

var (
	// ErrNegativeDelta is returned by Update for a negative frame time.
	ErrNegativeDelta = errors.New("negative frame time")
	// ErrNilCollaborator is returned by NewController when a dependency is missing.
	ErrNilCollaborator = errors.New("nil collaborator")
)

// InputSource supplies one frame of player intent.
type InputSource interface {
	// Movement returns the movement axes, each in [-1, 1] with magnitude <= 1.
	Movement() vecmath.Vec2
	// Sprint reports whether sprint is held.
	Sprint() bool
	// JumpEdge reports a jump press. It returns true once per press.
	JumpEdge() bool
}

// EmoteSource is implemented by input sources that also deliver emote presses.
type EmoteSource interface {
	EmoteEdge() bool
}

// OrientationSource supplies the camera basis movement is relative to.
type OrientationSource interface {
	Forward() vecmath.Vec3
	Right() vecmath.Vec3
}

// Mover performs collision-aware movement.
type Mover interface {
	// Move applies this frame's displacement (velocity * dt).
	Move(displacement vecmath.Vec3, dt float64)
	// Grounded reports contact with a supporting surface after the last move.
	Grounded() bool
	// Velocity is the velocity actually achieved by the last move.
	Velocity() vecmath.Vec3
}

// PresentationSink receives the outputs of every update.
type PresentationSink interface {
	Present(p Presentation)
}

// Presentation is one frame of locomotion outputs for animation and rotation.
type Presentation struct {
	SpeedBlend     float64
	IsFalling      bool
	JumpTriggered  bool // true only on the frame the jump impulse fired
	EmoteTriggered bool // true only on the frame the emote was consumed
	Facing         vecmath.Quat
	State          state.Locomotion
	Grounded       bool
	Displacement   vecmath.Vec3
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for jump, landing and state change events.
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithPresentationSink sets the sink every update is pushed to.
func WithPresentationSink(sink PresentationSink) Option {
	return func(c *Controller) {
		c.sink = sink
	}
}

// Controller is the per-character locomotion orchestrator.
// It is not safe for concurrent use; call Update once per simulation tick.
type Controller struct {
	config      config.LocomotionConfig
	input       InputSource
	orientation OrientationSource
	mover       Mover
	sink        PresentationSink
	log         *zap.Logger

	speed    *SpeedBlender
	jump     *JumpArbiter
	vertical *VerticalIntegrator

	motion      entity.Motion
	state       state.Locomotion
	canMove     bool
	wasGrounded bool
}

// NewController validates cfg and creates a controller at rest.
func NewController(cfg config.LocomotionConfig, input InputSource, orientation OrientationSource, mover Mover, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if input == nil || orientation == nil || mover == nil {
		return nil, ErrNilCollaborator
	}

	c := &Controller{
		config:      cfg,
		input:       input,
		orientation: orientation,
		mover:       mover,
		log:         zap.NewNop(),
		speed:       NewSpeedBlender(cfg.Movement),
		jump:        NewJumpArbiter(cfg.Jump.Timeout),
		vertical:    NewVerticalIntegrator(cfg.Gravity, cfg.Jump.Force),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Reset()
	return c, nil
}

// Reset returns the controller to its rest state, as on activation.
func (c *Controller) Reset() {
	c.motion = entity.NewMotion(c.config.Gravity.GroundStick, c.config.Gravity.FallTimeout, c.config.Jump.Timeout)
	c.state = state.Idle
	c.canMove = true
	c.wasGrounded = true
}

// RequestJump sets the pending jump slot. Repeated requests before the next
// update collapse into one.
func (c *Controller) RequestJump() {
	c.motion.JumpRequested = true
}

// RequestEmote sets the pending emote slot.
func (c *Controller) RequestEmote() {
	c.motion.EmoteRequested = true
}

// SetCanMove enables or disables horizontal input. Gravity and jumping still run.
func (c *Controller) SetCanMove(canMove bool) {
	c.canMove = canMove
}

// CanMove reports whether horizontal input is applied.
func (c *Controller) CanMove() bool {
	return c.canMove
}

// Motion returns a copy of the current frame state.
func (c *Controller) Motion() entity.Motion {
	return c.motion
}

// State returns the locomotion state classified by the last update.
func (c *Controller) State() state.Locomotion {
	return c.state
}

// Config returns the tunables the controller was built with.
func (c *Controller) Config() config.LocomotionConfig {
	return c.config
}

// Update runs one frame: project, blend speed, arbitrate jump, integrate,
// move, classify, rotate and present.
func (c *Controller) Update(dt float64) (Presentation, error) {
	if dt < 0 {
		return Presentation{}, fmt.Errorf("%w: %v", ErrNegativeDelta, dt)
	}

	if c.input.JumpEdge() {
		c.motion.JumpRequested = true
	}
	if es, ok := c.input.(EmoteSource); ok && es.EmoteEdge() {
		c.motion.EmoteRequested = true
	}

	// Contact from the previous move
	grounded := c.mover.Grounded()

	move := c.input.Movement()
	if !c.canMove {
		move = vecmath.Vec2{}
	}

	dir, forward, right := ProjectDirection(c.orientation.Forward(), c.orientation.Right(), move, c.motion.Forward, c.motion.Right)
	c.motion.Forward, c.motion.Right = forward, right

	observed := c.mover.Velocity().HorizontalLength()
	horizontal := c.speed.Update(&c.motion, dir, move, c.input.Sprint(), observed, dt)

	result := c.jump.Arbitrate(&c.motion, grounded, dt)
	c.logJump(result)

	c.vertical.Step(&c.motion, grounded, result == JumpGranted, dt)
	if grounded && !c.wasGrounded {
		c.log.Debug("landed")
	}
	c.wasGrounded = grounded

	velocity := horizontal.Add(vecmath.Vec3{Y: c.motion.VerticalVelocity})
	displacement := velocity.Scale(dt)
	c.mover.Move(displacement, dt)

	next := state.Classify(c.motion.CurrentSpeed, c.motion.IsFalling, c.config.Movement.WalkSpeed, c.config.Movement.RunSpeed)
	if next != c.state {
		c.log.Debug("locomotion state changed",
			zap.Stringer("from", c.state),
			zap.Stringer("to", next),
			zap.Float64("speed", c.motion.CurrentSpeed))
		c.state = next
	}

	if !dir.IsZero() {
		target := vecmath.LookRotation(dir)
		c.motion.Facing = c.motion.Facing.Slerp(target, c.config.Movement.RotationSpeed*dt)
	}

	emote := c.motion.EmoteRequested
	c.motion.EmoteRequested = false

	out := Presentation{
		SpeedBlend:     c.motion.AnimationBlend,
		IsFalling:      c.motion.IsFalling,
		JumpTriggered:  result == JumpGranted,
		EmoteTriggered: emote,
		Facing:         c.motion.Facing,
		State:          c.state,
		Grounded:       c.mover.Grounded(),
		Displacement:   displacement,
	}
	if c.sink != nil {
		c.sink.Present(out)
	}
	return out, nil
}

func (c *Controller) logJump(result JumpResult) {
	switch result {
	case JumpGranted:
		c.log.Debug("jump", zap.Float64("force", c.config.Jump.Force))
	case JumpDroppedAirborne, JumpDroppedCooldown:
		c.log.Debug("jump request dropped",
			zap.Stringer("reason", result),
			zap.Float64("cooldown", c.motion.JumpCooldown))
	}
}
