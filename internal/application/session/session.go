// Package session runs one character through a level: input latching,
// camera, patrols, locomotion and the physical mover, frame by frame.
// The playing scene and the headless replay runner both drive it.
package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/stride/internal/application/replay"
	"github.com/younwookim/stride/internal/application/state"
	"github.com/younwookim/stride/internal/application/system"
	"github.com/younwookim/stride/internal/domain/entity"
	"github.com/younwookim/stride/internal/domain/vecmath"
	"github.com/younwookim/stride/internal/infrastructure/config"
	"github.com/younwookim/stride/internal/infrastructure/mover"
)

// Stats counts locomotion events over a session
type Stats struct {
	Frames   int
	Jumps    int
	Emotes   int
	Falls    int // transitions into Falling
	Landings int
	Distance float64 // horizontal distance travelled
}

// Session owns the per-character simulation
type Session struct {
	config *config.GameConfig
	level  *entity.Level
	log    *zap.Logger

	input  *system.LatchedInput
	camera *system.OrbitCamera
	mover  *mover.SpaceMover
	ctrl   *system.Controller

	last  system.Presentation
	stats Stats
}

// New builds a session for levelCfg, placing the character at the spawn
func New(cfg *config.GameConfig, levelCfg *config.LevelConfig, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	level := system.LoadLevel(levelCfg)

	s := &Session{
		level:  level,
		log:    log,
		input:  system.NewLatchedInput(),
		mover:  mover.NewSpaceMover(level, cfg.Character.Radius),
		camera: system.NewOrbitCamera(cfg.Camera),
	}
	if err := s.Reconfigure(cfg); err != nil {
		return nil, err
	}

	log.Info("session started",
		zap.String("level", level.Name),
		zap.Int("walls", len(level.Walls)),
		zap.Int("platforms", len(level.Platforms)),
		zap.Int("patrols", len(level.Patrols)))
	return s, nil
}

// Reconfigure replaces the controller with one built from cfg.
// The character keeps its position; its locomotion state restarts at rest.
func (s *Session) Reconfigure(cfg *config.GameConfig) error {
	ctrl, err := system.NewController(cfg.Locomotion, s.input, s.camera, s.mover,
		system.WithLogger(s.log.Named("locomotion")))
	if err != nil {
		return fmt.Errorf("failed to build controller: %w", err)
	}
	s.config = cfg
	s.ctrl = ctrl
	s.camera.SetTurnSpeed(cfg.Camera.TurnSpeed)
	s.input.Clear()
	return nil
}

// Step advances one frame from live input
func (s *Session) Step(in system.InputState, dt float64) (system.Presentation, error) {
	s.camera.Turn(in.Turn, dt)
	return s.advance(in, dt)
}

// StepReplay advances one frame from recorded input, camera included
func (s *Session) StepReplay(in replay.ReplayInput, dt float64) (system.Presentation, error) {
	s.camera.SetAngles(in.Yaw, in.Pitch)
	return s.advance(system.InputState{
		Move:         in.Move,
		Sprint:       in.Sprint,
		JumpPressed:  in.JumpPressed,
		EmotePressed: in.EmotePressed,
	}, dt)
}

func (s *Session) advance(in system.InputState, dt float64) (system.Presentation, error) {
	s.input.Set(in)
	system.UpdatePatrols(s.level, dt)

	start := s.mover.Position()
	wasFalling := s.last.State == state.Falling
	wasGrounded := s.mover.Grounded()

	p, err := s.ctrl.Update(dt)
	if err != nil {
		return system.Presentation{}, err
	}

	s.stats.Frames++
	s.stats.Distance += s.mover.Position().Sub(start).HorizontalLength()
	if p.JumpTriggered {
		s.stats.Jumps++
	}
	if p.EmoteTriggered {
		s.stats.Emotes++
		s.log.Info("emote")
	}
	if p.State == state.Falling && !wasFalling {
		s.stats.Falls++
	}
	if p.Grounded && !wasGrounded {
		s.stats.Landings++
	}
	s.last = p
	return p, nil
}

// Level returns the level being played
func (s *Session) Level() *entity.Level {
	return s.level
}

// Config returns the active game config
func (s *Session) Config() *config.GameConfig {
	return s.config
}

// Camera returns the orbit camera
func (s *Session) Camera() *system.OrbitCamera {
	return s.camera
}

// Controller returns the active locomotion controller
func (s *Session) Controller() *system.Controller {
	return s.ctrl
}

// Body returns a snapshot of the character body
func (s *Session) Body() entity.Body {
	return s.mover.Body()
}

// Position returns the character's feet position
func (s *Session) Position() vecmath.Vec3 {
	return s.mover.Position()
}

// Last returns the presentation of the most recent frame
func (s *Session) Last() system.Presentation {
	return s.last
}

// Stats returns the event counters so far
func (s *Session) Stats() Stats {
	return s.stats
}
