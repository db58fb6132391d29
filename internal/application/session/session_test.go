package session

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/younwookim/stride/internal/application/replay"
	"github.com/younwookim/stride/internal/application/state"
	"github.com/younwookim/stride/internal/application/system"
	"github.com/younwookim/stride/internal/domain/vecmath"
	"github.com/younwookim/stride/internal/infrastructure/config"
)

const frameDT = 1.0 / 60.0

func newTestSession(t *testing.T) *Session {
	t.Helper()
	loader := config.NewLoader("../../../cmd/stride/configs")
	cfg, levelCfg, err := loader.LoadAll("demo")
	require.NoError(t, err)

	s, err := New(cfg, levelCfg, nil)
	require.NoError(t, err)
	return s
}

func step(t *testing.T, s *Session, in system.InputState, frames int) {
	t.Helper()
	for i := 0; i < frames; i++ {
		_, err := s.Step(in, frameDT)
		require.NoError(t, err)
	}
}

func TestNew(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	loader := config.NewLoader("../../../cmd/stride/configs")
	cfg, levelCfg, err := loader.LoadAll("demo")
	require.NoError(t, err)

	s, err := New(cfg, levelCfg, zap.New(core))
	require.NoError(t, err)

	assert.Equal(t, s.Level().Spawn, s.Position())
	assert.True(t, s.Body().Grounded)
	assert.Equal(t, state.Idle, s.Controller().State())
	assert.Equal(t, cfg, s.Config())
	assert.Equal(t, 1, logs.FilterMessage("session started").Len())
}

func TestSession_WalkForward(t *testing.T) {
	s := newTestSession(t)

	step(t, s, system.InputState{Move: vecmath.Vec2{Y: 1}}, 45)

	assert.Greater(t, s.Position().Z, 3.0)
	assert.InDelta(t, 0.0, s.Position().X, 1e-6)
	assert.Equal(t, state.Walking, s.Last().State)
	assert.Equal(t, 45, s.Stats().Frames)
	assert.Greater(t, s.Stats().Distance, 3.0)
}

func TestSession_CameraTurnRotatesMovement(t *testing.T) {
	s := newTestSession(t)

	// 90 deg/s for one second
	step(t, s, system.InputState{Turn: 1}, 60)
	require.InDelta(t, math.Pi/2, s.Camera().Yaw, 1e-6)

	step(t, s, system.InputState{Move: vecmath.Vec2{Y: 1}}, 30)

	assert.Greater(t, s.Position().X, 1.0)
	assert.InDelta(t, 0.0, s.Position().Z, 1e-6)
}

func TestSession_JumpAndLand(t *testing.T) {
	s := newTestSession(t)
	step(t, s, system.InputState{}, 31)

	p, err := s.Step(system.InputState{JumpPressed: true}, frameDT)
	require.NoError(t, err)
	require.True(t, p.JumpTriggered)

	step(t, s, system.InputState{}, 120)

	stats := s.Stats()
	assert.Equal(t, 1, stats.Jumps)
	assert.Equal(t, 1, stats.Falls)
	assert.Equal(t, 1, stats.Landings)
	assert.True(t, s.Body().Grounded)
	assert.Equal(t, 0.0, s.Position().Y)
	assert.Equal(t, state.Idle, s.Last().State)
}

func TestSession_Emote(t *testing.T) {
	s := newTestSession(t)

	p, err := s.Step(system.InputState{EmotePressed: true}, frameDT)
	require.NoError(t, err)

	assert.True(t, p.EmoteTriggered)
	assert.Equal(t, 1, s.Stats().Emotes)
}

func TestSession_StepReplay(t *testing.T) {
	s := newTestSession(t)
	replayer := replay.NewReplayer(replay.CreateTestReplayData(30, math.Pi/2))

	for {
		in, ok := replayer.GetInput()
		if !ok {
			break
		}
		_, err := s.StepReplay(in, replayer.DT())
		require.NoError(t, err)
	}

	assert.Greater(t, s.Position().X, 1.0)
	assert.InDelta(t, 0.0, s.Position().Z, 1e-6)
	assert.Equal(t, 30, s.Stats().Frames)
}

func TestSession_Reconfigure(t *testing.T) {
	s := newTestSession(t)
	step(t, s, system.InputState{Move: vecmath.Vec2{Y: 1}}, 10)
	pos := s.Position()

	t.Run("rejects invalid tunables", func(t *testing.T) {
		bad := *s.Config()
		bad.Locomotion.Movement.WalkSpeed = -1
		before := s.Controller()

		err := s.Reconfigure(&bad)

		assert.ErrorIs(t, err, config.ErrInvalidConfig)
		assert.Same(t, before, s.Controller())
	})

	t.Run("rebuilds the controller in place", func(t *testing.T) {
		next := *s.Config()
		next.Locomotion.Movement.WalkSpeed = 2
		before := s.Controller()

		require.NoError(t, s.Reconfigure(&next))

		assert.NotSame(t, before, s.Controller())
		assert.Equal(t, 2.0, s.Controller().Config().Movement.WalkSpeed)
		assert.Equal(t, pos, s.Position())
		assert.Equal(t, 0.0, s.Controller().Motion().CurrentSpeed)
	})
}

func TestSession_NegativeDelta(t *testing.T) {
	s := newTestSession(t)

	_, err := s.Step(system.InputState{}, -1)

	assert.ErrorIs(t, err, system.ErrNegativeDelta)
	assert.Equal(t, 0, s.Stats().Frames)
}
