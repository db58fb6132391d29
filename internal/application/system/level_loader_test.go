package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/stride/internal/domain/entity"
	"github.com/younwookim/stride/internal/domain/vecmath"
	"github.com/younwookim/stride/internal/infrastructure/config"
)

func TestLoadLevel(t *testing.T) {
	t.Run("loads bounds and spawn", func(t *testing.T) {
		cfg := &config.LevelConfig{
			ID:         "arena",
			Name:       "Arena",
			Bounds:     config.RectConfig{X: -10, Z: -5, W: 20, D: 10},
			Spawn:      config.PositionConfig{X: 1, Y: 0, Z: 2},
			StepHeight: 0.3,
		}

		level := LoadLevel(cfg)

		require.NotNil(t, level)
		assert.Equal(t, "Arena", level.Name)
		assert.Equal(t, entity.Box{MinX: -10, MinZ: -5, MaxX: 10, MaxZ: 5}, level.Bounds)
		assert.Equal(t, vecmath.Vec3{X: 1, Z: 2}, level.Spawn)
		assert.Equal(t, 0.3, level.StepHeight)
	})

	t.Run("falls back to id for name", func(t *testing.T) {
		level := LoadLevel(&config.LevelConfig{ID: "demo"})

		assert.Equal(t, "demo", level.Name)
	})

	t.Run("maps walls and platforms", func(t *testing.T) {
		cfg := &config.LevelConfig{
			Walls: []config.RectConfig{{X: 2, Z: 2, W: 1, D: 4}},
			Platforms: []config.PlatformConfig{
				{Rect: config.RectConfig{X: 0, Z: 0, W: 2, D: 2}, Height: 0.3},
			},
		}

		level := LoadLevel(cfg)

		require.Len(t, level.Walls, 1)
		assert.Equal(t, entity.Box{MinX: 2, MinZ: 2, MaxX: 3, MaxZ: 6}, level.Walls[0])
		require.Len(t, level.Platforms, 1)
		assert.Equal(t, 0.3, level.Platforms[0].Height)
		assert.Equal(t, 0.3, level.GroundHeight(1, 1))
	})

	t.Run("builds patrollers on their first waypoint", func(t *testing.T) {
		cfg := &config.LevelConfig{
			Patrols: []config.PatrolConfig{{
				Name:  "sentry",
				Speed: 2,
				Waypoints: []config.PositionConfig{
					{X: 5, Z: 5},
					{X: -5, Z: 5},
				},
			}},
		}

		level := LoadLevel(cfg)

		require.Len(t, level.Patrols, 1)
		p := level.Patrols[0]
		assert.Equal(t, "sentry", p.Name)
		assert.Equal(t, 2.0, p.Speed)
		assert.Equal(t, vecmath.Vec3{X: 5, Z: 5}, p.Position)
		assert.Len(t, p.Waypoints, 2)
	})
}

func TestLoadLevel_DemoFile(t *testing.T) {
	loader := config.NewLoader("../../../cmd/stride/configs")
	cfg, err := loader.LoadLevel("demo")
	require.NoError(t, err)

	level := LoadLevel(cfg)

	assert.NotEmpty(t, level.Walls)
	assert.NotEmpty(t, level.Platforms)
	assert.NotEmpty(t, level.Patrols)
	assert.True(t, level.Bounds.Contains(level.Spawn.X, level.Spawn.Z))
}
