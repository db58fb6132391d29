package system

import (
	"github.com/younwookim/stride/internal/domain/entity"
	"github.com/younwookim/stride/internal/domain/vecmath"
	"github.com/younwookim/stride/internal/infrastructure/config"
)

// LoadLevel converts a LevelConfig into a Level entity
func LoadLevel(cfg *config.LevelConfig) *entity.Level {
	level := &entity.Level{
		Name:       cfg.Name,
		Bounds:     rectToBox(cfg.Bounds),
		Spawn:      positionToVec(cfg.Spawn),
		StepHeight: cfg.StepHeight,
	}
	if level.Name == "" {
		level.Name = cfg.ID
	}

	for _, w := range cfg.Walls {
		level.Walls = append(level.Walls, rectToBox(w))
	}
	for _, p := range cfg.Platforms {
		level.Platforms = append(level.Platforms, entity.Platform{
			Box:    rectToBox(p.Rect),
			Height: p.Height,
		})
	}
	for _, p := range cfg.Patrols {
		waypoints := make([]vecmath.Vec3, 0, len(p.Waypoints))
		for _, wp := range p.Waypoints {
			waypoints = append(waypoints, positionToVec(wp))
		}
		level.Patrols = append(level.Patrols, entity.NewPatroller(p.Name, waypoints, p.Speed))
	}

	return level
}

func rectToBox(r config.RectConfig) entity.Box {
	return entity.Box{
		MinX: r.X,
		MinZ: r.Z,
		MaxX: r.X + r.W,
		MaxZ: r.Z + r.D,
	}
}

func positionToVec(p config.PositionConfig) vecmath.Vec3 {
	return vecmath.Vec3{X: p.X, Y: p.Y, Z: p.Z}
}
