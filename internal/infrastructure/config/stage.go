package config

// LevelConfig is the root config for levels/<name>.yaml
type LevelConfig struct {
	ID         string           `yaml:"id"`
	Name       string           `yaml:"name"`
	Bounds     RectConfig       `yaml:"bounds"`
	Spawn      PositionConfig   `yaml:"spawn"`
	StepHeight float64          `yaml:"stepHeight"`
	Walls      []RectConfig     `yaml:"walls"`
	Platforms  []PlatformConfig `yaml:"platforms"`
	Patrols    []PatrolConfig   `yaml:"patrols"`
}

// RectConfig is a footprint on the XZ plane: corner (X, Z), width W along X, depth D along Z.
type RectConfig struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
	W float64 `yaml:"w"`
	D float64 `yaml:"d"`
}

type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type PlatformConfig struct {
	Rect   RectConfig `yaml:"rect"`
	Height float64    `yaml:"height"`
}

type PatrolConfig struct {
	Name      string           `yaml:"name"`
	Speed     float64          `yaml:"speed"`
	Waypoints []PositionConfig `yaml:"waypoints"`
}
