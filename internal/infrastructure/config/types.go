package config

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display    DisplayConfig    `yaml:"display"`
	Locomotion LocomotionConfig `yaml:"locomotion"`
	Character  CharacterConfig  `yaml:"character"`
	Camera     CameraConfig     `yaml:"camera"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type DisplayConfig struct {
	ScreenWidth   int     `yaml:"screenWidth"`
	ScreenHeight  int     `yaml:"screenHeight"`
	Scale         int     `yaml:"scale"`
	Framerate     int     `yaml:"framerate"`
	PixelsPerUnit float64 `yaml:"pixelsPerUnit"`
}

// LocomotionConfig holds the controller tunables.
// They are fixed once a controller is built from them.
type LocomotionConfig struct {
	Movement MovementConfig `yaml:"movement"`
	Gravity  GravityConfig  `yaml:"gravity"`
	Jump     JumpConfig     `yaml:"jump"`
}

type MovementConfig struct {
	WalkSpeed       float64 `yaml:"walkSpeed"`
	RunSpeed        float64 `yaml:"runSpeed"`
	RotationSpeed   float64 `yaml:"rotationSpeed"`
	SpeedChangeRate float64 `yaml:"speedChangeRate"`
	SpeedOffset     float64 `yaml:"speedOffset"` // band within which speed snaps to target
}

type GravityConfig struct {
	Mass        float64 `yaml:"mass"`
	Gravity     float64 `yaml:"gravity"`     // negative, units/s^2
	GroundStick float64 `yaml:"groundStick"` // vertical velocity held while grounded
	FallTimeout float64 `yaml:"fallTimeout"` // coyote time before falling is reported
}

type JumpConfig struct {
	Force   float64 `yaml:"force"`
	Timeout float64 `yaml:"timeout"` // grounded time required between jumps
}

type CharacterConfig struct {
	Radius float64 `yaml:"radius"`
}

// CameraConfig sets the demo orbit camera. Angles are in degrees.
type CameraConfig struct {
	Yaw       float64 `yaml:"yaw"`
	Pitch     float64 `yaml:"pitch"`
	TurnSpeed float64 `yaml:"turnSpeed"` // degrees per second
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the tuned defaults every loaded file is merged over.
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:   480,
			ScreenHeight:  320,
			Scale:         2,
			Framerate:     60,
			PixelsPerUnit: 12,
		},
		Locomotion: DefaultLocomotion(),
		Character: CharacterConfig{
			Radius: 0.5,
		},
		Camera: CameraConfig{
			Yaw:       0,
			Pitch:     35,
			TurnSpeed: 90,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultLocomotion returns the default controller tunables.
func DefaultLocomotion() LocomotionConfig {
	return LocomotionConfig{
		Movement: MovementConfig{
			WalkSpeed:       5,
			RunSpeed:        8,
			RotationSpeed:   5,
			SpeedChangeRate: 10,
			SpeedOffset:     0.1,
		},
		Gravity: GravityConfig{
			Mass:        10,
			Gravity:     -9.81,
			GroundStick: -1,
			FallTimeout: 0.15,
		},
		Jump: JumpConfig{
			Force:   40,
			Timeout: 0.5,
		},
	}
}
