// Package state classifies a character into a discrete locomotion state.
package state

// Locomotion is the discrete locomotion state reported each frame
type Locomotion int

const (
	Idle Locomotion = iota
	Walking
	Running
	Falling
)

// String returns the string representation of the locomotion state
func (s Locomotion) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Walking:
		return "Walking"
	case Running:
		return "Running"
	case Falling:
		return "Falling"
	default:
		return "Unknown"
	}
}

// Classify maps smoothed speed and the falling flag to a state.
// Falling wins over any speed-derived state.
func Classify(speed float64, falling bool, walkSpeed, runSpeed float64) Locomotion {
	if falling {
		return Falling
	}
	switch {
	case speed <= 0:
		return Idle
	case speed <= walkSpeed:
		return Walking
	default:
		// Anything above walk speed, including overshoot past run speed
		return Running
	}
}
