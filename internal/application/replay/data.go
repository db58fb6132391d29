// Package replay records and plays back per-frame locomotion input.
package replay

// FormatVersion is written into every new replay file
const FormatVersion = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F     int     `json:"f"`           // Frame number
	X     float64 `json:"x,omitempty"` // Move axis right
	Y     float64 `json:"y,omitempty"` // Move axis forward
	S     bool    `json:"s,omitempty"` // Sprint held
	J     bool    `json:"j,omitempty"` // JumpPressed
	E     bool    `json:"e,omitempty"` // EmotePressed
	Yaw   float64 `json:"yaw"`         // Camera yaw, radians
	Pitch float64 `json:"pitch"`       // Camera pitch, radians
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Level     string       `json:"level"`
	TickRate  int          `json:"tickRate"` // frames per second the session ran at
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// DT returns the fixed frame time of the recording
func (d ReplayData) DT() float64 {
	if d.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(d.TickRate)
}
