package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/stride/internal/domain/vecmath"
)

// InputState holds one frame of raw player input
type InputState struct {
	Move         vecmath.Vec2
	Sprint       bool
	JumpPressed  bool
	EmotePressed bool
	Turn         float64 // camera yaw axis, -1 (left) to 1 (right)
}

// KeyboardInput reads player input from the ebiten keyboard
type KeyboardInput struct{}

// NewKeyboardInput creates a new keyboard input reader
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// GetInput reads the current input state
func (k *KeyboardInput) GetInput() InputState {
	var move vecmath.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		move.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		move.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		move.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		move.Y--
	}

	var turn float64
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		turn--
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		turn++
	}

	return InputState{
		Move:         move.Normalize(),
		Sprint:       ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight),
		JumpPressed:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		EmotePressed: inpututil.IsKeyJustPressed(ebiten.KeyB),
		Turn:         turn,
	}
}

// LatchedInput buffers input states for the controller.
// Presses are latched until consumed; several presses collapse into one.
type LatchedInput struct {
	move   vecmath.Vec2
	sprint bool
	jump   bool
	emote  bool
}

// NewLatchedInput creates an empty latched input
func NewLatchedInput() *LatchedInput {
	return &LatchedInput{}
}

// Set stores the held axes of s and latches its presses.
// Movement longer than 1 is shortened to unit length.
func (l *LatchedInput) Set(s InputState) {
	l.move = s.Move
	if l.move.Length() > 1 {
		l.move = l.move.Normalize()
	}
	l.sprint = s.Sprint
	l.jump = l.jump || s.JumpPressed
	l.emote = l.emote || s.EmotePressed
}

// Movement returns the held movement axes
func (l *LatchedInput) Movement() vecmath.Vec2 {
	return l.move
}

// Sprint reports whether sprint is held
func (l *LatchedInput) Sprint() bool {
	return l.sprint
}

// JumpEdge consumes a latched jump press
func (l *LatchedInput) JumpEdge() bool {
	j := l.jump
	l.jump = false
	return j
}

// EmoteEdge consumes a latched emote press
func (l *LatchedInput) EmoteEdge() bool {
	e := l.emote
	l.emote = false
	return e
}

// Clear drops held axes and pending presses
func (l *LatchedInput) Clear() {
	*l = LatchedInput{}
}
