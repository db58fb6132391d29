// Package game adapts the current scene to ebiten's fixed-tick loop.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/stride/internal/application/scene"
	"github.com/younwookim/stride/internal/infrastructure/config"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	ticks   int
}

// New creates a new Game showing initialScene at the configured logical size.
// The tick delta follows the configured framerate. The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, display config.DisplayConfig) *Game {
	framerate := display.Framerate
	if framerate <= 0 {
		framerate = 60
	}
	g := &Game{
		current: initialScene,
		screenW: display.ScreenWidth,
		screenH: display.ScreenHeight,
		dt:      1.0 / float64(framerate),
	}
	g.current.OnEnter()
	return g
}

// Update advances the current scene one tick and handles scene transitions.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	g.ticks++

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Close exits the current scene, flushing whatever it holds open.
func (g *Game) Close() {
	g.current.OnExit()
}

// DT returns the delta time passed to every scene update.
func (g *Game) DT() float64 {
	return g.dt
}

// Ticks returns the number of successful updates so far.
func (g *Game) Ticks() int {
	return g.ticks
}
