// Package scene defines the Scene interface for game screens.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the demo, driven by the game loop.
// Returning a non-nil Scene from Update switches to it.
type Scene interface {
	// Update advances the scene by dt seconds.
	// An error terminates the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is replaced or the game closes.
	OnExit()
}
