// Package scene defines the Scene interface for game screens.
//
// Each game screen (main menu, options, etc.) implements the Scene
// interface to handle its own update logic and rendering. Screens reach
// the game through Host.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/pixelmenu/internal/application/debugdraw"
	"github.com/younwookim/pixelmenu/internal/application/system"
	"github.com/younwookim/pixelmenu/internal/infrastructure/config"
)

// Scene represents a game screen (main menu, options, etc.)
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game; ebiten.Termination quits normally.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	// Use this for initialization that should happen each time the scene is entered.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Use this for cleanup, saving state, or resource release.
	OnExit()
}

// Host is the part of the game a scene may use.
type Host interface {
	// Input returns this frame's input.
	Input() system.InputState

	// Settings returns the live local settings. Changes are kept in memory
	// until SaveSettings.
	Settings() *config.Settings

	// LoadOrCreateSettings replaces the local settings with the stored ones,
	// storing defaults when nothing is stored yet.
	LoadOrCreateSettings() error

	// SaveSettings stores the local settings.
	SaveSettings() error

	// SetResolution records the resolution index in the local settings and
	// resizes the window.
	SetResolution(index int)

	// SetOptionsMenuActive shows or hides the options menu overlay.
	// While it is active it is updated instead of the current scene.
	SetOptionsMenuActive(active bool)

	// DebugDraw returns this frame's debug queue.
	DebugDraw() *debugdraw.DebugDraw
}
