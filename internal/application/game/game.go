// Package game provides the main game loop manager that handles Scene
// transitions, the options menu overlay and the local settings.
package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/pixelmenu/internal/application/debugdraw"
	"github.com/younwookim/pixelmenu/internal/application/scene"
	"github.com/younwookim/pixelmenu/internal/application/system"
	"github.com/younwookim/pixelmenu/internal/infrastructure/config"
)

// Store loads and saves the local settings.
type Store interface {
	LoadOrCreate() (*config.Settings, error)
	Save(settings *config.Settings) error
}

// Display resizes the game window.
type Display interface {
	SetFullscreen(fullscreen bool)
	SetWindowSize(width, height int)
}

// InputSource reads one frame of input through the given key bindings.
type InputSource interface {
	Poll(bindings config.KeyBindings) system.InputState
}

// Options configure a Game. Nil Store, Display and Input fall back to an
// in-memory store, the ebiten window and keyboard polling.
type Options struct {
	ScreenWidth  int
	ScreenHeight int
	TPS          int

	// Number of selectable resolutions. The last one is fullscreen.
	Resolutions int

	Store   Store
	Display Display
	Input   InputSource

	// Debug enables the debug overlay at startup.
	Debug bool
}

// Game implements ebiten.Game and scene.Host.
type Game struct {
	current scene.Scene

	overlay       scene.Scene
	overlayActive bool

	screenW     int
	screenH     int
	dt          float64
	resolutions int

	store   Store
	display Display
	input   InputSource

	in       system.InputState
	settings *config.Settings
	debug    *debugdraw.DebugDraw
}

// New creates a Game, loads the local settings and applies the stored
// resolution. Call Start before running it. It fails without any
// selectable resolution.
func New(opts Options) (*Game, error) {
	if opts.Resolutions < 1 {
		return nil, fmt.Errorf("invalid resolution count %d: need at least one", opts.Resolutions)
	}

	tps := opts.TPS
	if tps <= 0 {
		tps = 60
	}

	g := &Game{
		screenW:     opts.ScreenWidth,
		screenH:     opts.ScreenHeight,
		dt:          1.0 / float64(tps),
		resolutions: opts.Resolutions,
		store:       opts.Store,
		display:     opts.Display,
		input:       opts.Input,
		debug:       debugdraw.New(opts.Debug),
	}
	if g.store == nil {
		g.store = config.NewSettingsStore(nil, opts.Resolutions)
	}
	if g.display == nil {
		g.display = WindowDisplay{}
	}
	if g.input == nil {
		g.input = system.NewInputSystem()
	}

	if err := g.LoadOrCreateSettings(); err != nil {
		log.Printf("[Game] Failed to load settings, using defaults: %v", err)
	}
	g.applyResolution()

	return g, nil
}

// Start makes initial the current scene and calls its OnEnter.
func (g *Game) Start(initial scene.Scene) {
	g.current = initial
	g.current.OnEnter()
}

// SetOptionsMenu sets the overlay shown by SetOptionsMenuActive.
func (g *Game) SetOptionsMenu(menu scene.Scene) {
	g.overlay = menu
}

// Update updates the options overlay while it is active, otherwise the
// current scene, and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.debug.Clear()

	g.in = g.input.Poll(g.settings.Keys)
	if g.in.DebugToggle {
		g.debug.Toggle()
	}

	if g.overlayActive {
		_, err := g.overlay.Update(g.dt)
		return err
	}

	if g.current == nil {
		return nil
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene, the options overlay and the debug queue.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.current != nil {
		g.current.Draw(screen)
	}
	if g.overlayActive {
		g.overlay.Draw(screen)
	}
	// Draw may run several times per Update; the queue is cleared in Update.
	g.debug.DrawLayers(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Input implements scene.Host.
func (g *Game) Input() system.InputState {
	return g.in
}

// Settings implements scene.Host.
func (g *Game) Settings() *config.Settings {
	return g.settings
}

// LoadOrCreateSettings implements scene.Host. On failure the settings
// fall back to defaults and the error is returned.
func (g *Game) LoadOrCreateSettings() error {
	settings, err := g.store.LoadOrCreate()
	if settings == nil {
		settings = config.DefaultSettings()
		settings.Normalize(g.resolutions)
	}
	g.settings = settings
	return err
}

// SaveSettings implements scene.Host.
func (g *Game) SaveSettings() error {
	return g.store.Save(g.settings)
}

// SetResolution implements scene.Host.
func (g *Game) SetResolution(index int) {
	g.settings.ResolutionScale = index
	g.applyResolution()
}

// SetOptionsMenuActive implements scene.Host.
func (g *Game) SetOptionsMenuActive(active bool) {
	if g.overlay == nil {
		log.Printf("[Game] No options menu to show")
		return
	}
	if active == g.overlayActive {
		return
	}

	g.overlayActive = active
	if active {
		g.overlay.OnEnter()
	} else {
		g.overlay.OnExit()
	}
}

// OptionsMenuActive reports whether the options overlay is shown.
func (g *Game) OptionsMenuActive() bool {
	return g.overlayActive
}

// DebugDraw implements scene.Host.
func (g *Game) DebugDraw() *debugdraw.DebugDraw {
	return g.debug
}

// applyResolution sizes the window for the current resolution index:
// index i is a window of (i+1) times the native size, the last index is
// fullscreen.
func (g *Game) applyResolution() {
	index := g.settings.ResolutionScale
	if index == g.resolutions-1 {
		g.display.SetFullscreen(true)
		return
	}

	g.display.SetFullscreen(false)
	g.display.SetWindowSize(g.screenW*(index+1), g.screenH*(index+1))
}
