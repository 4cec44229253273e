// Package mainmenu provides the title screen that fades in, waits for the
// player and fades out again.
package mainmenu

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/pixelmenu/internal/application/debugdraw"
	"github.com/younwookim/pixelmenu/internal/application/pixelfont"
	"github.com/younwookim/pixelmenu/internal/application/scene"
	"github.com/younwookim/pixelmenu/internal/application/state"
	"github.com/younwookim/pixelmenu/internal/application/widget"
	"github.com/younwookim/pixelmenu/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorClear      = color.RGBA{0x00, 0x00, 0x00, 0xff}
	colorFont       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorGradientLo = color.RGBA{0x00, 0x0f, 0x28, 0xff}
	colorGradientHi = color.RGBA{0x12, 0x6a, 0x9c, 0xff}
)

// MainMenu shows the title over a background between two curtain fades.
// Pressing enter or pause while the title fades in skips to the fade out.
type MainMenu struct {
	host  scene.Host
	state state.MainMenuState

	curtain    *widget.Curtain
	entryDelay *widget.Timer
	exitDelay  *widget.Timer
	quit       bool

	background *ebiten.Image
	title      string
	titlePos   image.Point
}

// New creates the main menu. background may be nil, in which case a
// gradient of the native size is generated.
func New(host scene.Host, cfg config.ScreenConfig, background *ebiten.Image, nativeW, nativeH int) *MainMenu {
	if background == nil {
		background = gradientBackground(nativeW, nativeH)
	}

	surf := ebiten.NewImage(nativeW, nativeH)
	surf.Fill(colorClear)

	m := &MainMenu{
		host:       host,
		state:      state.MainMenuJustEntered,
		curtain:    widget.NewCurtain(cfg.CurtainDuration, widget.CurtainOpaque, 255, surf),
		entryDelay: widget.NewTimer(cfg.EntryDelay),
		exitDelay:  widget.NewTimer(cfg.ExitDelay),
		background: background,
		title:      cfg.Title,
	}

	size := pixelfont.Size(m.title)
	m.titlePos = image.Pt((nativeW-size.X)/2, (nativeH-size.Y)/2)

	m.curtain.OnInvisibleEnd = func() { m.setState(state.MainMenuReachedInvisible) }
	m.curtain.OnOpaqueEnd = func() { m.setState(state.MainMenuReachedOpaque) }
	m.entryDelay.OnEnd = func() { m.setState(state.MainMenuGoingToInvisible) }
	m.exitDelay.OnEnd = func() { m.quit = true }

	return m
}

// LoadBackground loads a background image from fsys.
func LoadBackground(fsys fs.FS, name string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFileSystem(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load background %s: %w", name, err)
	}
	return img, nil
}

// State returns the current state.
func (m *MainMenu) State() state.MainMenuState {
	return m.state
}

// Update runs the state machine. It returns ebiten.Termination once the
// exit delay after the final fade has passed.
func (m *MainMenu) Update(dt float64) (scene.Scene, error) {
	m.host.DebugDraw().Add(debugdraw.TopLayer, debugdraw.Text{
		X:    0,
		Y:    0,
		Text: "state: " + m.state.String(),
	})

	in := m.host.Input()

	switch m.state {
	case state.MainMenuJustEntered:
		m.entryDelay.Update(dt)

	case state.MainMenuGoingToInvisible:
		if in.Enter || in.Pause {
			m.setState(state.MainMenuGoingToOpaque)
			break
		}
		m.curtain.Update(dt)

	case state.MainMenuReachedInvisible:
		if in.Enter {
			m.setState(state.MainMenuLeaveFadePrompt)
		} else if in.Pause {
			m.host.SetOptionsMenuActive(true)
		}

	case state.MainMenuLeaveFadePrompt:
		m.setState(state.MainMenuGoingToOpaque)

	case state.MainMenuGoingToOpaque:
		m.curtain.Update(dt)

	case state.MainMenuReachedOpaque:
		m.exitDelay.Update(dt)
		if m.quit {
			log.Printf("[MainMenu] Exit delay over, quitting")
			return nil, ebiten.Termination
		}
	}

	return nil, nil
}

// Draw renders the scene to the screen.
func (m *MainMenu) Draw(screen *ebiten.Image) {
	switch m.state {
	case state.MainMenuJustEntered, state.MainMenuReachedOpaque:
		screen.Fill(colorClear)
		return
	}

	screen.DrawImage(m.background, nil)
	pixelfont.Draw(screen, m.title, m.titlePos.X, m.titlePos.Y, colorFont)
	m.curtain.Draw(screen, 0)
}

// OnEnter restarts the sequence from a black screen.
func (m *MainMenu) OnEnter() {
	m.state = state.MainMenuJustEntered
	m.curtain.Set(widget.CurtainOpaque)
	m.entryDelay.Reset()
	m.exitDelay.Reset()
	m.quit = false
}

// OnExit is called when leaving this scene.
func (m *MainMenu) OnExit() {}

func (m *MainMenu) setState(next state.MainMenuState) {
	old := m.state
	m.state = next

	switch old {
	case state.MainMenuJustEntered:
		if next == state.MainMenuGoingToInvisible {
			m.curtain.GoToInvisible()
		}

	case state.MainMenuGoingToInvisible:
		// Skipped before the title was fully shown.
		if next == state.MainMenuGoingToOpaque {
			m.curtain.GoToOpaque()
		}

	case state.MainMenuLeaveFadePrompt:
		if next == state.MainMenuGoingToOpaque {
			m.curtain.GoToOpaque()
		}
	}
}

func gradientBackground(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	for y := 0; y < h; y++ {
		t := float64(y) / float64(max(h-1, 1))
		vector.DrawFilledRect(img, 0, float32(y), float32(w), 1, lerpRGBA(colorGradientLo, colorGradientHi, t), false)
	}
	return img
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), 0xff}
}
