// Package options provides the options menu overlay: resolution choice,
// key rebinding and saving of the local settings.
//
// The menu is drawn onto its own native-size surface, which is the
// surface of its curtain, so the whole menu fades as one image.
package options

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
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
	colorDecoration = color.RGBA{0x01, 0x93, 0xbc, 0xff}
)

// Layout in native pixels
const (
	titleY = 11

	buttonLeft   = 87
	buttonTop    = 18
	buttonHeight = 15
	wideButton   = 149
	narrowButton = 73

	valueTextRightPadding = 3
	valueTextTopPadding   = 1

	decorationX     = 160
	decorationLeft  = 87
	decorationRight = 232

	promptText          = "press any key"
	promptBlinkDuration = 0.5
)

var labelOffset = image.Pt(4, 1)

// Menu is the options menu. Activate it through scene.Host to have it
// updated instead of the current scene.
type Menu struct {
	host  scene.Host
	state state.OptionsMenuState

	curtain    *widget.Curtain
	entryDelay *widget.Timer
	exitDelay  *widget.Timer

	title    string
	titlePos image.Point

	buttons          *widget.ButtonContainer
	resolutionButton *widget.Button
	upInputButton    *widget.Button
	downInputButton  *widget.Button
	applyButton      *widget.Button
	resetButton      *widget.Button
	exitButton       *widget.Button
	selected         *widget.Button
	focused          *widget.Button

	// Action names of the rebindable buttons
	bindings map[*widget.Button]string

	// Right-aligned value text drawn on a button
	values map[*widget.Button]string

	resolutions     []string
	resolutionIndex int

	prompt *widget.Curtain

	decorationTop    int
	decorationBottom int
}

// New creates the options menu. resolutions are the labels cycled with
// left and right while the resolution button is focused.
func New(host scene.Host, cfg config.ScreenConfig, resolutions []string, nativeW, nativeH int) *Menu {
	m := &Menu{
		host:        host,
		state:       state.OptionsJustEntered,
		entryDelay:  widget.NewTimer(cfg.EntryDelay),
		exitDelay:   widget.NewTimer(cfg.ExitDelay),
		title:       cfg.Title,
		values:      make(map[*widget.Button]string),
		resolutions: resolutions,
	}

	surf := ebiten.NewImage(nativeW, nativeH)
	m.curtain = widget.NewCurtain(cfg.CurtainDuration, widget.CurtainInvisible, 255, surf)
	m.curtain.OnInvisibleEnd = func() { m.setState(state.OptionsReachedInvisible) }
	m.curtain.OnOpaqueEnd = func() { m.setState(state.OptionsReachedOpaque) }

	m.entryDelay.OnEnd = m.onEntryDelayEnd
	m.exitDelay.OnEnd = m.onExitDelayEnd

	size := pixelfont.Size(m.title)
	m.titlePos = image.Pt((nativeW-size.X)/2, titleY)

	topLeft := image.Pt(buttonLeft, buttonTop)
	m.resolutionButton = widget.NewButton(wideButton, buttonHeight, topLeft, "resolutions", labelOffset, "set resolutions")
	m.upInputButton = widget.NewButton(wideButton, buttonHeight, topLeft, "up input", labelOffset, "press enter to rebind")
	m.downInputButton = widget.NewButton(wideButton, buttonHeight, topLeft, "down input", labelOffset, "press enter to rebind")
	m.applyButton = widget.NewButton(narrowButton, buttonHeight, topLeft, "apply", labelOffset, "apply and save changes")
	m.resetButton = widget.NewButton(narrowButton, buttonHeight, topLeft, "reset", labelOffset, "discard changes")
	m.exitButton = widget.NewButton(narrowButton, buttonHeight, topLeft, "exit", labelOffset, "exit options menu")

	m.buttons = widget.NewButtonContainer([]*widget.Button{
		m.resolutionButton,
		m.upInputButton,
		m.downInputButton,
		m.applyButton,
		m.resetButton,
		m.exitButton,
	}, 0, 0, false)
	m.buttons.OnButtonSelected = m.onButtonSelected
	m.buttons.OnIndexChanged = m.onIndexChanged

	m.selected = m.resolutionButton
	m.focused = m.resolutionButton

	m.bindings = map[*widget.Button]string{
		m.upInputButton:   "up",
		m.downInputButton: "down",
	}

	m.prompt = widget.NewCurtain(promptBlinkDuration, widget.CurtainOpaque, 255, nil)
	m.prompt.OnOpaqueEnd = func() {
		if m.state == state.OptionsRebind {
			m.prompt.GoToInvisible()
		}
	}
	m.prompt.OnInvisibleEnd = func() {
		if m.state == state.OptionsRebind {
			m.prompt.GoToOpaque()
		}
	}

	m.decorationTop = buttonTop
	m.decorationBottom = buttonTop + m.buttons.Len()*(buttonHeight+1)

	m.syncFromSettings()

	return m
}

// State returns the current state.
func (m *Menu) State() state.OptionsMenuState {
	return m.state
}

// ResolutionIndex returns the resolution shown by the menu.
func (m *Menu) ResolutionIndex() int {
	return m.resolutionIndex
}

// ValueText returns the value text shown on the button with the given label.
func (m *Menu) ValueText(label string) string {
	for b, text := range m.values {
		if b.Label == label {
			return text
		}
	}
	return ""
}

// Update runs the state machine. The options menu never transitions to
// another scene; it hands control back through scene.Host.
func (m *Menu) Update(dt float64) (scene.Scene, error) {
	m.host.DebugDraw().Add(debugdraw.TopLayer, debugdraw.Text{
		X:    0,
		Y:    pixelfont.LineHeight(),
		Text: "options menu state: " + m.state.String(),
	})

	in := m.host.Input()

	switch m.state {
	case state.OptionsJustEntered:
		m.entryDelay.Update(dt)

	case state.OptionsGoingToOpaque:
		m.curtain.Update(dt)

	case state.OptionsReachedOpaque:
		m.buttons.HandleInput(in)
		m.buttons.Update(dt)

		if m.state != state.OptionsReachedOpaque {
			break
		}

		if in.Pause {
			m.onButtonSelected(m.exitButton)
			break
		}

		if m.focused == m.resolutionButton {
			next := m.resolutionIndex
			if in.Left {
				next--
			}
			if in.Right {
				next++
			}
			if next != m.resolutionIndex {
				m.setResolutionIndex(next)
				if m.host.Settings().ResolutionScale != m.resolutionIndex {
					m.host.SetResolution(m.resolutionIndex)
				}
			}
		}

	case state.OptionsRebind:
		m.buttons.Update(dt)
		m.prompt.Update(dt)

		if !in.AnyKey {
			break
		}

		keys := &m.host.Settings().Keys
		if owner, used := keys.Owner(in.Key); used {
			m.values[m.focused] = fmt.Sprintf("used by '%s'", owner)
			break
		}

		keys.Set(m.bindings[m.focused], in.Key)
		m.values[m.focused] = config.KeyName(in.Key)
		m.setState(state.OptionsReachedOpaque)

	case state.OptionsGoingToInvisible:
		m.curtain.Update(dt)
		m.buttons.Update(dt)

	case state.OptionsReachedInvisible:
		m.exitDelay.Update(dt)
	}

	return nil, nil
}

// Draw renders the menu onto its curtain and the curtain onto the screen.
func (m *Menu) Draw(screen *ebiten.Image) {
	surf := m.curtain.Surface
	surf.Fill(colorClear)

	pixelfont.Draw(surf, m.title, m.titlePos.X, m.titlePos.Y, colorFont)

	m.buttons.Draw(surf)

	for b, text := range m.values {
		alpha := float32(1)
		if m.state == state.OptionsRebind && b == m.focused {
			alpha = m.prompt.Ratio()
		}
		size := pixelfont.Size(text)
		x := b.Rect().Max.X - valueTextRightPadding - size.X
		y := b.Rect().Min.Y + valueTextTopPadding
		pixelfont.DrawAlpha(surf, text, x, y, colorFont, alpha)
	}

	vector.StrokeLine(surf,
		decorationLeft, float32(m.decorationBottom)+0.5,
		decorationRight, float32(m.decorationBottom)+0.5,
		1, colorDecoration, false)
	vector.StrokeLine(surf,
		decorationX+0.5, float32(m.decorationTop),
		decorationX+0.5, float32(m.decorationBottom),
		1, colorDecoration, false)

	m.curtain.Draw(screen, 0)
}

// OnEnter refreshes the shown values from the live settings.
func (m *Menu) OnEnter() {
	m.syncFromSettings()
}

// OnExit is called when the overlay is hidden.
func (m *Menu) OnExit() {}

func (m *Menu) setState(next state.OptionsMenuState) {
	old := m.state
	m.state = next

	switch old {
	case state.OptionsJustEntered:
		if next == state.OptionsGoingToOpaque {
			m.curtain.GoToOpaque()
		}

	case state.OptionsGoingToOpaque:
		if next == state.OptionsReachedOpaque {
			m.buttons.SetInputAllowed(true)
		}

	case state.OptionsReachedOpaque:
		switch next {
		case state.OptionsGoingToInvisible:
			m.buttons.SetInputAllowed(false)
			m.curtain.GoToInvisible()
		case state.OptionsRebind:
			m.values[m.focused] = promptText
			m.prompt.Set(widget.CurtainOpaque)
			m.prompt.GoToInvisible()
		}

	case state.OptionsRebind:
		if next == state.OptionsReachedOpaque {
			m.prompt.Set(widget.CurtainOpaque)
		}
	}
}

func (m *Menu) onEntryDelayEnd() {
	m.setState(state.OptionsGoingToOpaque)
}

// onExitDelayEnd leaves the menu. The state is reset directly so the next
// activation starts over.
func (m *Menu) onExitDelayEnd() {
	m.exitDelay.Reset()
	m.entryDelay.Reset()
	m.state = state.OptionsJustEntered
	m.host.SetOptionsMenuActive(false)
}

func (m *Menu) onIndexChanged(focused *widget.Button) {
	m.focused = focused
}

func (m *Menu) onButtonSelected(selected *widget.Button) {
	m.selected = selected

	switch selected {
	case m.applyButton:
		if err := m.host.SaveSettings(); err != nil {
			log.Printf("[OptionsMenu] Failed to save settings: %v", err)
		}

	case m.resetButton:
		m.loadSettingsAndRefresh()

	case m.exitButton:
		m.loadSettingsAndRefresh()
		m.setState(state.OptionsGoingToInvisible)

	case m.upInputButton, m.downInputButton:
		m.setState(state.OptionsRebind)
	}
}

// loadSettingsAndRefresh discards unsaved changes and puts the window back
// to the stored resolution.
func (m *Menu) loadSettingsAndRefresh() {
	if err := m.host.LoadOrCreateSettings(); err != nil {
		log.Printf("[OptionsMenu] Failed to load settings: %v", err)
	}

	stored := m.host.Settings().ResolutionScale
	old := m.resolutionIndex
	m.setResolutionIndex(stored)
	if stored != old {
		m.host.SetResolution(m.resolutionIndex)
	}

	m.refreshKeyTexts()
}

func (m *Menu) syncFromSettings() {
	m.setResolutionIndex(m.host.Settings().ResolutionScale)
	m.refreshKeyTexts()
}

func (m *Menu) refreshKeyTexts() {
	keys := &m.host.Settings().Keys
	for b, name := range m.bindings {
		if k, ok := keys.Get(name); ok {
			m.values[b] = config.KeyName(k)
		}
	}
}

// setResolutionIndex wraps i into the resolution list.
func (m *Menu) setResolutionIndex(i int) {
	n := len(m.resolutions)
	if n == 0 {
		return
	}
	m.resolutionIndex = ((i % n) + n) % n
	m.values[m.resolutionButton] = m.resolutions[m.resolutionIndex]
}
