package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/pixelmenu/internal/infrastructure/config"
)

// DebugToggleKey toggles the debug overlay. It is never reported as a
// rebindable key press.
const DebugToggleKey = ebiten.KeyF3

// InputState holds this frame's menu input
type InputState struct {
	// Bound actions pressed this frame
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Enter bool
	Pause bool

	// AnyKey is set when some key was pressed this frame; Key is that key.
	AnyKey bool
	Key    ebiten.Key

	DebugToggle bool

	MouseX     int
	MouseY     int
	MouseMoved bool
	MouseClick bool
}

// InputSystem polls ebiten for menu input
type InputSystem struct {
	keys       []ebiten.Key
	lastMouseX int
	lastMouseY int
	polled     bool
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Poll reads the keys pressed this frame and maps them through bindings.
func (s *InputSystem) Poll(bindings config.KeyBindings) InputState {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	in := Resolve(s.keys, bindings)

	mx, my := ebiten.CursorPosition()
	in.MouseX = mx
	in.MouseY = my
	in.MouseMoved = s.polled && (mx != s.lastMouseX || my != s.lastMouseY)
	in.MouseClick = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	s.lastMouseX, s.lastMouseY = mx, my
	s.polled = true

	return in
}

// Resolve maps the keys pressed this frame to actions.
func Resolve(justPressed []ebiten.Key, bindings config.KeyBindings) InputState {
	var in InputState
	for _, k := range justPressed {
		if k == DebugToggleKey {
			in.DebugToggle = true
			continue
		}

		if !in.AnyKey {
			in.AnyKey = true
			in.Key = k
		}

		switch k {
		case bindings.Up.Ebiten():
			in.Up = true
		case bindings.Down.Ebiten():
			in.Down = true
		case bindings.Left.Ebiten():
			in.Left = true
		case bindings.Right.Ebiten():
			in.Right = true
		case bindings.Enter.Ebiten():
			in.Enter = true
		case bindings.Pause.Ebiten():
			in.Pause = true
		}
	}
	return in
}
