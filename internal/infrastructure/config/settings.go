package config

import "github.com/hajimehoshi/ebiten/v2"

// DefaultResolutionScale is the resolution index used by fresh settings (960x480).
const DefaultResolutionScale = 2

// Settings are the player's local settings: window resolution and key bindings.
type Settings struct {
	ResolutionScale int         `yaml:"resolutionScale"`
	Keys            KeyBindings `yaml:"keys"`
}

// KeyBindings maps every game action to a key.
type KeyBindings struct {
	Up    Key `yaml:"up"`
	Down  Key `yaml:"down"`
	Left  Key `yaml:"left"`
	Right Key `yaml:"right"`
	Enter Key `yaml:"enter"`
	Pause Key `yaml:"pause"`
}

// Binding is one named action of KeyBindings.
type Binding struct {
	Name string
	Key  ebiten.Key
}

// DefaultSettings returns the settings used when nothing is stored yet.
func DefaultSettings() *Settings {
	return &Settings{
		ResolutionScale: DefaultResolutionScale,
		Keys: KeyBindings{
			Up:    Key(ebiten.KeyArrowUp),
			Down:  Key(ebiten.KeyArrowDown),
			Left:  Key(ebiten.KeyArrowLeft),
			Right: Key(ebiten.KeyArrowRight),
			Enter: Key(ebiten.KeyEnter),
			Pause: Key(ebiten.KeyEscape),
		},
	}
}

// Clone returns a copy of s.
func (s *Settings) Clone() *Settings {
	c := *s
	return &c
}

// Normalize puts an out-of-range resolution back to the default.
// resolutions is the number of selectable resolutions.
func (s *Settings) Normalize(resolutions int) {
	if s.ResolutionScale < 0 || s.ResolutionScale >= resolutions {
		s.ResolutionScale = min(DefaultResolutionScale, resolutions-1)
	}
}

// All returns the bindings in a fixed order.
func (b *KeyBindings) All() []Binding {
	return []Binding{
		{Name: "up", Key: b.Up.Ebiten()},
		{Name: "down", Key: b.Down.Ebiten()},
		{Name: "left", Key: b.Left.Ebiten()},
		{Name: "right", Key: b.Right.Ebiten()},
		{Name: "enter", Key: b.Enter.Ebiten()},
		{Name: "pause", Key: b.Pause.Ebiten()},
	}
}

// Owner returns the name of the action bound to k.
func (b *KeyBindings) Owner(k ebiten.Key) (string, bool) {
	for _, binding := range b.All() {
		if binding.Key == k {
			return binding.Name, true
		}
	}
	return "", false
}

// Get returns the key bound to the named action.
func (b *KeyBindings) Get(name string) (ebiten.Key, bool) {
	p := b.field(name)
	if p == nil {
		return 0, false
	}
	return p.Ebiten(), true
}

// Set binds the named action to k. It reports false for an unknown action.
func (b *KeyBindings) Set(name string, k ebiten.Key) bool {
	p := b.field(name)
	if p == nil {
		return false
	}
	*p = Key(k)
	return true
}

func (b *KeyBindings) field(name string) *Key {
	switch name {
	case "up":
		return &b.Up
	case "down":
		return &b.Down
	case "left":
		return &b.Left
	case "right":
		return &b.Right
	case "enter":
		return &b.Enter
	case "pause":
		return &b.Pause
	default:
		return nil
	}
}
