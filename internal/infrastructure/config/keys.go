package config

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// Key is an ebiten key that is persisted by its lower-case name
// ("arrowup", "w", "escape") instead of its numeric value.
type Key ebiten.Key

var keysByName = func() map[string]ebiten.Key {
	m := make(map[string]ebiten.Key, int(ebiten.KeyMax)+1)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		m[KeyName(k)] = k
	}
	return m
}()

// KeyName returns the display name of a key.
func KeyName(k ebiten.Key) string {
	return strings.ToLower(k.String())
}

// ParseKey returns the key with the given display name.
func ParseKey(name string) (ebiten.Key, error) {
	k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

// Ebiten returns the underlying ebiten key.
func (k Key) Ebiten() ebiten.Key {
	return ebiten.Key(k)
}

// String implements fmt.Stringer.
func (k Key) String() string {
	return KeyName(ebiten.Key(k))
}

// MarshalYAML implements yaml.Marshaler.
func (k Key) MarshalYAML() (any, error) {
	return k.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *Key) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return fmt.Errorf("key at line %d: %w", node.Line, err)
	}

	parsed, err := ParseKey(name)
	if err != nil {
		return fmt.Errorf("key at line %d: %w", node.Line, err)
	}

	*k = Key(parsed)
	return nil
}
