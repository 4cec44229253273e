package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pixelmenu/internal/infrastructure/config"
)

func TestNewInputSystem(t *testing.T) {
	sys := NewInputSystem()

	require.NotNil(t, sys)
	assert.False(t, sys.polled)
}

func TestResolve(t *testing.T) {
	bindings := config.DefaultSettings().Keys

	tests := []struct {
		name     string
		keys     []ebiten.Key
		expected InputState
	}{
		{
			name:     "nothing pressed",
			keys:     nil,
			expected: InputState{},
		},
		{
			name:     "up",
			keys:     []ebiten.Key{ebiten.KeyArrowUp},
			expected: InputState{Up: true, AnyKey: true, Key: ebiten.KeyArrowUp},
		},
		{
			name:     "enter",
			keys:     []ebiten.Key{ebiten.KeyEnter},
			expected: InputState{Enter: true, AnyKey: true, Key: ebiten.KeyEnter},
		},
		{
			name:     "unbound key",
			keys:     []ebiten.Key{ebiten.KeyQ},
			expected: InputState{AnyKey: true, Key: ebiten.KeyQ},
		},
		{
			name: "first key wins for AnyKey",
			keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyEscape},
			expected: InputState{
				Left: true, Pause: true, AnyKey: true, Key: ebiten.KeyArrowLeft,
			},
		},
		{
			name:     "debug toggle is not a key press",
			keys:     []ebiten.Key{DebugToggleKey},
			expected: InputState{DebugToggle: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.keys, bindings))
		})
	}
}

func TestResolve_FollowsRebinding(t *testing.T) {
	bindings := config.DefaultSettings().Keys
	bindings.Set("up", ebiten.KeyW)

	in := Resolve([]ebiten.Key{ebiten.KeyW}, bindings)
	assert.True(t, in.Up)

	in = Resolve([]ebiten.Key{ebiten.KeyArrowUp}, bindings)
	assert.False(t, in.Up)
	assert.True(t, in.AnyKey)
}
