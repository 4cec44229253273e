package widget

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pixelmenu/internal/application/system"
)

func newTestContainer(inputAllowed bool) (*ButtonContainer, []*Button) {
	buttons := []*Button{
		newTestButton("first"),
		newTestButton("second"),
		newTestButton("third"),
	}
	return NewButtonContainer(buttons, 0, 0, inputAllowed), buttons
}

func TestNewButtonContainer_Layout(t *testing.T) {
	c, buttons := newTestContainer(false)

	assert.Equal(t, image.Pt(87, 18), buttons[0].Rect().Min)
	assert.Equal(t, image.Pt(87, 34), buttons[1].Rect().Min)
	assert.Equal(t, image.Pt(87, 50), buttons[2].Rect().Min)
	assert.Equal(t, image.Rect(87, 18, 160, 65), c.Bounds())
	assert.Equal(t, 3, c.Len())
}

func TestNewButtonContainer_FocusesInitialButton(t *testing.T) {
	c, buttons := newTestContainer(false)

	assert.Equal(t, 0, c.Index())
	assert.Same(t, buttons[0], c.Focused())
	assert.Equal(t, ButtonActive, buttons[0].State())
	assert.Equal(t, ButtonInactive, buttons[1].State())
}

func TestButtonContainer_IgnoresInputWhenNotAllowed(t *testing.T) {
	c, _ := newTestContainer(false)
	selected := 0
	c.OnButtonSelected = func(*Button) { selected++ }

	c.HandleInput(system.InputState{Down: true, Enter: true})

	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 0, selected)
}

func TestButtonContainer_Navigation(t *testing.T) {
	tests := []struct {
		name     string
		inputs   []system.InputState
		expected int
	}{
		{"down", []system.InputState{{Down: true}}, 1},
		{"down twice", []system.InputState{{Down: true}, {Down: true}}, 2},
		{"down wraps", []system.InputState{{Down: true}, {Down: true}, {Down: true}}, 0},
		{"up wraps", []system.InputState{{Up: true}}, 2},
		{"no input", []system.InputState{{}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, buttons := newTestContainer(true)
			for _, in := range tt.inputs {
				c.HandleInput(in)
			}
			assert.Equal(t, tt.expected, c.Index())
			for i, b := range buttons {
				if i == tt.expected {
					assert.Equal(t, ButtonActive, b.State())
				} else {
					assert.Equal(t, ButtonInactive, b.State())
				}
			}
		})
	}
}

func TestButtonContainer_IndexChangedEvent(t *testing.T) {
	c, buttons := newTestContainer(true)
	var changed []*Button
	c.OnIndexChanged = func(b *Button) { changed = append(changed, b) }

	c.HandleInput(system.InputState{Down: true})
	c.SetIndex(1)

	require.Len(t, changed, 1, "setting the same index is not a change")
	assert.Same(t, buttons[1], changed[0])
}

func TestButtonContainer_Select(t *testing.T) {
	c, buttons := newTestContainer(true)
	var selected *Button
	c.OnButtonSelected = func(b *Button) { selected = b }

	c.HandleInput(system.InputState{Down: true})
	c.HandleInput(system.InputState{Enter: true})

	assert.Same(t, buttons[1], selected)
}

func TestButtonContainer_MouseHoverAndClick(t *testing.T) {
	c, buttons := newTestContainer(true)
	var selected *Button
	c.OnButtonSelected = func(b *Button) { selected = b }

	c.HandleInput(system.InputState{MouseX: 100, MouseY: 52, MouseMoved: true})
	assert.Equal(t, 2, c.Index())
	assert.Nil(t, selected)

	c.HandleInput(system.InputState{MouseX: 100, MouseY: 20, MouseClick: true})
	assert.Equal(t, 0, c.Index())
	assert.Same(t, buttons[0], selected)
}

func TestButtonContainer_StillMouseDoesNotStealFocus(t *testing.T) {
	c, _ := newTestContainer(true)

	c.HandleInput(system.InputState{Down: true, MouseX: 100, MouseY: 20})
	assert.Equal(t, 1, c.Index())
}

func TestButtonContainer_Empty(t *testing.T) {
	c := NewButtonContainer(nil, 3, 0, true)

	assert.Nil(t, c.Focused())
	assert.NotPanics(t, func() {
		c.HandleInput(system.InputState{Down: true, Enter: true})
		c.SetIndex(2)
		c.Update(1)
	})
}

func TestButtonContainer_SetInputAllowed(t *testing.T) {
	c, _ := newTestContainer(false)

	c.SetInputAllowed(true)
	assert.True(t, c.InputAllowed())

	c.HandleInput(system.InputState{Down: true})
	assert.Equal(t, 1, c.Index())
}
