package widget

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/pixelmenu/internal/application/system"
)

// ButtonContainer owns the focus and selection of a vertical button group.
type ButtonContainer struct {
	// OnIndexChanged is called with the newly focused button.
	OnIndexChanged func(*Button)
	// OnButtonSelected is called with the focused button when it is chosen.
	OnButtonSelected func(*Button)

	buttons      []*Button
	index        int
	offsetY      int
	inputAllowed bool
}

// NewButtonContainer stacks buttons downwards from the first button's
// position with a one pixel gap and focuses the button at index.
func NewButtonContainer(buttons []*Button, index, offsetY int, inputAllowed bool) *ButtonContainer {
	c := &ButtonContainer{
		buttons:      buttons,
		offsetY:      offsetY,
		inputAllowed: inputAllowed,
	}
	if len(buttons) == 0 {
		return c
	}

	pos := buttons[0].Rect().Min
	for _, b := range buttons {
		b.SetPosition(pos)
		pos.Y += b.Rect().Dy() + 1
	}

	c.index = wrap(index, len(buttons))
	c.buttons[c.index].SetState(ButtonActive)
	return c
}

// HandleInput moves the focus and selects buttons. Ignored while input is
// not allowed.
func (c *ButtonContainer) HandleInput(in system.InputState) {
	if !c.inputAllowed || len(c.buttons) == 0 {
		return
	}

	switch {
	case in.Up:
		c.SetIndex(c.index - 1)
	case in.Down:
		c.SetIndex(c.index + 1)
	}

	mx, my := in.MouseX, in.MouseY-c.offsetY
	if in.MouseMoved || in.MouseClick {
		for i, b := range c.buttons {
			if b.Contains(mx, my) {
				c.SetIndex(i)
				break
			}
		}
	}

	selected := in.Enter || (in.MouseClick && c.Focused().Contains(mx, my))
	if selected && c.OnButtonSelected != nil {
		c.OnButtonSelected(c.Focused())
	}
}

// SetIndex focuses the button at i, wrapping around both ends.
func (c *ButtonContainer) SetIndex(i int) {
	if len(c.buttons) == 0 {
		return
	}
	i = wrap(i, len(c.buttons))
	if i == c.index {
		return
	}

	c.buttons[c.index].SetState(ButtonInactive)
	c.index = i
	c.buttons[c.index].SetState(ButtonActive)

	if c.OnIndexChanged != nil {
		c.OnIndexChanged(c.buttons[c.index])
	}
}

// Update advances every button.
func (c *ButtonContainer) Update(dt float64) {
	for _, b := range c.buttons {
		b.Update(dt)
	}
}

// Draw draws every button.
func (c *ButtonContainer) Draw(dst *ebiten.Image) {
	for _, b := range c.buttons {
		b.Draw(dst, c.offsetY)
	}
}

// SetInputAllowed enables or disables HandleInput.
func (c *ButtonContainer) SetInputAllowed(allowed bool) {
	c.inputAllowed = allowed
}

// InputAllowed reports whether HandleInput is enabled.
func (c *ButtonContainer) InputAllowed() bool {
	return c.inputAllowed
}

// Focused returns the focused button, or nil for an empty container.
func (c *ButtonContainer) Focused() *Button {
	if len(c.buttons) == 0 {
		return nil
	}
	return c.buttons[c.index]
}

// Index returns the focused index.
func (c *ButtonContainer) Index() int {
	return c.index
}

// Len returns the number of buttons.
func (c *ButtonContainer) Len() int {
	return len(c.buttons)
}

// Bounds returns the area covered by all buttons.
func (c *ButtonContainer) Bounds() image.Rectangle {
	var r image.Rectangle
	for _, b := range c.buttons {
		r = r.Union(b.Rect())
	}
	return r
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
