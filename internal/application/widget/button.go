package widget

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/pixelmenu/internal/application/pixelfont"
)

// Button colors
var (
	colorInactiveBody = color.RGBA{0x00, 0x0f, 0x28, 0xff}
	colorInactiveLine = color.RGBA{0x00, 0x4a, 0x89, 0xff}
	colorInactiveText = color.RGBA{0xba, 0xc3, 0xd2, 0xff}

	colorActiveBody = color.RGBA{0x12, 0x6a, 0x9c, 0xff}
	colorActiveLine = color.RGBA{0x18, 0x96, 0xea, 0xff}
	colorActiveText = color.RGBA{0xfe, 0xff, 0xff, 0xff}
)

const (
	// HighlightDuration is how long the active highlight takes to fade, in seconds.
	HighlightDuration = 0.3
	// HighlightMaxAlpha is the alpha of a fully shown highlight.
	HighlightMaxAlpha = 225

	descriptionBottomPadding = 2
)

// ButtonState is the visual state of a Button.
type ButtonState int

const (
	ButtonInactive ButtonState = iota
	ButtonActive
)

// Button is a labelled menu entry with an animated highlight and a
// description shown while it is active. Buttons live in a ButtonContainer.
type Button struct {
	Label       string
	Description string

	rect        image.Rectangle
	labelOffset image.Point
	state       ButtonState

	body      *ebiten.Image
	highlight *Curtain
}

// NewButton creates an inactive button of the given size at topLeft.
// The label is drawn at labelOffset inside the button.
func NewButton(width, height int, topLeft image.Point, label string, labelOffset image.Point, description string) *Button {
	b := &Button{
		Label:       label,
		Description: description,
		rect:        image.Rectangle{Min: topLeft, Max: topLeft.Add(image.Pt(width, height))},
		labelOffset: labelOffset,
		state:       ButtonInactive,
	}

	b.body = ebiten.NewImage(width, height)
	b.body.Fill(colorInactiveBody)
	vector.DrawFilledRect(b.body, 0, 0, 1, float32(height), colorInactiveLine, false)
	pixelfont.Draw(b.body, label, labelOffset.X, labelOffset.Y, colorInactiveText)

	// The highlight is one pixel wider and hangs one pixel to the left.
	surf := ebiten.NewImage(width+1, height)
	surf.Fill(colorActiveBody)
	vector.DrawFilledRect(surf, 0, 0, 1, float32(height), colorActiveText, false)
	vector.DrawFilledRect(surf, 1, 0, 1, float32(height), colorActiveLine, false)
	pixelfont.Draw(surf, label, labelOffset.X, labelOffset.Y, colorActiveText)

	b.highlight = NewCurtain(HighlightDuration, CurtainInvisible, HighlightMaxAlpha, surf)
	b.placeHighlight()

	return b
}

// Update advances the highlight fade.
func (b *Button) Update(dt float64) {
	b.highlight.Update(dt)
}

// Draw draws the button shifted down by yOffset. While active, the
// description is drawn centred at the bottom of dst.
func (b *Button) Draw(dst *ebiten.Image, yOffset int) {
	if b.state == ButtonActive {
		bounds := dst.Bounds()
		size := pixelfont.Size(b.Description)
		x := bounds.Min.X + (bounds.Dx()-size.X)/2
		y := bounds.Max.Y - size.Y - descriptionBottomPadding
		pixelfont.Draw(dst, b.Description, x, y, colorActiveText)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(b.rect.Min.X), float64(b.rect.Min.Y+yOffset))
	dst.DrawImage(b.body, op)
	b.highlight.Draw(dst, float64(yOffset))
}

// SetState changes the state, fading the highlight in or out on a change.
func (b *Button) SetState(state ButtonState) {
	old := b.state
	b.state = state

	switch {
	case old == ButtonInactive && state == ButtonActive:
		b.highlight.GoToOpaque()
	case old == ButtonActive && state == ButtonInactive:
		b.highlight.GoToInvisible()
	}
}

// State returns the current state.
func (b *Button) State() ButtonState {
	return b.state
}

// Rect returns the button rectangle without any draw offset.
func (b *Button) Rect() image.Rectangle {
	return b.rect
}

// SetPosition moves the button so its top-left is at p.
func (b *Button) SetPosition(p image.Point) {
	b.rect = b.rect.Add(p.Sub(b.rect.Min))
	b.placeHighlight()
}

// Contains reports whether (x, y) is inside the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.rect)
}

// HighlightAlpha returns the current highlight alpha in 0..255.
func (b *Button) HighlightAlpha() float64 {
	return b.highlight.Alpha()
}

func (b *Button) placeHighlight() {
	b.highlight.X = float64(b.rect.Min.X - 1)
	b.highlight.Y = float64(b.rect.Min.Y)
}
