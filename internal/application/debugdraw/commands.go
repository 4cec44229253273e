package debugdraw

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/pixelmenu/internal/application/pixelfont"
)

// Text is white text on a black box.
type Text struct {
	X, Y int
	Text string
}

// Draw implements Command.
func (c Text) Draw(dst *ebiten.Image) {
	size := pixelfont.Size(c.Text)
	vector.DrawFilledRect(dst, float32(c.X), float32(c.Y), float32(size.X), float32(size.Y), color.Black, false)
	pixelfont.Draw(dst, c.Text, c.X, c.Y, color.White)
}

// Rect is a rectangle outline of Width pixels, or a filled rectangle when Width is 0.
type Rect struct {
	Rect  image.Rectangle
	Color color.Color
	Width float32
}

// Draw implements Command.
func (c Rect) Draw(dst *ebiten.Image) {
	x, y := float32(c.Rect.Min.X), float32(c.Rect.Min.Y)
	w, h := float32(c.Rect.Dx()), float32(c.Rect.Dy())
	if c.Width <= 0 {
		vector.DrawFilledRect(dst, x, y, w, h, c.Color, false)
		return
	}
	vector.StrokeRect(dst, x, y, w, h, c.Width, c.Color, false)
}

// Line is a straight line.
type Line struct {
	Start, End image.Point
	Color      color.Color
	Width      float32
}

// Draw implements Command.
func (c Line) Draw(dst *ebiten.Image) {
	width := c.Width
	if width <= 0 {
		width = 1
	}
	vector.StrokeLine(dst,
		float32(c.Start.X), float32(c.Start.Y),
		float32(c.End.X), float32(c.End.Y),
		width, c.Color, false)
}

// Circle is a filled circle.
type Circle struct {
	Center image.Point
	Radius float32
	Color  color.Color
}

// Draw implements Command.
func (c Circle) Draw(dst *ebiten.Image) {
	vector.DrawFilledCircle(dst, float32(c.Center.X), float32(c.Center.Y), c.Radius, c.Color, false)
}

// Image blits an image with its top-left at (X, Y).
type Image struct {
	X, Y  int
	Image *ebiten.Image
}

// Draw implements Command.
func (c Image) Draw(dst *ebiten.Image) {
	if c.Image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(c.X), float64(c.Y))
	dst.DrawImage(c.Image, op)
}
