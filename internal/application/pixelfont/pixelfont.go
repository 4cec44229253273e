// Package pixelfont provides the bitmap font shared by every menu widget.
package pixelfont

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Face is the pixel font face used for all menu text.
var Face text.Face = text.NewGoXFace(bitmapfont.Face)

// LineHeight returns the height of one line of text in pixels.
func LineHeight() int {
	m := Face.Metrics()
	return int(math.Ceil(m.HAscent + m.HDescent))
}

// Size returns the size of s rendered with Face.
func Size(s string) image.Point {
	w, _ := text.Measure(s, Face, 0)
	return image.Pt(int(math.Ceil(w)), LineHeight())
}

// Draw renders s with its top-left corner at (x, y).
func Draw(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	DrawAlpha(dst, s, x, y, clr, 1)
}

// DrawAlpha renders s like Draw, additionally scaled by alpha in [0, 1].
func DrawAlpha(dst *ebiten.Image, s string, x, y int, clr color.Color, alpha float32) {
	if s == "" || alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(dst, s, Face, op)
}
