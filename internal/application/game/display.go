package game

import "github.com/hajimehoshi/ebiten/v2"

// WindowDisplay resizes the ebiten window.
type WindowDisplay struct{}

// SetFullscreen implements Display.
func (WindowDisplay) SetFullscreen(fullscreen bool) {
	ebiten.SetFullscreen(fullscreen)
}

// SetWindowSize implements Display.
func (WindowDisplay) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}
