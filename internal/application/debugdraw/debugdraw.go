// Package debugdraw queues debug primitives during Update and draws them
// once, bucketed by layer, at the end of the frame.
package debugdraw

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// LayerCount is the number of layers. Layer 0 is drawn first.
const LayerCount = 7

// TopLayer is the last layer drawn.
const TopLayer = LayerCount - 1

// Command is one queued debug primitive.
type Command interface {
	Draw(dst *ebiten.Image)
}

// DebugDraw is a per-frame queue of debug commands.
type DebugDraw struct {
	layers  [LayerCount][]Command
	enabled bool
}

// New creates a queue. A disabled queue drops everything added to it.
func New(enabled bool) *DebugDraw {
	return &DebugDraw{enabled: enabled}
}

// Add queues cmd on layer. Layers outside 0..TopLayer are clamped.
func (d *DebugDraw) Add(layer int, cmd Command) {
	if !d.enabled || cmd == nil {
		return
	}
	layer = min(max(layer, 0), TopLayer)
	d.layers[layer] = append(d.layers[layer], cmd)
}

// Draw draws every layer like DrawLayers, then empties the queue.
func (d *DebugDraw) Draw(dst *ebiten.Image) {
	d.DrawLayers(dst)
	d.Clear()
}

// DrawLayers draws every layer in order, commands in the order they were
// added. The queue is kept, so the same frame can be drawn again.
func (d *DebugDraw) DrawLayers(dst *ebiten.Image) {
	for i := range d.layers {
		for _, cmd := range d.layers[i] {
			cmd.Draw(dst)
		}
	}
}

// Clear empties the queue without drawing.
func (d *DebugDraw) Clear() {
	for i := range d.layers {
		clear(d.layers[i])
		d.layers[i] = d.layers[i][:0]
	}
}

// Len returns the number of queued commands.
func (d *DebugDraw) Len() int {
	n := 0
	for i := range d.layers {
		n += len(d.layers[i])
	}
	return n
}

// Layer returns the commands queued on layer.
func (d *DebugDraw) Layer(layer int) []Command {
	if layer < 0 || layer > TopLayer {
		return nil
	}
	return d.layers[layer]
}

// Enabled reports whether commands are being queued.
func (d *DebugDraw) Enabled() bool {
	return d.enabled
}

// SetEnabled turns queueing on or off. Disabling drops queued commands.
func (d *DebugDraw) SetEnabled(enabled bool) {
	d.enabled = enabled
	if !enabled {
		d.Clear()
	}
}

// Toggle flips Enabled.
func (d *DebugDraw) Toggle() {
	d.SetEnabled(!d.enabled)
}
