package widget

import "github.com/hajimehoshi/ebiten/v2"

// CurtainState is the resting state of a Curtain.
type CurtainState int

const (
	CurtainInvisible CurtainState = iota
	CurtainOpaque
)

type fade int

const (
	fadeNone fade = iota
	fadeToOpaque
	fadeToInvisible
)

// Curtain fades a surface between invisible and its max alpha.
//
// Fades run at a constant rate of maxAlpha per duration, so reversing a
// fade half way takes half the duration.
type Curtain struct {
	OnOpaqueStart    func()
	OnOpaqueEnd      func()
	OnInvisibleStart func()
	OnInvisibleEnd   func()

	// Surface is drawn with the current alpha. It may be nil for a curtain
	// used only as an alpha source.
	Surface *ebiten.Image

	// X and Y are the top-left position Surface is drawn at.
	X, Y float64

	duration float64
	maxAlpha float64
	alpha    float64
	fade     fade
}

// NewCurtain creates a curtain resting at start.
// duration is in seconds, maxAlpha in 0..255.
func NewCurtain(duration float64, start CurtainState, maxAlpha uint8, surface *ebiten.Image) *Curtain {
	c := &Curtain{
		Surface:  surface,
		duration: max(duration, 0),
		maxAlpha: float64(maxAlpha),
	}
	c.Set(start)
	return c
}

// Set snaps the curtain to state, cancelling any fade. No events fire.
func (c *Curtain) Set(state CurtainState) {
	c.fade = fadeNone
	if state == CurtainOpaque {
		c.alpha = c.maxAlpha
	} else {
		c.alpha = 0
	}
}

// GoToOpaque starts fading towards max alpha from the current alpha.
func (c *Curtain) GoToOpaque() {
	c.fade = fadeToOpaque
	if c.OnOpaqueStart != nil {
		c.OnOpaqueStart()
	}
}

// GoToInvisible starts fading towards zero alpha from the current alpha.
func (c *Curtain) GoToInvisible() {
	c.fade = fadeToInvisible
	if c.OnInvisibleStart != nil {
		c.OnInvisibleStart()
	}
}

// Update advances the running fade by dt seconds.
func (c *Curtain) Update(dt float64) {
	step := c.maxAlpha
	if c.duration > 0 {
		step = c.maxAlpha * dt / c.duration
	}

	switch c.fade {
	case fadeToOpaque:
		c.alpha += step
		if c.alpha < c.maxAlpha {
			return
		}
		c.alpha = c.maxAlpha
		c.fade = fadeNone
		if c.OnOpaqueEnd != nil {
			c.OnOpaqueEnd()
		}

	case fadeToInvisible:
		c.alpha -= step
		if c.alpha > 0 {
			return
		}
		c.alpha = 0
		c.fade = fadeNone
		if c.OnInvisibleEnd != nil {
			c.OnInvisibleEnd()
		}
	}
}

// Draw draws Surface onto dst with the current alpha, shifted down by yOffset.
func (c *Curtain) Draw(dst *ebiten.Image, yOffset float64) {
	if c.Surface == nil || c.alpha <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(c.X, c.Y+yOffset)
	op.ColorScale.ScaleAlpha(float32(c.alpha / 255))
	dst.DrawImage(c.Surface, op)
}

// Alpha returns the current alpha in 0..255.
func (c *Curtain) Alpha() float64 {
	return c.alpha
}

// Ratio returns the current alpha as a fraction of 255.
func (c *Curtain) Ratio() float32 {
	return float32(c.alpha / 255)
}

// IsFading reports whether a fade is running.
func (c *Curtain) IsFading() bool {
	return c.fade != fadeNone
}

// IsOpaque reports whether the curtain rests at max alpha.
func (c *Curtain) IsOpaque() bool {
	return c.fade == fadeNone && c.alpha >= c.maxAlpha
}

// IsInvisible reports whether the curtain rests at zero alpha.
func (c *Curtain) IsInvisible() bool {
	return c.fade == fadeNone && c.alpha <= 0
}
