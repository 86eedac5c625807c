package island

import (
	"image/color"
	"time"

	"github.com/ytget/dynamic-island/internal/anim"
)

// Control sizes
const (
	ControlSize      = 54
	SmallControlSize = 40
	MediaPlaySize    = 44
	GlyphSize        = 28
)

// Control animation timings and targets
const (
	ScaleDuration = 150 * time.Millisecond
	GlowDuration  = 200 * time.Millisecond

	HoverScale   = 1.15
	RestScale    = 1.0
	PressedScale = 0.92
)

// Control is the state of one animated button: a scale and a glow property
// plus the pressed flag. It knows nothing about pixels beyond its own size.
type Control struct {
	Label  string
	Glyph  string
	Accent color.NRGBA
	Size   float64

	activate func()

	scale   *anim.Property
	glow    *anim.Property
	pressed bool
	hovered bool
}

// NewControl creates a control at rest
func NewControl(glyph, label string, activate func(), accent color.NRGBA) *Control {
	return &Control{
		Label:    label,
		Glyph:    glyph,
		Accent:   accent,
		Size:     ControlSize,
		activate: activate,
		scale:    anim.NewProperty(RestScale, ScaleDuration, anim.OutBack),
		glow:     anim.NewProperty(0, GlowDuration, anim.InOutQuad),
	}
}

// WithSize overrides the default control size
func (c *Control) WithSize(size float64) *Control {
	c.Size = size
	return c
}

// Scale returns the current scale
func (c *Control) Scale() float64 {
	return c.scale.Value()
}

// Glow returns the current glow in [0,1]
func (c *Control) Glow() float64 {
	return c.glow.Value()
}

// Pressed reports whether a press is in progress
func (c *Control) Pressed() bool {
	return c.pressed
}

// Hovered reports whether the pointer is over the control
func (c *Control) Hovered() bool {
	return c.hovered
}

// Animating reports whether scale or glow is in flight
func (c *Control) Animating() bool {
	return c.scale.Running() || c.glow.Running()
}

// PointerEnter grows the control and lights its glow
func (c *Control) PointerEnter() {
	c.hovered = true
	c.scale.AnimateTo(HoverScale)
	c.glow.AnimateTo(1)
}

// PointerLeave reverses PointerEnter
func (c *Control) PointerLeave() {
	c.hovered = false
	c.scale.AnimateTo(RestScale)
	c.glow.AnimateTo(0)
}

// Press shrinks the control, interrupting any scale animation
func (c *Control) Press() {
	c.pressed = true
	c.scale.AnimateTo(PressedScale)
}

// Release finishes a press. inside tells whether the release happened within
// the control's bounds; only then does the activation callback run.
func (c *Control) Release(inside bool) {
	if !c.pressed {
		return
	}
	c.pressed = false
	c.hovered = inside
	if inside {
		c.scale.AnimateTo(HoverScale)
	} else {
		c.scale.AnimateTo(RestScale)
	}
	if inside && c.activate != nil {
		c.activate()
	}
}

// Step advances both animations and returns true while either is running
func (c *Control) Step(dt time.Duration) bool {
	s := c.scale.Step(dt)
	g := c.glow.Step(dt)
	return s || g
}
