package anim

import "time"

// Rect is an axis-aligned rectangle in logical pixels
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inflate grows the rectangle by d on every side
func (r Rect) Inflate(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// LerpRect interpolates every edge of two rectangles
func LerpRect(a, b Rect, t float64) Rect {
	return Rect{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
		W: Lerp(a.W, b.W, t),
		H: Lerp(a.H, b.H, t),
	}
}

// RectProperty animates a rectangle with a single easing curve. Like Property,
// a new target replaces the running animation and starts from the current rect.
type RectProperty struct {
	progress *Property
	from     Rect
	to       Rect
	current  Rect
}

// NewRectProperty creates a rect property at rest on r
func NewRectProperty(r Rect, duration time.Duration, easing Easing) *RectProperty {
	return &RectProperty{
		progress: NewProperty(1, duration, easing),
		from:     r,
		to:       r,
		current:  r,
	}
}

// Value returns the current rectangle
func (p *RectProperty) Value() Rect {
	return p.current
}

// Target returns the rectangle being animated to
func (p *RectProperty) Target() Rect {
	return p.to
}

// Running reports whether an animation is in flight
func (p *RectProperty) Running() bool {
	return p.progress.Running()
}

// Set jumps to r and cancels any running animation
func (p *RectProperty) Set(r Rect) {
	p.progress.Set(1)
	p.from, p.to, p.current = r, r, r
}

// Translate shifts the start, target and current rectangles by dx, dy. A
// running animation keeps going; only its position changes.
func (p *RectProperty) Translate(dx, dy float64) {
	p.from.X, p.from.Y = p.from.X+dx, p.from.Y+dy
	p.to.X, p.to.Y = p.to.X+dx, p.to.Y+dy
	p.current.X, p.current.Y = p.current.X+dx, p.current.Y+dy
}

// AnimateTo starts an animation from the current rectangle toward target
func (p *RectProperty) AnimateTo(target Rect) {
	p.from = p.current
	p.to = target
	p.progress.Set(0)
	p.progress.AnimateTo(1)
	if !p.progress.Running() {
		p.current = target
	}
}

// Step advances the animation by dt and returns true while it is still running
func (p *RectProperty) Step(dt time.Duration) bool {
	if !p.progress.Running() {
		return false
	}
	if !p.progress.Step(dt) {
		p.current = p.to
		return false
	}
	p.current = LerpRect(p.from, p.to, p.progress.Value())
	return true
}
