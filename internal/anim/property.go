package anim

import "time"

// Property is an animatable scalar. At most one animation runs per property:
// AnimateTo stops whatever is in flight and restarts from the current value.
type Property struct {
	value float64

	start    float64
	end      float64
	duration time.Duration
	elapsed  time.Duration
	easing   Easing
	running  bool
}

// NewProperty creates a property at rest on value
func NewProperty(value float64, duration time.Duration, easing Easing) *Property {
	if easing == nil {
		easing = Linear
	}
	return &Property{
		value:    value,
		start:    value,
		end:      value,
		duration: duration,
		easing:   easing,
	}
}

// Value returns the current value
func (p *Property) Value() float64 {
	return p.value
}

// Target returns the value the property is heading to (its value when at rest)
func (p *Property) Target() float64 {
	return p.end
}

// Running reports whether an animation is in flight
func (p *Property) Running() bool {
	return p.running
}

// Set jumps to value and cancels any running animation
func (p *Property) Set(value float64) {
	p.value = value
	p.start = value
	p.end = value
	p.elapsed = 0
	p.running = false
}

// AnimateTo starts an animation from the current value toward target
func (p *Property) AnimateTo(target float64) {
	p.start = p.value
	p.end = target
	p.elapsed = 0
	p.running = true
	if p.duration <= 0 {
		p.finish()
	}
}

// Stop freezes the property at its current value
func (p *Property) Stop() {
	p.running = false
	p.start = p.value
	p.end = p.value
}

// Step advances the animation by dt and returns true while it is still running
func (p *Property) Step(dt time.Duration) bool {
	if !p.running {
		return false
	}
	p.elapsed += dt
	if p.elapsed >= p.duration {
		p.finish()
		return false
	}
	progress := float32(float64(p.elapsed) / float64(p.duration))
	p.value = Lerp(p.start, p.end, float64(p.easing(progress)))
	return true
}

func (p *Property) finish() {
	p.value = p.end
	p.start = p.end
	p.elapsed = p.duration
	p.running = false
}

// Lerp interpolates linearly between a and b; t outside [0,1] extrapolates
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
