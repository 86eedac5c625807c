package anim

import "fyne.io/fyne/v2"

// Easing maps linear progress in [0,1] to eased progress. It shares its shape
// with fyne.AnimationCurve so the toolkit's stock curves can be used directly.
type Easing = fyne.AnimationCurve

// backOvershoot is the standard "back" easing constant (about 10% overshoot)
const backOvershoot = 1.70158

var (
	// Linear keeps progress unchanged
	Linear Easing = fyne.AnimationLinear

	// OutBack overshoots the target and settles back onto it
	OutBack Easing = func(t float32) float32 {
		t--
		return t*t*((backOvershoot+1)*t+backOvershoot) + 1
	}

	// InOutQuad accelerates through the first half and decelerates through the second
	InOutQuad Easing = func(t float32) float32 {
		if t < 0.5 {
			return 2 * t * t
		}
		u := -2*t + 2
		return 1 - u*u/2
	}
)
