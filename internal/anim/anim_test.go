package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEasingEndpoints(t *testing.T) {
	curves := map[string]Easing{
		"linear":    Linear,
		"outBack":   OutBack,
		"inOutQuad": InOutQuad,
	}
	for name, curve := range curves {
		assert.InDelta(t, 0, curve(0), 1e-6, name)
		assert.InDelta(t, 1, curve(1), 1e-6, name)
	}
}

func TestOutBackOvershoots(t *testing.T) {
	peak := float32(0)
	for i := 0; i <= 100; i++ {
		if v := OutBack(float32(i) / 100); v > peak {
			peak = v
		}
	}
	assert.Greater(t, peak, float32(1.05))
}

func TestInOutQuadIsSymmetric(t *testing.T) {
	assert.InDelta(t, 0.5, InOutQuad(0.5), 1e-6)
	assert.InDelta(t, 1-InOutQuad(0.2), InOutQuad(0.8), 1e-6)
}

func TestPropertyReachesTarget(t *testing.T) {
	p := NewProperty(0, 250*time.Millisecond, Linear)
	p.AnimateTo(1)
	require.True(t, p.Running())

	assert.True(t, p.Step(125*time.Millisecond))
	assert.InDelta(t, 0.5, p.Value(), 1e-9)

	assert.False(t, p.Step(200*time.Millisecond))
	assert.Equal(t, 1.0, p.Value())
	assert.False(t, p.Running())
}

func TestPropertyRetargetRestartsFromCurrentValue(t *testing.T) {
	p := NewProperty(0, 100*time.Millisecond, Linear)
	p.AnimateTo(1)
	p.Step(50 * time.Millisecond)

	p.AnimateTo(0)
	assert.Equal(t, 0.0, p.Target())
	assert.InDelta(t, 0.5, p.Value(), 1e-9)

	p.Step(50 * time.Millisecond)
	assert.InDelta(t, 0.25, p.Value(), 1e-9)
}

func TestPropertyZeroDurationJumps(t *testing.T) {
	p := NewProperty(0, 0, nil)
	p.AnimateTo(3)
	assert.False(t, p.Running())
	assert.Equal(t, 3.0, p.Value())
}

func TestPropertyStepWhenIdle(t *testing.T) {
	p := NewProperty(2, time.Second, Linear)
	assert.False(t, p.Step(time.Second))
	assert.Equal(t, 2.0, p.Value())
}

func TestRectProperty(t *testing.T) {
	from := Rect{X: 10, Y: 12, W: 220, H: 38}
	to := Rect{X: 0, Y: 12, W: 650, H: 90}

	p := NewRectProperty(from, 400*time.Millisecond, Linear)
	p.AnimateTo(to)
	p.Step(200 * time.Millisecond)

	mid := p.Value()
	assert.InDelta(t, 5, mid.X, 1e-9)
	assert.InDelta(t, 435, mid.W, 1e-9)

	p.AnimateTo(from)
	assert.Equal(t, from, p.Target())
	assert.Equal(t, mid, p.Value())

	for p.Step(16 * time.Millisecond) {
	}
	assert.Equal(t, from, p.Value())
}

func TestRectPropertyTranslateKeepsAnimating(t *testing.T) {
	from := Rect{X: 10, Y: 12, W: 220, H: 38}
	to := Rect{X: 0, Y: 12, W: 650, H: 90}

	p := NewRectProperty(from, 400*time.Millisecond, Linear)
	p.AnimateTo(to)
	p.Step(200 * time.Millisecond)
	mid := p.Value()

	p.Translate(20, 5)
	assert.True(t, p.Running())
	assert.Equal(t, Rect{X: mid.X + 20, Y: mid.Y + 5, W: mid.W, H: mid.H}, p.Value())
	assert.Equal(t, Rect{X: 20, Y: 17, W: 650, H: 90}, p.Target())

	for p.Step(16 * time.Millisecond) {
	}
	assert.Equal(t, Rect{X: 20, Y: 17, W: 650, H: 90}, p.Value())
}

func TestRectContainsAndInflate(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, r.Contains(0, 0))
	assert.False(t, r.Contains(10, 5))

	big := r.Inflate(1.5)
	assert.Equal(t, Rect{X: -1.5, Y: -1.5, W: 13, H: 13}, big)
}

func TestOneShotFiresOnce(t *testing.T) {
	timer := NewOneShot(3 * time.Second)
	assert.False(t, timer.Step(time.Hour), "disarmed timer must not fire")

	timer.Arm()
	assert.False(t, timer.Step(2*time.Second))
	assert.True(t, timer.Step(time.Second))
	assert.False(t, timer.Armed())
	assert.False(t, timer.Step(10*time.Second), "timer must not re-fire without Arm")
}

func TestOneShotRearmRestartsCountdown(t *testing.T) {
	timer := NewOneShot(time.Second)
	timer.Arm()
	timer.Step(900 * time.Millisecond)
	timer.Arm()
	assert.False(t, timer.Step(900*time.Millisecond))
	assert.True(t, timer.Step(100*time.Millisecond))
}

func TestOneShotDisarm(t *testing.T) {
	timer := NewOneShot(time.Second)
	timer.Arm()
	timer.Disarm()
	assert.False(t, timer.Step(2*time.Second))

	timer.SetInterval(500 * time.Millisecond)
	timer.Arm()
	assert.True(t, timer.Step(500*time.Millisecond))
	assert.Equal(t, 500*time.Millisecond, timer.Interval())
}
