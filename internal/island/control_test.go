package island

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func settleControl(c *Control) {
	for i := 0; i < 100 && c.Step(frame); i++ {
	}
}

func TestControlHoverGrowsAndGlows(t *testing.T) {
	c := NewControl("▶", "Play", nil, color.NRGBA{R: 255, A: 255})
	assert.Equal(t, RestScale, c.Scale())
	assert.Equal(t, 0.0, c.Glow())

	c.PointerEnter()
	assert.True(t, c.Hovered())
	settleControl(c)
	assert.Equal(t, HoverScale, c.Scale())
	assert.Equal(t, 1.0, c.Glow())

	c.PointerLeave()
	settleControl(c)
	assert.Equal(t, RestScale, c.Scale())
	assert.Equal(t, 0.0, c.Glow())
	assert.False(t, c.Animating())
}

func TestControlReleaseInsideActivatesOnce(t *testing.T) {
	calls := 0
	c := NewControl("▶", "Play", func() { calls++ }, color.NRGBA{A: 255})

	c.PointerEnter()
	c.Press()
	assert.True(t, c.Pressed())
	settleControl(c)
	assert.Equal(t, PressedScale, c.Scale())

	c.Release(true)
	c.Release(true)
	assert.Equal(t, 1, calls)
	assert.False(t, c.Pressed())

	settleControl(c)
	assert.Equal(t, HoverScale, c.Scale())
}

func TestControlReleaseOutsideDoesNotActivate(t *testing.T) {
	calls := 0
	c := NewControl("▶", "Play", func() { calls++ }, color.NRGBA{A: 255})

	c.PointerEnter()
	c.Press()
	c.Release(false)
	settleControl(c)

	assert.Equal(t, 0, calls)
	assert.False(t, c.Hovered())
	assert.Equal(t, RestScale, c.Scale())
}

func TestControlReleaseWithoutPressIsIgnored(t *testing.T) {
	calls := 0
	c := NewControl("▶", "Play", func() { calls++ }, color.NRGBA{A: 255})
	c.Release(true)
	assert.Equal(t, 0, calls)
}

func TestControlPressInterruptsHover(t *testing.T) {
	c := NewControl("▶", "Play", nil, color.NRGBA{A: 255})
	c.PointerEnter()
	c.Step(50 * time.Millisecond)
	mid := c.Scale()
	assert.Greater(t, mid, RestScale)

	c.Press()
	assert.Equal(t, mid, c.Scale())
	c.Step(frame)
	assert.Less(t, c.Scale(), mid)
}

func TestControlWithSize(t *testing.T) {
	c := NewControl("⏭", "Next", nil, color.NRGBA{A: 255}).WithSize(SmallControlSize)
	assert.Equal(t, float64(SmallControlSize), c.Size)
}
