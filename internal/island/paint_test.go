package island

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/dynamic-island/internal/anim"
)

func TestPaintIslandCollapsed(t *testing.T) {
	v := VisualState{
		CornerRadius: CornerRadius,
		Bounds:       anim.Rect{X: 100, Y: 12, W: 220, H: 38},
	}
	p := PaintIsland(v)

	assert.Equal(t, color.NRGBA{R: 6, G: 6, B: 6, A: 245}, p.Fill)
	assert.Equal(t, IslandStroke, p.Stroke)
	assert.Equal(t, uint8(18), p.HighlightPeak.A)
	assert.Equal(t, [2]float64{136, 13}, p.HighlightFrom)
	assert.Equal(t, [2]float64{284, 13}, p.HighlightTo)

	require.Len(t, p.Shadows, ShadowLayers)
	wantInflate := []float64{6, 4, 3, 1}
	wantAlpha := []uint8{20, 35, 50, 65}
	for i, s := range p.Shadows {
		assert.Equal(t, v.Bounds.Inflate(wantInflate[i]), s.Bounds)
		assert.Equal(t, CornerRadius+wantInflate[i], s.Radius)
		assert.Equal(t, wantAlpha[i], s.Color.A)
	}
}

func TestPaintIslandExpandedIsLighter(t *testing.T) {
	p := PaintIsland(VisualState{
		BackgroundLightness: ExpandedLightness,
		CornerRadius:        CornerRadius,
		Bounds:              anim.Rect{W: 650, H: 90},
	})
	assert.Equal(t, uint8(8), p.Fill.R)
	assert.Equal(t, uint8(19), p.HighlightPeak.A)
}

func TestPaintControl(t *testing.T) {
	accent := color.NRGBA{R: 37, G: 211, B: 102, A: 255}
	c := NewControl("W", "WhatsApp", nil, accent)

	p := PaintControl(c)
	assert.Equal(t, [2]float64{27, 27}, p.Center)
	assert.Equal(t, 23.0, p.Radius)
	assert.Equal(t, ControlFill, p.Fill)
	assert.Equal(t, float64(GlyphSize), p.GlyphSize)
	assert.False(t, p.GlowVisible)

	c.PointerEnter()
	settleControl(c)
	p = PaintControl(c)
	assert.InDelta(t, 23*HoverScale, p.Radius, 1e-9)
	assert.Equal(t, ControlFillLit, p.Fill)
	assert.True(t, p.GlowVisible)
	assert.InDelta(t, 23*HoverScale*GlowRadiusFactor, p.GlowRadius, 1e-9)
	assert.Equal(t, uint8(89), p.GlowInner.A)
	assert.Equal(t, accent.R, p.GlowInner.R)
	assert.Equal(t, uint8(0), p.GlowOuter.A)
}

func TestBlendAccent(t *testing.T) {
	accent := color.NRGBA{R: 0, G: 0, B: 0, A: 200}
	assert.Equal(t, accent, BlendAccent(accent, 0))

	white := BlendAccent(accent, 1)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 200}, white)
}
