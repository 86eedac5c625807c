package island

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ytget/dynamic-island/internal/anim"
)

// Island palette
var (
	IslandStroke      = color.NRGBA{R: 60, G: 60, B: 65, A: 255}
	ControlFill       = color.NRGBA{R: 40, G: 40, B: 42, A: 255}
	ControlFillLit    = color.NRGBA{R: 55, G: 55, B: 58, A: 255}
	ControlStroke     = color.NRGBA{R: 80, G: 80, B: 85, A: 255}
	transparentBlack  = color.NRGBA{}
	transparentWhite  = color.NRGBA{R: 255, G: 255, B: 255}
	islandBackgroundA = uint8(245)
)

// Paint constants
const (
	IslandStrokeWidth  = 0.8
	ControlStrokeWidth = 1.2
	ShadowLayers       = 4
	ShadowSpread       = 1.5
	GlowThreshold      = 0.01
	GlowRadiusFactor   = 1.6
	GlowMaxAlpha       = 0.35
	ControlInset       = 4
)

// ShadowLayer is one inflated copy of the rounded rectangle drawn under the island
type ShadowLayer struct {
	Bounds anim.Rect
	Radius float64
	Color  color.NRGBA
}

// IslandPaint describes how to draw the island body, outermost shadow first
type IslandPaint struct {
	Shadows     []ShadowLayer
	Bounds      anim.Rect
	Radius      float64
	Fill        color.NRGBA
	Stroke      color.NRGBA
	StrokeWidth float64

	// Highlight is a 1px horizontal line near the top edge that fades in from
	// transparent at both ends to HighlightPeak in the middle.
	HighlightFrom [2]float64
	HighlightTo   [2]float64
	HighlightPeak color.NRGBA
	HighlightEdge color.NRGBA
}

// PaintIsland turns a visual state into drawing instructions
func PaintIsland(v VisualState) IslandPaint {
	b := v.Bounds
	r := v.CornerRadius
	base := uint8(math.Round(6 + 18*v.BackgroundLightness))

	p := IslandPaint{
		Bounds:        b,
		Radius:        r,
		Fill:          color.NRGBA{R: base, G: base, B: base, A: islandBackgroundA},
		Stroke:        IslandStroke,
		StrokeWidth:   IslandStrokeWidth,
		HighlightFrom: [2]float64{b.X + r, b.Y + 1},
		HighlightTo:   [2]float64{b.X + b.W - r, b.Y + 1},
		HighlightEdge: transparentWhite,
		HighlightPeak: color.NRGBA{
			R: 255, G: 255, B: 255,
			A: uint8(math.Round(18 + 12*v.BackgroundLightness)),
		},
	}

	for i := ShadowLayers; i >= 1; i-- {
		inflate := math.Floor(float64(i) * ShadowSpread)
		p.Shadows = append(p.Shadows, ShadowLayer{
			Bounds: b.Inflate(inflate),
			Radius: r + inflate,
			Color:  color.NRGBA{A: uint8(20 + 15*(ShadowLayers-i))},
		})
	}
	return p
}

// ControlPaint describes how to draw one control centred in its square
type ControlPaint struct {
	Center      [2]float64
	Radius      float64
	Fill        color.NRGBA
	Stroke      color.NRGBA
	StrokeWidth float64

	GlowVisible bool
	GlowRadius  float64
	GlowInner   color.NRGBA
	GlowOuter   color.NRGBA

	GlyphSize float64
}

// PaintControl turns a control's state into drawing instructions
func PaintControl(c *Control) ControlPaint {
	scale := c.Scale()
	glow := c.Glow()
	radius := (c.Size/2 - ControlInset) * scale

	p := ControlPaint{
		Center:      [2]float64{c.Size / 2, c.Size / 2},
		Radius:      radius,
		Fill:        ControlFill,
		Stroke:      ControlStroke,
		StrokeWidth: ControlStrokeWidth,
		GlyphSize:   GlyphSize * scale,
	}
	if glow >= 0.5 {
		p.Fill = ControlFillLit
	}
	if glow > GlowThreshold {
		p.GlowVisible = true
		p.GlowRadius = radius * GlowRadiusFactor
		p.GlowInner = withAlpha(c.Accent, GlowMaxAlpha*glow)
		p.GlowOuter = transparentBlack
	}
	return p
}

// BlendAccent mixes an accent color toward white by t; used for hover tints
func BlendAccent(accent color.NRGBA, t float64) color.NRGBA {
	c, _ := colorful.MakeColor(accent)
	r, g, b := c.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, t).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: accent.A}
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(math.Round(alpha * 255))
	return c
}
