package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/dynamic-island/internal/island"
)

// text glyphs fill about 60% of the icon box
const glyphTextScale = 0.6

// GlowButton draws an island.Control: a round button that grows and glows
// while hovered and shrinks while pressed
type GlowButton struct {
	widget.BaseWidget

	control *island.Control
	opacity float64
	dragPos fyne.Position

	// onHover reports pointer enter/leave so the island keeps track of hover
	// while the pointer is over a child
	onHover func(bool)
	// onChange asks the frame driver to run
	onChange func()
}

var (
	_ desktop.Hoverable  = (*GlowButton)(nil)
	_ desktop.Mouseable  = (*GlowButton)(nil)
	_ desktop.Cursorable = (*GlowButton)(nil)
	_ fyne.Draggable     = (*GlowButton)(nil)
)

// NewGlowButton creates a button for control
func NewGlowButton(control *island.Control) *GlowButton {
	b := &GlowButton{control: control, opacity: 1}
	b.ExtendBaseWidget(b)
	return b
}

// Control returns the animated state behind the button
func (b *GlowButton) Control() *island.Control {
	return b.control
}

// SetOpacity fades the whole button; the island uses it for content opacity
func (b *GlowButton) SetOpacity(o float64) {
	if o == b.opacity {
		return
	}
	b.opacity = o
	b.Refresh()
}

// Step advances the control animations and returns true while they run
func (b *GlowButton) Step(dt time.Duration) bool {
	running := b.control.Step(dt)
	b.Refresh()
	return running
}

// MinSize is the control's square
func (b *GlowButton) MinSize() fyne.Size {
	s := float32(b.control.Size)
	return fyne.NewSize(s, s)
}

// MouseIn handles pointer enter
func (b *GlowButton) MouseIn(*desktop.MouseEvent) {
	b.control.PointerEnter()
	if b.onHover != nil {
		b.onHover(true)
	}
	b.changed()
}

// MouseMoved is required by desktop.Hoverable
func (b *GlowButton) MouseMoved(*desktop.MouseEvent) {}

// MouseOut handles pointer leave
func (b *GlowButton) MouseOut() {
	b.control.PointerLeave()
	if b.onHover != nil {
		b.onHover(false)
	}
	b.changed()
}

// MouseDown starts a press with the primary button
func (b *GlowButton) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	b.control.Press()
	b.changed()
}

// MouseUp finishes a press; the action runs when released over the button
func (b *GlowButton) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	b.control.Release(b.contains(ev.Position))
	b.changed()
}

// Dragged keeps a press that moves past the drag threshold on the button, so
// the island does not take it over as a window drag
func (b *GlowButton) Dragged(ev *fyne.DragEvent) {
	b.dragPos = ev.Position
}

// DragEnd finishes a press that turned into a drag; the action runs when the
// pointer ends up over the button
func (b *GlowButton) DragEnd() {
	b.control.Release(b.contains(b.dragPos))
	b.changed()
}

func (b *GlowButton) contains(pos fyne.Position) bool {
	size := b.Size()
	return pos.X >= 0 && pos.Y >= 0 && pos.X <= size.Width && pos.Y <= size.Height
}

// Cursor shows a pointing hand
func (b *GlowButton) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

func (b *GlowButton) changed() {
	if b.onChange != nil {
		b.onChange()
	}
	b.Refresh()
}

// CreateRenderer implements fyne.Widget
func (b *GlowButton) CreateRenderer() fyne.WidgetRenderer {
	glow := canvas.NewRadialGradient(color.Transparent, color.Transparent)
	circle := canvas.NewCircle(island.ControlFill)
	glyph := canvas.NewText(b.control.Glyph, color.White)
	glyph.Alignment = fyne.TextAlignCenter
	caption := canvas.NewText(b.control.Label, CaptionColor)
	caption.Alignment = fyne.TextAlignCenter
	caption.TextSize = CaptionTextSize
	caption.Hide()

	r := &glowButtonRenderer{
		button:  b,
		glow:    glow,
		circle:  circle,
		glyph:   glyph,
		caption: caption,
	}
	r.Refresh()
	return r
}

type glowButtonRenderer struct {
	button *GlowButton
	glow   *canvas.RadialGradient
	circle *canvas.Circle
	glyph  *canvas.Text

	// caption shows the label under the button while it is hovered
	caption *canvas.Text
}

func (r *glowButtonRenderer) Layout(size fyne.Size) {
	p := island.PaintControl(r.button.control)
	cx, cy := size.Width/2, size.Height/2

	radius := float32(p.Radius)
	r.circle.Position1 = fyne.NewPos(cx-radius, cy-radius)
	r.circle.Position2 = fyne.NewPos(cx+radius, cy+radius)

	glowRadius := float32(p.GlowRadius)
	r.glow.Move(fyne.NewPos(cx-glowRadius, cy-glowRadius))
	r.glow.Resize(fyne.NewSquareSize(2 * glowRadius))

	r.glyph.TextSize = float32(p.GlyphSize * glyphTextScale)
	textSize := r.glyph.MinSize()
	r.glyph.Move(fyne.NewPos(cx-textSize.Width/2, cy-textSize.Height/2))
	r.glyph.Resize(textSize)

	captionSize := r.caption.MinSize()
	r.caption.Move(fyne.NewPos(cx-captionSize.Width/2, size.Height+CaptionGap))
	r.caption.Resize(captionSize)
}

func (r *glowButtonRenderer) MinSize() fyne.Size {
	return r.button.MinSize()
}

func (r *glowButtonRenderer) Refresh() {
	p := island.PaintControl(r.button.control)
	o := r.button.opacity

	r.glow.StartColor = fade(p.GlowInner, o)
	r.glow.EndColor = p.GlowOuter
	r.glow.Hidden = !p.GlowVisible

	r.circle.FillColor = fade(p.Fill, o)
	r.circle.StrokeColor = fade(p.Stroke, o)
	r.circle.StrokeWidth = float32(p.StrokeWidth)

	r.glyph.Text = r.button.control.Glyph
	r.glyph.Color = fade(island.BlendAccent(r.button.control.Accent, 0.35*r.button.control.Glow()), o)

	r.caption.Text = r.button.control.Label
	r.caption.Color = fade(CaptionColor, o)
	r.caption.Hidden = !r.button.control.Hovered() || o <= island.GlowThreshold

	r.Layout(r.button.Size())
	canvas.Refresh(r.glow)
	canvas.Refresh(r.circle)
	canvas.Refresh(r.glyph)
	canvas.Refresh(r.caption)
}

func (r *glowButtonRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.glow, r.circle, r.glyph, r.caption}
}

func (r *glowButtonRenderer) Destroy() {}

// fade multiplies the alpha of c by o
func fade(c color.NRGBA, o float64) color.NRGBA {
	if o >= 1 {
		return c
	}
	if o <= 0 {
		c.A = 0
		return c
	}
	c.A = uint8(float64(c.A) * o)
	return c
}
