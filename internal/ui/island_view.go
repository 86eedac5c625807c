package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/dynamic-island/internal/anim"
	"github.com/ytget/dynamic-island/internal/island"
)

// IslandView hosts the island state machine in a Fyne canvas. Its own size
// is the work area the pill centres itself in.
type IslandView struct {
	widget.BaseWidget

	island  *island.Island
	content *fyne.Container
	buttons []*GlowButton

	hovered bool
	ticker  *fyne.Animation
	last    time.Time
	now     func() time.Time
}

var (
	_ desktop.Hoverable = (*IslandView)(nil)
	_ desktop.Mouseable = (*IslandView)(nil)
	_ fyne.Draggable    = (*IslandView)(nil)
)

// NewIslandView wraps is; content is laid out centred inside the pill
func NewIslandView(is *island.Island) *IslandView {
	v := &IslandView{
		island:  is,
		content: NewRow(RowSpacing, RowSideMargin, 0),
		now:     time.Now,
	}
	v.ExtendBaseWidget(v)
	return v
}

// NewRow creates a horizontal row of fixed spacing. margin pads both ends;
// trailing is extra room after the last visible object.
func NewRow(spacing, margin, trailing float32, objects ...fyne.CanvasObject) *fyne.Container {
	return container.New(&rowLayout{spacing: spacing, margin: margin, trailing: trailing}, objects...)
}

// Island returns the state machine
func (v *IslandView) Island() *island.Island {
	return v.island
}

// SetContent replaces the row shown inside the pill. buttons lists every
// GlowButton in the row, nested ones included, so hover and frames reach them.
func (v *IslandView) SetContent(row []fyne.CanvasObject, buttons []*GlowButton) {
	v.content.Objects = row
	v.buttons = buttons
	for _, b := range buttons {
		b.onHover = v.setHover
		b.onChange = v.Kick
	}
	v.content.Refresh()
	v.Refresh()
}

// Buttons returns the GlowButtons currently in the row
func (v *IslandView) Buttons() []*GlowButton {
	return v.buttons
}

// Kick makes sure the frame driver is running
func (v *IslandView) Kick() {
	if v.ticker != nil {
		return
	}
	v.last = v.now()
	t := fyne.NewAnimation(FrameTickerDuration, func(float32) { v.frame() })
	t.RepeatCount = fyne.AnimationRepeatForever
	t.Curve = fyne.AnimationLinear
	v.ticker = t
	t.Start()
}

func (v *IslandView) frame() {
	now := v.now()
	dt := now.Sub(v.last)
	v.last = now
	if dt > MaxFrameStep {
		dt = MaxFrameStep
	}
	if !v.Advance(dt) && v.ticker != nil {
		v.ticker.Stop()
		v.ticker = nil
	}
}

// Advance steps the island and every button by dt and redraws. It returns
// true while anything is still animating or a collapse is pending.
func (v *IslandView) Advance(dt time.Duration) bool {
	busy := v.island.Step(dt)
	for _, b := range v.buttons {
		if b.Step(dt) {
			busy = true
		}
	}
	v.Refresh()
	return busy
}

func (v *IslandView) setHover(h bool) {
	if h == v.hovered {
		return
	}
	v.hovered = h
	if h {
		v.island.PointerEnter()
	} else {
		v.island.PointerLeave()
	}
	v.Kick()
}

func (v *IslandView) pillContains(pos fyne.Position) bool {
	return v.island.Visual().Bounds.Contains(float64(pos.X), float64(pos.Y))
}

// MouseIn handles pointer enter over the view
func (v *IslandView) MouseIn(ev *desktop.MouseEvent) {
	v.setHover(v.pillContains(ev.Position))
}

// MouseMoved tracks entering and leaving the pill inside the view
func (v *IslandView) MouseMoved(ev *desktop.MouseEvent) {
	v.setHover(v.pillContains(ev.Position))
}

// MouseOut handles the pointer leaving the view
func (v *IslandView) MouseOut() {
	v.setHover(false)
}

// MouseDown starts a drag when the press lands on the pill background
func (v *IslandView) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary || !v.pillContains(ev.Position) {
		return
	}
	v.island.Press(float64(ev.Position.X), float64(ev.Position.Y), false)
}

// MouseUp ends a drag
func (v *IslandView) MouseUp(*desktop.MouseEvent) {
	v.island.Release()
}

// Dragged moves the pill with the pointer
func (v *IslandView) Dragged(ev *fyne.DragEvent) {
	if !v.island.Dragging() {
		return
	}
	v.island.Move(float64(ev.Position.X), float64(ev.Position.Y))
	v.Refresh()
}

// DragEnd finishes a drag
func (v *IslandView) DragEnd() {
	v.island.Release()
}

// CreateRenderer implements fyne.Widget
func (v *IslandView) CreateRenderer() fyne.WidgetRenderer {
	r := &islandRenderer{view: v}
	for i := range r.shadows {
		r.shadows[i] = canvas.NewRectangle(color.Transparent)
	}
	r.body = canvas.NewRectangle(color.Black)
	r.highlightLeft = canvas.NewHorizontalGradient(color.Transparent, color.Transparent)
	r.highlightRight = canvas.NewHorizontalGradient(color.Transparent, color.Transparent)
	r.Refresh()
	return r
}

type islandRenderer struct {
	view *IslandView

	shadows        [island.ShadowLayers]*canvas.Rectangle
	body           *canvas.Rectangle
	highlightLeft  *canvas.LinearGradient
	highlightRight *canvas.LinearGradient
}

func (r *islandRenderer) Layout(size fyne.Size) {
	r.view.island.SetWorkArea(anim.Rect{W: float64(size.Width), H: float64(size.Height)})
	r.apply()
}

func (r *islandRenderer) MinSize() fyne.Size {
	b := r.view.island.TargetBounds()
	return fyne.NewSize(float32(b.W)+2*WindowPadding, float32(b.Y+b.H)+WindowPadding)
}

func (r *islandRenderer) Refresh() {
	r.apply()
	for _, s := range r.shadows {
		canvas.Refresh(s)
	}
	canvas.Refresh(r.body)
	canvas.Refresh(r.highlightLeft)
	canvas.Refresh(r.highlightRight)
}

// apply copies the current visual state onto the canvas objects
func (r *islandRenderer) apply() {
	v := r.view.island.Visual()
	p := island.PaintIsland(v)

	for i, s := range p.Shadows {
		place(r.shadows[i], s.Bounds)
		r.shadows[i].FillColor = s.Color
		r.shadows[i].CornerRadius = float32(s.Radius)
	}

	place(r.body, p.Bounds)
	r.body.FillColor = p.Fill
	r.body.StrokeColor = p.Stroke
	r.body.StrokeWidth = float32(p.StrokeWidth)
	r.body.CornerRadius = float32(p.Radius)

	from, to := p.HighlightFrom, p.HighlightTo
	mid := (from[0] + to[0]) / 2
	if to[0] > from[0] {
		r.highlightLeft.StartColor, r.highlightLeft.EndColor = p.HighlightEdge, p.HighlightPeak
		r.highlightRight.StartColor, r.highlightRight.EndColor = p.HighlightPeak, p.HighlightEdge
		place(r.highlightLeft, anim.Rect{X: from[0], Y: from[1], W: mid - from[0], H: 1})
		place(r.highlightRight, anim.Rect{X: mid, Y: from[1], W: to[0] - mid, H: 1})
		r.highlightLeft.Show()
		r.highlightRight.Show()
	} else {
		r.highlightLeft.Hide()
		r.highlightRight.Hide()
	}

	content := r.view.content
	if v.ContentOpacity <= island.GlowThreshold {
		content.Hide()
	} else {
		content.Show()
	}
	for _, b := range r.view.buttons {
		b.SetOpacity(v.ContentOpacity)
	}
	rowSize := content.MinSize()
	content.Resize(rowSize)
	content.Move(fyne.NewPos(
		float32(p.Bounds.X)+(float32(p.Bounds.W)-rowSize.Width)/2,
		float32(p.Bounds.Y)+(float32(p.Bounds.H)-rowSize.Height)/2,
	))
}

func (r *islandRenderer) Objects() []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, 0, len(r.shadows)+4)
	for _, s := range r.shadows {
		objs = append(objs, s)
	}
	return append(objs, r.body, r.highlightLeft, r.highlightRight, r.view.content)
}

func (r *islandRenderer) Destroy() {
	if r.view.ticker != nil {
		r.view.ticker.Stop()
		r.view.ticker = nil
	}
}

func place(o fyne.CanvasObject, b anim.Rect) {
	o.Move(fyne.NewPos(float32(b.X), float32(b.Y)))
	o.Resize(fyne.NewSize(float32(b.W), float32(b.H)))
}

// rowLayout places objects left to right with fixed spacing, each centred
// vertically at its own minimum size
type rowLayout struct {
	spacing  float32
	margin   float32
	trailing float32
}

func (l *rowLayout) visible(objects []fyne.CanvasObject) []fyne.CanvasObject {
	out := make([]fyne.CanvasObject, 0, len(objects))
	for _, o := range objects {
		if o.Visible() {
			out = append(out, o)
		}
	}
	return out
}

// MinSize implements fyne.Layout
func (l *rowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var w, h float32
	visible := l.visible(objects)
	for i, o := range visible {
		ms := o.MinSize()
		w += ms.Width
		if i > 0 {
			w += l.spacing
		}
		if ms.Height > h {
			h = ms.Height
		}
	}
	if len(visible) > 0 {
		w += 2*l.margin + l.trailing
	}
	return fyne.NewSize(w, h)
}

// Layout implements fyne.Layout
func (l *rowLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	x := l.margin
	for _, o := range l.visible(objects) {
		ms := o.MinSize()
		o.Resize(ms)
		o.Move(fyne.NewPos(x, (size.Height-ms.Height)/2))
		x += ms.Width + l.spacing
	}
}
