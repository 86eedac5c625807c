package island

import (
	"time"

	"github.com/ytget/dynamic-island/internal/anim"
	"github.com/ytget/dynamic-island/internal/model"
)

// Fixed geometry
const (
	CollapsedHeight = 38
	ExpandedHeight  = 90
	TopMargin       = 12
	CornerRadius    = 36
)

// Animation timings and targets
const (
	GeometryDuration  = 420 * time.Millisecond
	OpacityDuration   = 250 * time.Millisecond
	LightnessDuration = 300 * time.Millisecond

	ExpandedLightness = 0.12
)

// Options configures an island. Zero fields take the document defaults.
type Options struct {
	ExpandedWidth     float64
	CollapsedWidth    float64
	AutoCollapseDelay time.Duration
}

// VisualState is a snapshot of everything the renderer needs
type VisualState struct {
	Expanded            bool
	ContentOpacity      float64
	BackgroundLightness float64
	CornerRadius        float64
	Bounds              anim.Rect
}

// Island is the expand/collapse state machine. All mutation happens through
// its methods on the UI thread; Step is the only path that advances time.
type Island struct {
	opts     Options
	workArea anim.Rect

	expanded  bool
	geometry  *anim.RectProperty
	opacity   *anim.Property
	lightness *anim.Property
	collapse  *anim.OneShot

	dragging   bool
	dragOffset [2]float64
	moved      bool

	onStateChange func(model.IslandState)
	lastState     model.IslandState
}

// New creates a collapsed island centred at the top of workArea
func New(workArea anim.Rect, opts Options) *Island {
	opts = withDefaults(opts)
	is := &Island{
		opts:      opts,
		workArea:  workArea,
		opacity:   anim.NewProperty(0, OpacityDuration, anim.Linear),
		lightness: anim.NewProperty(0, LightnessDuration, anim.Linear),
		collapse:  anim.NewOneShot(opts.AutoCollapseDelay),
		lastState: model.IslandCollapsed,
	}
	is.geometry = anim.NewRectProperty(is.targetRect(opts.CollapsedWidth, CollapsedHeight), GeometryDuration, anim.OutBack)
	return is
}

func withDefaults(opts Options) Options {
	if opts.ExpandedWidth <= 0 {
		opts.ExpandedWidth = 650
	}
	if opts.CollapsedWidth <= 0 {
		opts.CollapsedWidth = 220
	}
	if opts.AutoCollapseDelay <= 0 {
		opts.AutoCollapseDelay = 3000 * time.Millisecond
	}
	return opts
}

// OnStateChange registers a callback fired whenever State() changes
func (is *Island) OnStateChange(fn func(model.IslandState)) {
	is.onStateChange = fn
}

// Options returns the options in effect
func (is *Island) Options() Options {
	return is.opts
}

// SetOptions replaces widths and the collapse delay. New values apply to the
// next transition; animations already in flight keep their targets.
func (is *Island) SetOptions(opts Options) {
	is.opts = withDefaults(opts)
	is.collapse.SetInterval(is.opts.AutoCollapseDelay)
}

// SetWorkArea updates the area the island centres itself in. A pill the user
// has dragged stays where it is until the next expand or collapse.
func (is *Island) SetWorkArea(area anim.Rect) {
	is.workArea = area
	if !is.Animating() && !is.dragging && !is.moved {
		w, h := is.restSize()
		is.geometry.Set(is.targetRect(w, h))
	}
}

// Expanded reports the logical state
func (is *Island) Expanded() bool {
	return is.expanded
}

// State returns the logical state including transient animation phases
func (is *Island) State() model.IslandState {
	return model.StateFor(is.expanded, is.Animating())
}

// Animating reports whether any of the three animations is in flight
func (is *Island) Animating() bool {
	return is.geometry.Running() || is.opacity.Running() || is.lightness.Running()
}

// CollapsePending reports whether the auto-collapse timer is armed
func (is *Island) CollapsePending() bool {
	return is.collapse.Armed()
}

// Visual returns the current visual state
func (is *Island) Visual() VisualState {
	return VisualState{
		Expanded:            is.expanded,
		ContentOpacity:      is.opacity.Value(),
		BackgroundLightness: is.lightness.Value(),
		CornerRadius:        CornerRadius,
		Bounds:              is.geometry.Value(),
	}
}

// TargetBounds returns where the geometry animation is heading
func (is *Island) TargetBounds() anim.Rect {
	return is.geometry.Target()
}

// Expand opens the island; it is a no-op when already expanded
func (is *Island) Expand() {
	if is.expanded {
		return
	}
	is.expanded = true
	is.moved = false
	is.geometry.AnimateTo(is.targetRect(is.opts.ExpandedWidth, ExpandedHeight))
	is.opacity.AnimateTo(1)
	is.lightness.AnimateTo(ExpandedLightness)
	is.collapse.Disarm()
	is.notify()
}

// Collapse closes the island; it is a no-op when already collapsed
func (is *Island) Collapse() {
	if !is.expanded {
		return
	}
	is.expanded = false
	is.moved = false
	is.geometry.AnimateTo(is.targetRect(is.opts.CollapsedWidth, CollapsedHeight))
	is.opacity.AnimateTo(0)
	is.lightness.AnimateTo(0)
	is.notify()
}

// PointerEnter cancels a pending collapse and expands
func (is *Island) PointerEnter() {
	is.collapse.Disarm()
	is.Expand()
}

// PointerLeave arms the auto-collapse timer
func (is *Island) PointerLeave() {
	is.collapse.Arm()
}

// Press starts a drag when the press lands on a non-interactive area. x and y
// are in the same space as the work area.
func (is *Island) Press(x, y float64, interactive bool) {
	if interactive {
		return
	}
	b := is.geometry.Value()
	is.dragging = true
	is.dragOffset = [2]float64{x - b.X, y - b.Y}
}

// Dragging reports whether a drag is in progress
func (is *Island) Dragging() bool {
	return is.dragging
}

// Move tracks the pointer while dragging. Only the position changes; a
// running size animation continues from the new position.
func (is *Island) Move(x, y float64) {
	if !is.dragging {
		return
	}
	b := is.geometry.Value()
	is.geometry.Translate(x-is.dragOffset[0]-b.X, y-is.dragOffset[1]-b.Y)
	is.moved = true
}

// Moved reports whether the pill was dragged away from its centred position
// since the last expand or collapse
func (is *Island) Moved() bool {
	return is.moved
}

// Release ends a drag
func (is *Island) Release() {
	is.dragging = false
}

// Step advances animations and the collapse timer by dt and returns true while
// anything is still pending, so the host can stop its frame ticker when idle.
func (is *Island) Step(dt time.Duration) bool {
	is.geometry.Step(dt)
	is.opacity.Step(dt)
	is.lightness.Step(dt)
	if is.collapse.Step(dt) {
		is.Collapse()
	}
	is.notify()
	return is.Animating() || is.collapse.Armed()
}

func (is *Island) restSize() (float64, float64) {
	if is.expanded {
		return is.opts.ExpandedWidth, ExpandedHeight
	}
	return is.opts.CollapsedWidth, CollapsedHeight
}

// targetRect centres a w×h box horizontally in the work area at the top margin
func (is *Island) targetRect(w, h float64) anim.Rect {
	return anim.Rect{
		X: is.workArea.X + (is.workArea.W-w)/2,
		Y: is.workArea.Y + TopMargin,
		W: w,
		H: h,
	}
}

func (is *Island) notify() {
	state := is.State()
	if state == is.lastState {
		return
	}
	is.lastState = state
	if is.onStateChange != nil {
		is.onStateChange(state)
	}
}
