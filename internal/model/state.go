package model

// IslandState represents the logical state of the island widget
type IslandState string

const (
	// IslandCollapsed means the island is at rest in its pill shape
	IslandCollapsed IslandState = "Collapsed"

	// IslandExpanding means the expand animation is still in flight
	IslandExpanding IslandState = "Expanding"

	// IslandExpanded means the island is at rest showing its buttons
	IslandExpanded IslandState = "Expanded"

	// IslandCollapsing means the collapse animation is still in flight
	IslandCollapsing IslandState = "Collapsing"
)

// StateFor derives the state from the expanded flag and whether an animation is pending
func StateFor(expanded, animating bool) IslandState {
	switch {
	case expanded && animating:
		return IslandExpanding
	case expanded:
		return IslandExpanded
	case animating:
		return IslandCollapsing
	default:
		return IslandCollapsed
	}
}

// String returns the string representation of IslandState
func (s IslandState) String() string {
	return string(s)
}

// IsTransient returns true while an animation toward the logical state is running
func (s IslandState) IsTransient() bool {
	return s == IslandExpanding || s == IslandCollapsing
}

// IsExpanded returns true for the expanded logical state, transient or not
func (s IslandState) IsExpanded() bool {
	return s == IslandExpanding || s == IslandExpanded
}
