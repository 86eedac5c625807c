package config

import (
	"github.com/ytget/dynamic-island/internal/model"
)

// Default values for the island document
const (
	DefaultMusicControlsEnabled = true
	DefaultAutoCollapseDelay    = 3000
	DefaultExpandedWidth        = 650
	DefaultCollapsedWidth       = 220
)

// Editor limits
const (
	MinAutoCollapseDelay  = 1000
	MaxAutoCollapseDelay  = 10000
	AutoCollapseDelayStep = 500

	MinExpandedWidth  = 400
	MaxExpandedWidth  = 1200
	ExpandedWidthStep = 50

	MinCollapsedWidth = 120
)

// Document is the persisted island configuration
type Document struct {
	Apps                 []model.AppEntry `json:"apps"`
	MusicControlsEnabled bool             `json:"music_controls_enabled"`
	AutoCollapseDelay    int              `json:"auto_collapse_delay"`
	ExpandedWidth        int              `json:"expanded_width"`
	CollapsedWidth       int              `json:"collapsed_width"`
}

// DefaultDocument returns the document used on a fresh install
func DefaultDocument() Document {
	return Document{
		Apps:                 []model.AppEntry{},
		MusicControlsEnabled: DefaultMusicControlsEnabled,
		AutoCollapseDelay:    DefaultAutoCollapseDelay,
		ExpandedWidth:        DefaultExpandedWidth,
		CollapsedWidth:       DefaultCollapsedWidth,
	}
}

// Clone returns a copy that shares no slice with d
func (d Document) Clone() Document {
	out := d
	out.Apps = make([]model.AppEntry, len(d.Apps))
	copy(out.Apps, d.Apps)
	return out
}

// Equal reports whether two documents hold the same settings and entries in
// the same order
func (d Document) Equal(other Document) bool {
	if d.MusicControlsEnabled != other.MusicControlsEnabled ||
		d.AutoCollapseDelay != other.AutoCollapseDelay ||
		d.ExpandedWidth != other.ExpandedWidth ||
		d.CollapsedWidth != other.CollapsedWidth ||
		len(d.Apps) != len(other.Apps) {
		return false
	}
	for i := range d.Apps {
		if d.Apps[i] != other.Apps[i] {
			return false
		}
	}
	return true
}

// SetAutoCollapseDelay sets the collapse delay in milliseconds, clamped to the editor range
func (d *Document) SetAutoCollapseDelay(ms int) {
	d.AutoCollapseDelay = ClampAutoCollapseDelay(ms)
}

// SetExpandedWidth sets the expanded width, clamped to the editor range
func (d *Document) SetExpandedWidth(px int) {
	d.ExpandedWidth = clamp(px, MinExpandedWidth, MaxExpandedWidth)
}

// SetCollapsedWidth sets the collapsed width; it never exceeds the expanded width
func (d *Document) SetCollapsedWidth(px int) {
	maxWidth := d.ExpandedWidth
	if maxWidth < MinCollapsedWidth {
		maxWidth = DefaultExpandedWidth
	}
	d.CollapsedWidth = clamp(px, MinCollapsedWidth, maxWidth)
}

// ClampAutoCollapseDelay limits a delay to [MinAutoCollapseDelay, MaxAutoCollapseDelay]
func ClampAutoCollapseDelay(ms int) int {
	return clamp(ms, MinAutoCollapseDelay, MaxAutoCollapseDelay)
}

// AddApp appends an entry
func (d *Document) AddApp(entry model.AppEntry) {
	d.Apps = append(d.Apps, entry)
}

// ReplaceApp overwrites the entry at index; out-of-range indexes are ignored
func (d *Document) ReplaceApp(index int, entry model.AppEntry) bool {
	if index < 0 || index >= len(d.Apps) {
		return false
	}
	d.Apps[index] = entry
	return true
}

// RemoveApp deletes the entry at index; out-of-range indexes are ignored
func (d *Document) RemoveApp(index int) bool {
	if index < 0 || index >= len(d.Apps) {
		return false
	}
	d.Apps = append(d.Apps[:index], d.Apps[index+1:]...)
	return true
}

// ToggleApp flips the enabled flag of the entry at index
func (d *Document) ToggleApp(index int) bool {
	if index < 0 || index >= len(d.Apps) {
		return false
	}
	d.Apps[index].Enabled = !d.Apps[index].Enabled
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
