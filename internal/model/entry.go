package model

import (
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// AppKind tells how an entry is launched
type AppKind string

const (
	// KindLocal is an installed application or a command
	KindLocal AppKind = "local"

	// KindURL is a web address opened by the system handler
	KindURL AppKind = "url"

	// KindSpecial is an in-widget feature such as the media controls
	KindSpecial AppKind = "special"
)

// Entry defaults used when a field is missing from the document
const (
	DefaultEntryName  = "App"
	DefaultEntryColor = "#888888"
	DefaultEntryIcon  = "•"
)

// Kinds returns the kinds in the order the editor offers them
func Kinds() []AppKind {
	return []AppKind{KindLocal, KindURL, KindSpecial}
}

// IsValid returns true for the known kinds
func (k AppKind) IsValid() bool {
	return k == KindLocal || k == KindURL || k == KindSpecial
}

// AppEntry is one launchable button in the island
type AppEntry struct {
	Name       string  `json:"name"`
	Kind       AppKind `json:"type"`
	Enabled    bool    `json:"enabled"`
	URL        string  `json:"url"`
	Path       string  `json:"path"`
	Color      string  `json:"color"`
	CustomIcon string  `json:"custom_icon"`
	IconName   string  `json:"icon_name"`
}

// NewAppEntry returns an entry with the editor defaults applied
func NewAppEntry(name string, kind AppKind) AppEntry {
	if !kind.IsValid() {
		kind = KindLocal
	}
	return AppEntry{
		Name:    name,
		Kind:    kind,
		Enabled: true,
		Color:   DefaultEntryColor,
	}
}

// RGB returns the accent color, falling back to the default gray when Color is not a hex triplet
func (e AppEntry) RGB() color.NRGBA {
	c, err := colorful.Hex(strings.TrimSpace(e.Color))
	if err != nil {
		c, _ = colorful.Hex(DefaultEntryColor)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// GetDisplayName returns the name, or the default label when empty
func (e AppEntry) GetDisplayName() string {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return DefaultEntryName
	}
	return name
}

// Glyph returns the custom icon text, or the default dot
func (e AppEntry) Glyph() string {
	if icon := strings.TrimSpace(e.CustomIcon); icon != "" {
		return icon
	}
	return DefaultEntryIcon
}

// IconNameFor builds the icon key the editor stores for a custom entry
func IconNameFor(name string) string {
	return "CUSTOM_" + strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}

// EnabledEntries returns the entries that should get a button, keeping their order
func EnabledEntries(entries []AppEntry) []AppEntry {
	out := make([]AppEntry, 0, len(entries))
	for _, e := range entries {
		if e.Enabled {
			out = append(out, e)
		}
	}
	return out
}
