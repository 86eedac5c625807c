package ui

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ytget/dynamic-island/internal/model"
)

// Glyphs for the icon names the document may reference
var builtinIcons = map[string]string{
	"ICON_WHATSAPP": "💬",
	"ICON_FACEBOOK": "f",
	"ICON_LINKEDIN": "in",
	"ICON_VSCODE":   "</>",
	"ICON_BRAVE":    "🦁",
	"ICON_NOTES":    "📝",
	"ICON_MUSIC":    IconMusic,
}

// GlyphFor picks the glyph of an entry: a built-in icon, then the custom
// icon, then the default dot
func GlyphFor(e model.AppEntry) string {
	if g, ok := builtinIcons[e.IconName]; ok {
		return g
	}
	return e.Glyph()
}

// HexColor parses #RRGGBB, falling back to the default entry color
func HexColor(hex string) color.NRGBA {
	return model.AppEntry{Color: hex}.RGB()
}

// ColorHex formats a color as #rrggbb
func ColorHex(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return model.DefaultEntryColor
	}
	return cf.Hex()
}
