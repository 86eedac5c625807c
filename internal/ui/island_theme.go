package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// IslandTheme is a dark, compact theme. The background is transparent so a
// window with a transparent framebuffer shows only the pill.
type IslandTheme struct{}

// NewIslandTheme creates a new island theme
func NewIslandTheme() fyne.Theme {
	return &IslandTheme{}
}

// Color returns theme colors; the variant is ignored and dark is always used
func (t *IslandTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.NRGBA{} // Transparent around the pill
	case theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return color.NRGBA{R: 24, G: 24, B: 26, A: 255}
	case theme.ColorNameInputBackground:
		return color.NRGBA{R: 40, G: 40, B: 42, A: 255}
	case theme.ColorNameForeground:
		return color.NRGBA{R: 235, G: 235, B: 235, A: 255}
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 74, G: 158, B: 255, A: 255} // Same blue as the highlight accent
	case theme.ColorNameError:
		return color.NRGBA{R: 255, G: 68, B: 68, A: 255}
	case theme.ColorNameSeparator:
		return color.NRGBA{R: 60, G: 60, B: 65, A: 255}
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *IslandTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *IslandTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *IslandTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameInputRadius:
		return 6 // Rounder to match the pill
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
