package ui

import (
	"image/color"
	"time"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings  = "⚙"
	IconClose     = "✕"
	IconPrevious  = "⏮"
	IconPlayPause = "⏯"
	IconNext      = "⏭"
	IconMusic     = "🎵"
	IconScan      = "🔍"
)

// Accent colors of the fixed controls
const (
	AccentMedia    = "#E0E0E0"
	AccentPlay     = "#FFFFFF"
	AccentSettings = "#888888"
	AccentClose    = "#FF4444"
)

// Island row layout
const (
	RowSideMargin   float32 = 20
	RowSpacing      float32 = 12
	MediaRowSpacing float32 = 8
	MediaRowMargin  float32 = 12
)

// Window sizing. The island window leaves room around the pill for shadows
// and for the overshoot of the expand animation.
const (
	WindowPadding        float32 = 40
	SettingsWindowWidth  float32 = 560
	SettingsWindowHeight float32 = 620
	DialogWindowWidth    float32 = 420
	DialogWindowHeight   float32 = 220
	ScanListHeight       float32 = 320
	AppListHeight        float32 = 220
	ColorPreviewSize     float32 = 24
)

// Hover caption under each button
const (
	CaptionTextSize float32 = 10
	CaptionGap      float32 = 2
)

// CaptionColor is the text color of the hover caption
var CaptionColor = color.NRGBA{R: 230, G: 230, B: 230, A: 255}

// Frame driver
const (
	// FrameTickerDuration is the nominal length of the repeating animation
	// used as a frame clock; only its tick callback matters
	FrameTickerDuration = time.Second

	// MaxFrameStep caps dt so a stalled loop does not skip whole animations
	MaxFrameStep = 100 * time.Millisecond
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DisabledSuffix     = " (off)"
)
