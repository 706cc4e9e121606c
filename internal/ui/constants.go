package ui

import "image/color"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconFolder = "📁"
)

// Banner colours
var (
	BannerColor     color.Color = color.NRGBA{R: 0xff, G: 0x6f, B: 0x00, A: 0xff}
	BannerTextColor color.Color = color.White
)

const (
	BannerTextSize float32 = 16
	LogoSize       float32 = 50
)

// Layout sizing
const (
	WindowWidth  float32 = 500
	WindowHeight float32 = 550

	URLEntryMinWidth float32 = 360
	SettingsDialogW  float32 = 460
	SettingsDialogH  float32 = 240
)
