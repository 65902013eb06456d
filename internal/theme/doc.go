// Package theme holds the static style tables of the UI: colors, fonts,
// icons, button and label style sheets, spacing and backlight levels.
//
// Values are package variables so that the emulator can override them from a
// TOML file at startup:
//
//	[colors]
//	bg = "#000000"
//	green = "#00aa44"
//
//	[backlight]
//	normal = 180
//
//	[font]
//	advance = 8
//	line_height = 16
//
// Overrides must be applied before any component is constructed. Style sheet
// functions read the variables on every call.
package theme
