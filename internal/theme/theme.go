package theme

import (
	"github.com/muurk/tokenui/internal/display"
	"github.com/muurk/tokenui/internal/geometry"
)

// Screen dimensions in pixels.
const (
	ScreenWidth  = 240
	ScreenHeight = 240
)

// Spacing.
const (
	ContentBorder   = 5
	KeyboardSpacing = 8
	ButtonSpacing   = 6
)

// Colors.
var (
	BG         display.Color
	FG         display.Color
	GreyLight  display.Color
	GreyMedium display.Color
	GreyDark   display.Color
	Red        display.Color
	RedDark    display.Color
	Green      display.Color
	GreenDark  display.Color
	Yellow     display.Color
)

// Fonts.
var (
	FontNormal display.Font
	FontBold   display.Font
	FontMono   display.Font
)

// Backlight levels.
var (
	BacklightNone   int
	BacklightDim    int
	BacklightLow    int
	BacklightNormal int
	BacklightMax    int
)

// Icons.
var (
	IconBack        = display.Icon{Name: "back", Glyph: '←', Size: geometry.Off(20, 20)}
	IconCancel      = display.Icon{Name: "cancel", Glyph: 'x', Size: geometry.Off(20, 20)}
	IconConfirm     = display.Icon{Name: "confirm", Glyph: '✓', Size: geometry.Off(20, 20)}
	IconSpace       = display.Icon{Name: "space", Glyph: '␣', Size: geometry.Off(20, 20)}
	IconDotActive   = display.Icon{Name: "dot_active", Glyph: '●', Size: geometry.Off(6, 6)}
	IconDotInactive = display.Icon{Name: "dot_inactive", Glyph: '○', Size: geometry.Off(6, 6)}
	IconScrollUp    = display.Icon{Name: "scroll_up", Glyph: '▲', Size: geometry.Off(16, 16)}
	IconScrollDown  = display.Icon{Name: "scroll_down", Glyph: '▼', Size: geometry.Off(16, 16)}
	IconPendingMark = display.Icon{Name: "pending", Glyph: '_', Size: geometry.Off(8, 2)}
)

func init() {
	Reset()
}

// Reset restores every overridable value to its default.
func Reset() {
	BG = display.RGB(0x00, 0x00, 0x00)
	FG = display.RGB(0xff, 0xff, 0xff)
	GreyLight = display.RGB(0xa8, 0xa8, 0xa8)
	GreyMedium = display.RGB(0x64, 0x64, 0x64)
	GreyDark = display.RGB(0x33, 0x33, 0x33)
	Red = display.RGB(0xe0, 0x44, 0x44)
	RedDark = display.RGB(0x9c, 0x2f, 0x2f)
	Green = display.RGB(0x1a, 0xb1, 0x4c)
	GreenDark = display.RGB(0x12, 0x7b, 0x35)
	Yellow = display.RGB(0xd9, 0x9e, 0x00)

	setFonts(8, 16)

	BacklightNone = 2
	BacklightDim = 5
	BacklightLow = 45
	BacklightNormal = 150
	BacklightMax = display.MaxBacklight
}

func setFonts(advance, lineHeight int) {
	FontNormal = display.NewMonoFont("normal", advance, lineHeight)
	FontBold = display.NewMonoFont("bold", advance, lineHeight)
	FontMono = display.NewMonoFont("mono", advance, lineHeight)
}

// CellSize returns the terminal cell size matching the theme fonts.
func CellSize() geometry.Offset {
	return geometry.Off(FontNormal.TextWidth("0"), FontNormal.LineHeight())
}

// Screen returns the full display area.
func Screen() geometry.Rect {
	return geometry.RectFromSize(geometry.Pt(0, 0), geometry.Off(ScreenWidth, ScreenHeight))
}

// Borders returns the screen area inside the standard margins.
func Borders() geometry.Rect {
	return Screen().Inset(geometry.NewInsets(5, 5, 10, 10))
}
