package display

import (
	"fmt"

	"github.com/muurk/tokenui/internal/geometry"
)

// Backlight levels span 0 (off) to MaxBacklight.
const MaxBacklight = 255

// Color is a 24-bit RGB color.
type Color uint32

// RGB builds a color from its components.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// Scale darkens the color proportionally to level/MaxBacklight.
func (c Color) Scale(level int) Color {
	if level >= MaxBacklight {
		return c
	}
	if level <= 0 {
		return 0
	}
	s := func(v uint8) uint8 { return uint8(int(v) * level / MaxBacklight) }
	return RGB(s(c.R()), s(c.G()), s(c.B()))
}

// Font describes a typeface by its metrics. Rasterization belongs to the
// display driver.
type Font interface {
	// Name identifies the font to the rasterizer.
	Name() string
	// TextWidth returns the advance width of text in pixels.
	TextWidth(text string) int
	// TextHeight returns the height of capital letters above the baseline.
	TextHeight() int
	// LineHeight returns the distance between consecutive baselines.
	LineHeight() int
}

// Icon is a decoded toolbar or keypad glyph.
type Icon struct {
	Name  string
	Glyph rune
	Size  geometry.Offset
}

// Display is the set of paint primitives available to components.
type Display interface {
	FillRect(r geometry.Rect, c Color)
	// Text draws text with its baseline starting at the given point.
	Text(baseline geometry.Point, text string, font Font, fg, bg Color)
	// Icon draws an icon centered on the given point.
	Icon(center geometry.Point, icon Icon, fg, bg Color)
	Backlight() int
	SetBacklight(level int)
	// FadeBacklight transitions to level and returns when the transition is
	// complete.
	FadeBacklight(level int)
}

// TextCenter draws text horizontally centered on the baseline point.
func TextCenter(d Display, baseline geometry.Point, text string, font Font, fg, bg Color) {
	w := font.TextWidth(text)
	d.Text(baseline.Sub(geometry.OffsetX(w/2)), text, font, fg, bg)
}

// TextRight draws text ending at the baseline point.
func TextRight(d Display, baseline geometry.Point, text string, font Font, fg, bg Color) {
	w := font.TextWidth(text)
	d.Text(baseline.Sub(geometry.OffsetX(w)), text, font, fg, bg)
}

// IconTopLeft draws an icon with its top-left corner at the given point.
func IconTopLeft(d Display, topLeft geometry.Point, icon Icon, fg, bg Color) {
	center := topLeft.Add(geometry.Off(icon.Size.X/2, icon.Size.Y/2))
	d.Icon(center, icon, fg, bg)
}
