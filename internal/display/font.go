package display

import "github.com/mattn/go-runewidth"

// MonoFont is a fixed-advance font. Each display cell of a glyph is Advance
// pixels wide; East Asian wide glyphs take two cells.
type MonoFont struct {
	FontName string
	Advance  int
	Height   int
	Line     int
}

// NewMonoFont returns a monospace font with the given cell size.
func NewMonoFont(name string, advance, lineHeight int) MonoFont {
	return MonoFont{FontName: name, Advance: advance, Height: lineHeight / 2, Line: lineHeight}
}

func (f MonoFont) Name() string { return f.FontName }

func (f MonoFont) TextWidth(text string) int {
	return runewidth.StringWidth(text) * f.Advance
}

func (f MonoFont) TextHeight() int { return f.Height }

func (f MonoFont) LineHeight() int { return f.Line }
