package component

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/muurk/tokenui/internal/display"
	"github.com/muurk/tokenui/internal/geometry"
	"github.com/muurk/tokenui/internal/theme"
)

const ellipsis = "..."

// Paragraph is a run of text in a single font.
type Paragraph struct {
	Font  display.Font
	Text  string
	Style theme.TextStyle
}

type textLine struct {
	text     string
	ellipsis bool
	font     display.Font
	style    theme.TextStyle
}

// Paragraphs lays out word-wrapped paragraphs and splits them into pages.
// The last line of a page that is followed by more text ends with an
// ellipsis.
type Paragraphs struct {
	area   geometry.Rect
	list   []Paragraph
	pages  [][]textLine
	active int
}

func NewParagraphs(area geometry.Rect) *Paragraphs {
	p := &Paragraphs{area: area}
	p.relayout()
	return p
}

// Add appends a paragraph in the default text style.
func (p *Paragraphs) Add(font display.Font, text string) *Paragraphs {
	return p.AddStyled(font, text, theme.TextDefault())
}

func (p *Paragraphs) AddStyled(font display.Font, text string, style theme.TextStyle) *Paragraphs {
	p.list = append(p.list, Paragraph{Font: font, Text: text, Style: style})
	p.relayout()
	return p
}

func (p *Paragraphs) Area() geometry.Rect { return p.area }

func (p *Paragraphs) PageCount() int { return len(p.pages) }

func (p *Paragraphs) ActivePage() int { return p.active }

func (p *Paragraphs) ChangePage(page int) {
	if page < 0 || page >= len(p.pages) {
		panic(fmt.Sprintf("component: page %d out of range [0, %d)", page, len(p.pages)))
	}
	p.active = page
}

func (p *Paragraphs) SetArea(area geometry.Rect) {
	p.area = area
	p.relayout()
}

func (p *Paragraphs) relayout() {
	p.pages = layoutPages(p.area, p.list)
	p.active = 0
}

func (p *Paragraphs) Event(*EventCtx, Event) (Never, bool) {
	return Never{}, false
}

func (p *Paragraphs) Paint(d display.Display) {
	y := p.area.Y0
	for _, l := range p.pages[p.active] {
		y += l.font.LineHeight()
		baseline := geometry.Pt(p.area.X0, y)
		d.Text(baseline, l.text, l.font, l.style.TextColor, l.style.BackgroundColor)
		if l.ellipsis {
			at := baseline.Add(geometry.OffsetX(l.font.TextWidth(l.text)))
			d.Text(at, ellipsis, l.font, l.style.EllipsisColor, l.style.BackgroundColor)
		}
	}
}

func (p *Paragraphs) Bounds(sink func(geometry.Rect)) {
	sink(p.area)
}

func (p *Paragraphs) Trace(t Tracer) {
	t.Open("Paragraphs")
	for _, l := range p.pages[p.active] {
		t.String(l.text)
		if l.ellipsis {
			t.String(ellipsis)
		}
		t.String("\n")
	}
	t.Close()
}

// layoutPages wraps every paragraph into lines and distributes the lines over
// pages of the area's height. There is always at least one page.
func layoutPages(area geometry.Rect, list []Paragraph) [][]textLine {
	var pages [][]textLine
	var cur []textLine
	y := 0
	for i, par := range list {
		words := splitWords(par.Text)
		lh := par.Font.LineHeight()
		for len(words) > 0 {
			if y+lh > area.Height() && len(cur) > 0 {
				pages = append(pages, cur)
				cur, y = nil, 0
			}
			text, rest := fillLine(words, par.Font, area.Width())
			lastOnPage := y+2*lh > area.Height()
			ell := false
			if lastOnPage && (len(rest) > 0 || hasText(list[i+1:])) {
				text, rest = fillLine(words, par.Font, area.Width()-par.Font.TextWidth(ellipsis))
				ell = true
			}
			cur = append(cur, textLine{text: text, ellipsis: ell, font: par.Font, style: par.Style})
			y += lh
			words = rest
		}
	}
	return append(pages, cur)
}

func hasText(list []Paragraph) bool {
	for _, p := range list {
		if len(splitWords(p.Text)) > 0 {
			return true
		}
	}
	return false
}

// splitWords splits text on whitespace. Explicit newlines are kept as "\n"
// tokens.
func splitWords(text string) []string {
	var words []string
	for i, segment := range strings.Split(text, "\n") {
		if i > 0 {
			words = append(words, "\n")
		}
		words = append(words, strings.Fields(segment)...)
	}
	if len(words) > 0 && strings.TrimSpace(text) == "" {
		return nil
	}
	return words
}

// fillLine takes as many words as fit into width and returns the line and the
// words left over. A word wider than the line is broken.
func fillLine(words []string, font display.Font, width int) (string, []string) {
	line := ""
	for i, w := range words {
		if w == "\n" {
			return line, words[i+1:]
		}
		candidate := w
		if line != "" {
			candidate = line + " " + w
		}
		if font.TextWidth(candidate) <= width {
			line = candidate
			continue
		}
		if line == "" {
			head, tail := breakWord(w, font, width)
			return head, append([]string{tail}, words[i+1:]...)
		}
		return line, words[i:]
	}
	return line, nil
}

// breakWord splits w at the longest prefix that fits, keeping at least one
// rune on the line.
func breakWord(w string, font display.Font, width int) (string, string) {
	_, first := utf8.DecodeRuneInString(w)
	cut := first
	for i := range w {
		if i == 0 {
			continue
		}
		if font.TextWidth(w[:i]) > width {
			break
		}
		cut = i
	}
	return w[:cut], w[cut:]
}
