package display

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/muurk/tokenui/internal/geometry"
)

// fadeDelta is the backlight change per fade step.
const fadeDelta = 16

type cell struct {
	ch rune
	fg Color
	bg Color
}

// Canvas rasterizes paint primitives into a grid of terminal cells. Each cell
// covers CellW x CellH pixels; a primitive touches a cell when it covers the
// cell's center pixel.
type Canvas struct {
	width, height int
	cellW, cellH  int
	cols, rows    int
	cells         []cell
	backlight     int

	// FadeStep is the pause between fade steps. Zero fades instantly.
	FadeStep time.Duration
}

// NewCanvas returns a canvas covering width x height pixels.
func NewCanvas(width, height, cellW, cellH int) *Canvas {
	if cellW <= 0 || cellH <= 0 {
		panic("display: canvas cell size must be positive")
	}
	c := &Canvas{
		width:     width,
		height:    height,
		cellW:     cellW,
		cellH:     cellH,
		cols:      width / cellW,
		rows:      height / cellH,
		backlight: MaxBacklight,
	}
	c.cells = make([]cell, c.cols*c.rows)
	c.Clear(0)
	return c
}

// Clear fills the whole canvas with a color.
func (c *Canvas) Clear(bg Color) {
	for i := range c.cells {
		c.cells[i] = cell{ch: ' ', fg: bg, bg: bg}
	}
}

// Cols returns the canvas width in cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the canvas height in cells.
func (c *Canvas) Rows() int { return c.rows }

// CellSize returns the pixel size of one cell.
func (c *Canvas) CellSize() geometry.Offset { return geometry.Off(c.cellW, c.cellH) }

// Area returns the pixel area covered by the canvas.
func (c *Canvas) Area() geometry.Rect {
	return geometry.RectFromSize(geometry.Pt(0, 0), geometry.Off(c.width, c.height))
}

// CellCenter returns the pixel at the center of the given cell.
func (c *Canvas) CellCenter(col, row int) geometry.Point {
	return geometry.Pt(col*c.cellW+c.cellW/2, row*c.cellH+c.cellH/2)
}

// CellAt returns the cell containing a pixel and whether it is on the canvas.
func (c *Canvas) CellAt(p geometry.Point) (col, row int, ok bool) {
	if p.X < 0 || p.Y < 0 {
		return 0, 0, false
	}
	col, row = p.X/c.cellW, p.Y/c.cellH
	return col, row, col < c.cols && row < c.rows
}

func (c *Canvas) set(col, row int, v cell) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col] = v
}

func (c *Canvas) FillRect(r geometry.Rect, color Color) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			if r.Contains(c.CellCenter(col, row)) {
				c.cells[row*c.cols+col] = cell{ch: ' ', fg: color, bg: color}
			}
		}
	}
}

func (c *Canvas) Text(baseline geometry.Point, text string, font Font, fg, bg Color) {
	// Glyphs sit on the cell row that contains the pixel above the baseline.
	if baseline.Y <= 0 {
		return
	}
	row := (baseline.Y - 1) / c.cellH
	col := floorDiv(baseline.X, c.cellW)
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.set(col, row, cell{ch: r, fg: fg, bg: bg})
		if w == 2 {
			c.set(col+1, row, cell{ch: 0, fg: fg, bg: bg})
		}
		col += w
	}
}

func (c *Canvas) Icon(center geometry.Point, icon Icon, fg, bg Color) {
	col, row, ok := c.CellAt(center)
	if !ok {
		return
	}
	c.set(col, row, cell{ch: icon.Glyph, fg: fg, bg: bg})
}

func (c *Canvas) Backlight() int { return c.backlight }

func (c *Canvas) SetBacklight(level int) {
	c.backlight = clampLevel(level)
}

func (c *Canvas) FadeBacklight(level int) {
	level = clampLevel(level)
	for c.backlight != level {
		switch {
		case c.backlight < level:
			c.backlight = min(c.backlight+fadeDelta, level)
		default:
			c.backlight = max(c.backlight-fadeDelta, level)
		}
		if c.FadeStep > 0 {
			time.Sleep(c.FadeStep)
		}
	}
}

// Plain returns the canvas characters without colors, one line per row.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		c.eachGlyph(row, func(s string, _ cell) { b.WriteString(s) })
	}
	return b.String()
}

// Render returns the canvas as styled terminal output, dimmed by the current
// backlight level.
func (c *Canvas) Render() string {
	return c.RenderScaled(1)
}

// RenderScaled is Render with every cell stretched to scale terminal columns.
func (c *Canvas) RenderScaled(scale int) string {
	pad := strings.Repeat(" ", max(scale, 1)-1)
	lines := make([]string, c.rows)
	for row := 0; row < c.rows; row++ {
		var b strings.Builder
		var run strings.Builder
		var runStyle cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(runStyle.fg.Scale(c.backlight).Hex())).
				Background(lipgloss.Color(runStyle.bg.Scale(c.backlight).Hex()))
			b.WriteString(style.Render(run.String()))
			run.Reset()
		}
		c.eachGlyph(row, func(s string, v cell) {
			if run.Len() > 0 && (v.fg != runStyle.fg || v.bg != runStyle.bg) {
				flush()
			}
			runStyle = v
			run.WriteString(s)
			for range runewidth.StringWidth(s) {
				run.WriteString(pad)
			}
		})
		flush()
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}

// eachGlyph walks a row, skipping the trailing half of wide glyphs.
func (c *Canvas) eachGlyph(row int, fn func(string, cell)) {
	wide := false
	for col := 0; col < c.cols; col++ {
		v := c.cells[row*c.cols+col]
		if v.ch == 0 {
			if wide {
				wide = false
				continue
			}
			v.ch = ' '
		}
		wide = runewidth.RuneWidth(v.ch) == 2
		if wide && col == c.cols-1 {
			v.ch = ' '
		}
		fn(string(v.ch), v)
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
