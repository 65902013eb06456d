package display

import (
	"github.com/muurk/tokenui/internal/geometry"
)

// OpKind identifies a recorded paint primitive.
type OpKind int

const (
	OpFillRect OpKind = iota
	OpText
	OpIcon
	OpSetBacklight
	OpFadeBacklight
)

func (k OpKind) String() string {
	switch k {
	case OpFillRect:
		return "fill_rect"
	case OpText:
		return "text"
	case OpIcon:
		return "icon"
	case OpSetBacklight:
		return "set_backlight"
	case OpFadeBacklight:
		return "fade_backlight"
	default:
		return "unknown"
	}
}

// Op is one recorded paint primitive. Only the fields relevant to Kind are set.
type Op struct {
	Kind  OpKind
	Rect  geometry.Rect
	Point geometry.Point
	Text  string
	Icon  string
	FG    Color
	BG    Color
	Level int
}

// Recorder is a Display that logs every primitive instead of drawing it.
type Recorder struct {
	Ops       []Op
	backlight int
}

// NewRecorder returns a recorder with the backlight at full brightness.
func NewRecorder() *Recorder {
	return &Recorder{backlight: MaxBacklight}
}

func (r *Recorder) FillRect(rect geometry.Rect, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Rect: rect, BG: c})
}

func (r *Recorder) Text(baseline geometry.Point, text string, font Font, fg, bg Color) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Point: baseline, Text: text, FG: fg, BG: bg})
}

func (r *Recorder) Icon(center geometry.Point, icon Icon, fg, bg Color) {
	r.Ops = append(r.Ops, Op{Kind: OpIcon, Point: center, Icon: icon.Name, FG: fg, BG: bg})
}

func (r *Recorder) Backlight() int { return r.backlight }

func (r *Recorder) SetBacklight(level int) {
	r.backlight = clampLevel(level)
	r.Ops = append(r.Ops, Op{Kind: OpSetBacklight, Level: r.backlight})
}

func (r *Recorder) FadeBacklight(level int) {
	r.backlight = clampLevel(level)
	r.Ops = append(r.Ops, Op{Kind: OpFadeBacklight, Level: r.backlight})
}

// Reset forgets all recorded primitives. The backlight level is kept.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Count returns how many primitives of the given kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns the strings drawn, in paint order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Icons returns the names of the icons drawn, in paint order.
func (r *Recorder) Icons() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpIcon {
			out = append(out, op.Icon)
		}
	}
	return out
}

// Fades returns the target levels of every backlight fade.
func (r *Recorder) Fades() []int {
	var out []int
	for _, op := range r.Ops {
		if op.Kind == OpFadeBacklight {
			out = append(out, op.Level)
		}
	}
	return out
}

func clampLevel(level int) int {
	return max(0, min(level, MaxBacklight))
}
