package component

import (
	"github.com/muurk/tokenui/internal/display"
	"github.com/muurk/tokenui/internal/geometry"
)

// Pad clears its area with a background color on the next paint after Clear.
// A new Pad clears once.
type Pad struct {
	Area  geometry.Rect
	color display.Color
	clear bool
}

func NewPad(area geometry.Rect, bg display.Color) Pad {
	return Pad{Area: area, color: bg, clear: true}
}

func (p *Pad) Clear() {
	p.clear = true
}

func (p *Pad) CancelClear() {
	p.clear = false
}

func (p *Pad) Paint(d display.Display) {
	if p.clear {
		p.clear = false
		d.FillRect(p.Area, p.color)
	}
}

// Maybe shows or hides a component. While hidden the component receives no
// events and its area is painted with the background.
type Maybe[M any, C Component[M]] struct {
	inner   C
	pad     Pad
	visible bool
}

func NewMaybe[M any, C Component[M]](area geometry.Rect, bg display.Color, inner C, visible bool) *Maybe[M, C] {
	return &Maybe[M, C]{inner: inner, pad: NewPad(area, bg), visible: visible}
}

func MaybeVisible[M any, C Component[M]](area geometry.Rect, bg display.Color, inner C) *Maybe[M, C] {
	return NewMaybe[M, C](area, bg, inner, true)
}

func MaybeHidden[M any, C Component[M]](area geometry.Rect, bg display.Color, inner C) *Maybe[M, C] {
	return NewMaybe[M, C](area, bg, inner, false)
}

func (m *Maybe[M, C]) Inner() C { return m.inner }

func (m *Maybe[M, C]) IsVisible() bool { return m.visible }

// ShowIf changes visibility and requests a paint when it differs.
func (m *Maybe[M, C]) ShowIf(ctx *EventCtx, show bool) {
	if m.visible != show {
		m.visible = show
		m.pad.Clear()
		ctx.RequestPaint()
	}
}

func (m *Maybe[M, C]) Show(ctx *EventCtx) { m.ShowIf(ctx, true) }
func (m *Maybe[M, C]) Hide(ctx *EventCtx) { m.ShowIf(ctx, false) }

func (m *Maybe[M, C]) Event(ctx *EventCtx, ev Event) (M, bool) {
	if !m.visible {
		var zero M
		return zero, false
	}
	return m.inner.Event(ctx, ev)
}

func (m *Maybe[M, C]) Paint(d display.Display) {
	m.pad.Paint(d)
	if m.visible {
		m.inner.Paint(d)
	}
}

func (m *Maybe[M, C]) Bounds(sink func(geometry.Rect)) {
	sink(m.pad.Area)
	if m.visible {
		m.inner.Bounds(sink)
	}
}

func (m *Maybe[M, C]) Trace(t Tracer) {
	if m.visible {
		traceValue(t, m.inner)
		return
	}
	t.Open("Hidden")
	t.Close()
}
