package widget

import (
	"github.com/muurk/tokenui/internal/component"
	"github.com/muurk/tokenui/internal/display"
	"github.com/muurk/tokenui/internal/geometry"
	"github.com/muurk/tokenui/internal/theme"
)

const frameHeaderSpace = 14

// Frame draws a title above its content.
type Frame[M any, C component.Component[M]] struct {
	title   *component.Label
	content *component.Child[M, C]
}

func NewFrame[M any, C component.Component[M]](area geometry.Rect, title string, content func(geometry.Rect) C) *Frame[M, C] {
	style := theme.LabelTitle()
	titleArea, contentArea := area.SplitTop(style.Font.LineHeight())
	_, contentArea = contentArea.SplitTop(frameHeaderSpace)
	return &Frame[M, C]{
		title:   component.LabelLeftAligned(titleArea.TopLeft(), title, style),
		content: component.NewChild[M](content(contentArea)),
	}
}

func (f *Frame[M, C]) Inner() C { return f.content.Inner() }

func (f *Frame[M, C]) Event(ctx *component.EventCtx, ev component.Event) (M, bool) {
	return f.content.Event(ctx, ev)
}

func (f *Frame[M, C]) Paint(d display.Display) {
	f.title.Paint(d)
	f.content.Paint(d)
}

func (f *Frame[M, C]) Bounds(sink func(geometry.Rect)) {
	f.title.Bounds(sink)
	f.content.Bounds(sink)
}

func (f *Frame[M, C]) Trace(t component.Tracer) {
	t.Open("Frame")
	t.Field("title", f.title.Text())
	t.Field("content", f.content)
	t.Close()
}

// PairMsg identifies the clicked button of a ButtonPair.
type PairMsg int

const (
	PairLeft PairMsg = iota
	PairRight
)

// ButtonPair places a narrow left button next to a wide right button.
type ButtonPair struct {
	left  *Button
	right *Button
}

func NewButtonPair(area geometry.Rect, left, right func(geometry.Rect) *Button) *ButtonPair {
	leftArea, rest := area.SplitLeft((area.Width() - theme.ButtonSpacing) / 3)
	_, rightArea := rest.SplitLeft(theme.ButtonSpacing)
	return &ButtonPair{left: left(leftArea), right: right(rightArea)}
}

func (p *ButtonPair) Left() *Button { return p.left }

func (p *ButtonPair) Right() *Button { return p.right }

func (p *ButtonPair) Event(ctx *component.EventCtx, ev component.Event) (PairMsg, bool) {
	if Clicked(p.left.Event(ctx, ev)) {
		return PairLeft, true
	}
	if Clicked(p.right.Event(ctx, ev)) {
		return PairRight, true
	}
	return 0, false
}

func (p *ButtonPair) Paint(d display.Display) {
	p.left.Paint(d)
	p.right.Paint(d)
}

func (p *ButtonPair) Bounds(sink func(geometry.Rect)) {
	p.left.Bounds(sink)
	p.right.Bounds(sink)
}

func (p *ButtonPair) Trace(t component.Tracer) {
	t.Open("ButtonPair")
	t.Field("left", p.left)
	t.Field("right", p.right)
	t.Close()
}
