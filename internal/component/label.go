package component

import (
	"github.com/muurk/tokenui/internal/display"
	"github.com/muurk/tokenui/internal/geometry"
	"github.com/muurk/tokenui/internal/theme"
)

// Label is a single line of text anchored at a point.
type Label struct {
	area  geometry.Rect
	text  string
	style theme.LabelStyle
}

// NewLabel places text so that its top edge starts at origin, aligned
// horizontally around it.
func NewLabel(origin geometry.Point, align geometry.Alignment, text string, style theme.LabelStyle) *Label {
	size := geometry.Off(style.Font.TextWidth(text), style.Font.LineHeight())
	topLeft := size.Snap(origin, align, geometry.Start)
	return &Label{area: geometry.RectFromSize(topLeft, size), text: text, style: style}
}

func LabelLeftAligned(origin geometry.Point, text string, style theme.LabelStyle) *Label {
	return NewLabel(origin, geometry.Start, text, style)
}

func LabelRightAligned(origin geometry.Point, text string, style theme.LabelStyle) *Label {
	return NewLabel(origin, geometry.End, text, style)
}

func LabelCenterAligned(origin geometry.Point, text string, style theme.LabelStyle) *Label {
	return NewLabel(origin, geometry.Center, text, style)
}

func (l *Label) Text() string { return l.text }

func (l *Label) Area() geometry.Rect { return l.area }

func (l *Label) Event(*EventCtx, Event) (Never, bool) { return Never{}, false }

func (l *Label) Paint(d display.Display) {
	if l.text == "" {
		return
	}
	d.Text(l.area.BottomLeft(), l.text, l.style.Font, l.style.TextColor, l.style.BackgroundColor)
}

func (l *Label) Bounds(sink func(geometry.Rect)) {
	sink(l.area)
}

func (l *Label) Trace(t Tracer) {
	t.Open("Label")
	t.Field("text", l.text)
	t.Close()
}
