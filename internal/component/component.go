package component

import (
	"github.com/muurk/tokenui/internal/display"
	"github.com/muurk/tokenui/internal/geometry"
)

// Component is a node of the UI tree producing messages of type M.
type Component[M any] interface {
	Event(ctx *EventCtx, ev Event) (M, bool)
	Paint(d display.Display)
	Bounds(sink func(geometry.Rect))
}

// Never is the message type of components that never produce a message.
type Never struct{}

// RequestCompleteRepaint propagates a RequestPaint event through c and marks
// the component being dispatched for repaint. Messages raised during that
// dispatch are dropped.
func RequestCompleteRepaint[M any](ctx *EventCtx, c Component[M]) {
	c.Event(ctx, RequestPaintEvent())
	ctx.RequestPaint()
}

// Child wraps a component and repaints it only when it asked for a repaint
// during an event. A new Child paints once.
type Child[M any, C Component[M]] struct {
	inner  C
	marked bool
}

func NewChild[M any, C Component[M]](inner C) *Child[M, C] {
	return &Child[M, C]{inner: inner, marked: true}
}

// Inner returns the wrapped component. Changes that should trigger a repaint
// go through Mutate.
func (c *Child[M, C]) Inner() C {
	return c.inner
}

// MarkedForPaint reports whether the next Paint will draw the component.
func (c *Child[M, C]) MarkedForPaint() bool {
	return c.marked
}

// Mutate runs fn on the wrapped component and marks the child for paint if fn
// requested one. A paint request made before Mutate is preserved.
func (c *Child[M, C]) Mutate(ctx *EventCtx, fn func(ctx *EventCtx, inner C)) {
	prev := ctx.paintRequested
	ctx.paintRequested = false
	fn(ctx, c.inner)
	if ctx.paintRequested {
		c.marked = true
	} else {
		ctx.paintRequested = prev
	}
}

func (c *Child[M, C]) Event(ctx *EventCtx, ev Event) (msg M, ok bool) {
	c.Mutate(ctx, func(ctx *EventCtx, inner C) {
		// The event still reaches the subtree so that nested children mark
		// themselves too.
		if ev.Kind == KindRequestPaint {
			ctx.RequestPaint()
		}
		msg, ok = inner.Event(ctx, ev)
	})
	return msg, ok
}

func (c *Child[M, C]) Paint(d display.Display) {
	if c.marked {
		c.marked = false
		c.inner.Paint(d)
	}
}

func (c *Child[M, C]) Bounds(sink func(geometry.Rect)) {
	c.inner.Bounds(sink)
}

func (c *Child[M, C]) Trace(t Tracer) {
	traceValue(t, c.inner)
}

// Empty is a component without content.
type Empty struct{}

func (Empty) Event(*EventCtx, Event) (Never, bool) { return Never{}, false }
func (Empty) Paint(display.Display)                {}
func (Empty) Bounds(func(geometry.Rect))           {}

func (Empty) Trace(t Tracer) {
	t.Open("Empty")
	t.Close()
}

// Paginate is implemented by content that can be split into pages.
type Paginate interface {
	PageCount() int
	// ChangePage selects the page to paint. Out of range pages panic.
	ChangePage(page int)
	// SetArea lays the content out again in a new area and returns to the
	// first page.
	SetArea(area geometry.Rect)
}
