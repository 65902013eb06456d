package layout

import (
	"github.com/muurk/tokenui/internal/component"
	"github.com/muurk/tokenui/internal/display"
	"github.com/muurk/tokenui/internal/logging"
)

// ResultKind is the outcome of a finished layout.
type ResultKind int

const (
	Confirmed ResultKind = iota
	Cancelled
)

func (k ResultKind) String() string {
	switch k {
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result is the terminal value of a layout. Value carries the entered PIN
// or passphrase.
type Result struct {
	Kind  ResultKind
	Value string
}

func (r Result) String() string {
	return r.Kind.String()
}

// root is a component tree with its message type erased.
type root interface {
	Event(ctx *component.EventCtx, ev component.Event) (Result, bool)
	Paint(d display.Display)
	RequestCompleteRepaint(ctx *component.EventCtx)
	MarkedForPaint() bool
	Trace(t component.Tracer)
}

type rootChild[M any, C interface {
	component.Component[M]
	component.Traceable
}] struct {
	child     *component.Child[M, C]
	translate func(M) (Result, bool)
}

func (r *rootChild[M, C]) Event(ctx *component.EventCtx, ev component.Event) (Result, bool) {
	msg, ok := r.child.Event(ctx, ev)
	if !ok {
		return Result{}, false
	}
	return r.translate(msg)
}

func (r *rootChild[M, C]) Paint(d display.Display) { r.child.Paint(d) }

func (r *rootChild[M, C]) RequestCompleteRepaint(ctx *component.EventCtx) {
	component.RequestCompleteRepaint[M](ctx, r.child)
}

func (r *rootChild[M, C]) MarkedForPaint() bool { return r.child.MarkedForPaint() }

func (r *rootChild[M, C]) Trace(t component.Tracer) { r.child.Trace(t) }

// Layout drives one screen until it produces a Result. The result is
// returned exactly once; later events are ignored.
type Layout struct {
	name      string
	title     string
	root      root
	timers    []component.TimerRequest
	backlight int
	setLight  bool
	result    *Result
}

// New wraps root and the function that turns its messages into results.
// Messages for which translate returns false are not terminal.
func New[M any, C interface {
	component.Component[M]
	component.Traceable
}](name string, root C, translate func(M) (Result, bool)) *Layout {
	return &Layout{
		name: name,
		root: &rootChild[M, C]{child: component.NewChild[M](root), translate: translate},
	}
}

// Name identifies the kind of layout, e.g. "request_pin".
func (l *Layout) Name() string { return l.name }

// Title is the prompt or title the layout was created with.
func (l *Layout) Title() string { return l.title }

// Event dispatches ev to the component tree.
func (l *Layout) Event(ev component.Event) (Result, bool) {
	if l.result != nil {
		return Result{}, false
	}
	logging.LogEvent(l.name, ev)

	ctx := component.NewEventCtx()
	res, ok := l.root.Event(ctx, ev)
	l.timers = append(l.timers, ctx.Timers()...)
	if level, set := ctx.Backlight(); set {
		l.backlight, l.setLight = level, true
	}
	if !ok {
		return Result{}, false
	}

	l.result = &res
	logging.LogResult(l.name, res.String())
	return res, true
}

// Timers returns the timers requested since the previous call.
func (l *Layout) Timers() []component.TimerRequest {
	timers := l.timers
	l.timers = nil
	return timers
}

// NeedsPaint reports whether an event changed something visible.
func (l *Layout) NeedsPaint() bool { return l.root.MarkedForPaint() }

// RequestCompleteRepaint marks the whole tree for the next Paint.
func (l *Layout) RequestCompleteRepaint() {
	ctx := component.NewEventCtx()
	l.root.RequestCompleteRepaint(ctx)
}

// Paint applies the backlight level requested by the last events and paints
// whatever changed.
func (l *Layout) Paint(d display.Display) {
	if l.setLight {
		l.setLight = false
		d.SetBacklight(l.backlight)
	}
	l.root.Paint(d)
}

// Done reports whether the layout produced its result.
func (l *Layout) Done() bool { return l.result != nil }

// Result returns the terminal result, if any.
func (l *Layout) Result() (Result, bool) {
	if l.result == nil {
		return Result{}, false
	}
	return *l.result, true
}

// Trace renders the component tree.
func (l *Layout) Trace() string {
	return component.TraceString(l.root)
}
