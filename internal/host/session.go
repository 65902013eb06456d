package host

import (
	"github.com/muurk/tokenui/internal/component"
	"github.com/muurk/tokenui/internal/display"
	"github.com/muurk/tokenui/internal/geometry"
	"github.com/muurk/tokenui/internal/layout"
	"github.com/muurk/tokenui/internal/theme"
	"github.com/muurk/tokenui/internal/widget"
)

// swipeSteps is the number of move events a synthesized swipe emits.
const swipeSteps = 4

// Scheduler arranges for a timer event to be delivered after the request's
// duration.
type Scheduler func(component.TimerRequest)

// Session owns a layout and the display it paints on.
type Session struct {
	layout   *layout.Layout
	display  display.Display
	schedule Scheduler
	pending  []component.TimerRequest
}

// NewSession paints the layout for the first time. Timers are kept in
// PendingTimers until a scheduler is set.
func NewSession(l *layout.Layout, d display.Display) *Session {
	s := &Session{layout: l, display: d}
	s.Redraw()
	return s
}

// SetScheduler installs the timer scheduler and hands it every pending
// timer.
func (s *Session) SetScheduler(fn Scheduler) {
	s.schedule = fn
	pending := s.pending
	s.pending = nil
	for _, t := range pending {
		fn(t)
	}
}

func (s *Session) Layout() *layout.Layout { return s.layout }

func (s *Session) Display() display.Display { return s.display }

// PendingTimers returns the timers requested while no scheduler was set.
func (s *Session) PendingTimers() []component.TimerRequest {
	return s.pending
}

// Event dispatches ev, schedules the requested timers and paints.
func (s *Session) Event(ev component.Event) (layout.Result, bool) {
	res, ok := s.layout.Event(ev)
	for _, t := range s.layout.Timers() {
		if s.schedule != nil {
			s.schedule(t)
		} else {
			s.pending = append(s.pending, t)
		}
	}
	s.layout.Paint(s.display)
	return res, ok
}

// Touch dispatches a touch event of the given kind.
func (s *Session) Touch(kind component.EventKind, p geometry.Point) (layout.Result, bool) {
	return s.Event(component.Event{Kind: kind, Point: p})
}

// Tap presses and releases at p.
func (s *Session) Tap(p geometry.Point) (layout.Result, bool) {
	if res, ok := s.Touch(component.KindTouchStart, p); ok {
		return res, ok
	}
	return s.Touch(component.KindTouchEnd, p)
}

// Timer delivers an expired timer.
func (s *Session) Timer(token component.TimerToken) (layout.Result, bool) {
	return s.Event(component.TimerEvent(token))
}

// Swipe synthesizes a full-distance swipe through the screen center.
func (s *Session) Swipe(dir widget.SwipeDirection) (layout.Result, bool) {
	from, to := SwipePath(theme.Screen(), dir)
	if res, ok := s.Touch(component.KindTouchStart, from); ok {
		return res, ok
	}
	delta := to.Delta(from)
	for i := 1; i <= swipeSteps; i++ {
		p := from.Add(geometry.Off(delta.X*i/swipeSteps, delta.Y*i/swipeSteps))
		if res, ok := s.Touch(component.KindTouchMove, p); ok {
			return res, ok
		}
	}
	return s.Touch(component.KindTouchEnd, to)
}

// SwipePath returns the start and end points of a swipe of SwipeDistance
// centered in area.
func SwipePath(area geometry.Rect, dir widget.SwipeDirection) (from, to geometry.Point) {
	half := widget.SwipeDistance / 2
	var ofs geometry.Offset
	switch dir {
	case widget.SwipeUp:
		ofs = geometry.OffsetY(-half)
	case widget.SwipeDown:
		ofs = geometry.OffsetY(half)
	case widget.SwipeLeft:
		ofs = geometry.OffsetX(-half)
	case widget.SwipeRight:
		ofs = geometry.OffsetX(half)
	}
	center := area.Center()
	return center.Sub(ofs), center.Add(ofs)
}

// Redraw clears the screen and paints the whole tree.
func (s *Session) Redraw() {
	s.display.FillRect(theme.Screen(), theme.BG)
	s.layout.RequestCompleteRepaint()
	s.layout.Paint(s.display)
}

func (s *Session) Done() bool { return s.layout.Done() }

func (s *Session) Result() (layout.Result, bool) { return s.layout.Result() }

func (s *Session) Trace() string { return s.layout.Trace() }
