package component

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/muurk/tokenui/internal/geometry"
)

// EventKind is the variant tag of an Event.
type EventKind int

const (
	KindTouchStart EventKind = iota
	KindTouchMove
	KindTouchEnd
	KindTimer
	// KindRequestPaint asks every component of a subtree to repaint in full.
	KindRequestPaint
)

func (k EventKind) String() string {
	switch k {
	case KindTouchStart:
		return "touch_start"
	case KindTouchMove:
		return "touch_move"
	case KindTouchEnd:
		return "touch_end"
	case KindTimer:
		return "timer"
	case KindRequestPaint:
		return "request_paint"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one input delivered to the component tree.
type Event struct {
	Kind  EventKind
	Point geometry.Point
	Token TimerToken
}

// Event constructors, one per kind.
func TouchStart(p geometry.Point) Event { return Event{Kind: KindTouchStart, Point: p} }
func TouchMove(p geometry.Point) Event  { return Event{Kind: KindTouchMove, Point: p} }
func TouchEnd(p geometry.Point) Event   { return Event{Kind: KindTouchEnd, Point: p} }
func TimerEvent(t TimerToken) Event     { return Event{Kind: KindTimer, Token: t} }
func RequestPaintEvent() Event          { return Event{Kind: KindRequestPaint} }

// IsTouch reports whether the event carries a touch point.
func (e Event) IsTouch() bool {
	return e.Kind == KindTouchStart || e.Kind == KindTouchMove || e.Kind == KindTouchEnd
}

func (e Event) String() string {
	switch {
	case e.IsTouch():
		return fmt.Sprintf("%s%s", e.Kind, e.Point)
	case e.Kind == KindTimer:
		return fmt.Sprintf("timer(%d)", e.Token)
	default:
		return e.Kind.String()
	}
}

// TimerToken identifies a requested timer. The zero token is never issued.
type TimerToken uint64

var lastToken atomic.Uint64

func nextTimerToken() TimerToken {
	return TimerToken(lastToken.Add(1))
}

// TimerRequest asks the host to deliver TimerEvent(Token) after Duration.
type TimerRequest struct {
	Token    TimerToken
	Duration time.Duration
}

// EventCtx collects the intent produced while dispatching one event.
type EventCtx struct {
	paintRequested bool
	timers         []TimerRequest
	backlight      int
	backlightSet   bool
}

// NewEventCtx returns a context with no collected intent.
func NewEventCtx() *EventCtx {
	return &EventCtx{}
}

// RequestPaint marks the component being dispatched as needing a repaint.
func (c *EventCtx) RequestPaint() {
	c.paintRequested = true
}

// PaintRequested reports whether anything in the tree asked to be repainted.
func (c *EventCtx) PaintRequested() bool {
	return c.paintRequested
}

// RequestTimer schedules a timer event and returns its token.
func (c *EventCtx) RequestTimer(d time.Duration) TimerToken {
	token := nextTimerToken()
	c.timers = append(c.timers, TimerRequest{Token: token, Duration: d})
	return token
}

// Timers returns the timers requested so far.
func (c *EventCtx) Timers() []TimerRequest {
	return c.timers
}

// SetBacklight records the backlight level the host should apply before the
// next paint.
func (c *EventCtx) SetBacklight(level int) {
	c.backlight = level
	c.backlightSet = true
}

// Backlight returns the requested backlight level, if any.
func (c *EventCtx) Backlight() (int, bool) {
	return c.backlight, c.backlightSet
}

// Clear forgets all collected intent.
func (c *EventCtx) Clear() {
	c.paintRequested = false
	c.timers = c.timers[:0]
	c.backlightSet = false
}
