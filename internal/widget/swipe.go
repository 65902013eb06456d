package widget

import (
	"github.com/muurk/tokenui/internal/component"
	"github.com/muurk/tokenui/internal/display"
	"github.com/muurk/tokenui/internal/geometry"
	"github.com/muurk/tokenui/internal/theme"
)

// SwipeDirection is the message of a Swipe.
type SwipeDirection int

const (
	SwipeUp SwipeDirection = iota
	SwipeDown
	SwipeLeft
	SwipeRight
)

func (d SwipeDirection) String() string {
	switch d {
	case SwipeUp:
		return "up"
	case SwipeDown:
		return "down"
	case SwipeLeft:
		return "left"
	case SwipeRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseSwipeDirection is the inverse of SwipeDirection.String.
func ParseSwipeDirection(s string) (SwipeDirection, bool) {
	for _, d := range []SwipeDirection{SwipeUp, SwipeDown, SwipeLeft, SwipeRight} {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}

const (
	// SwipeDistance is the drag length of a complete swipe.
	SwipeDistance = 120
	// SwipeThreshold is the displacement a swipe has to exceed.
	SwipeThreshold = SwipeDistance * 3 / 10
)

// Swipe recognizes one directional gesture per touch sequence started inside
// its area. The direction is decided on the dominant axis of the net
// displacement, horizontal on ties. While dragging in a permitted direction
// the backlight dims toward BacklightEnd.
type Swipe struct {
	area       geometry.Rect
	AllowUp    bool
	AllowDown  bool
	AllowLeft  bool
	AllowRight bool

	backlightStart int
	backlightEnd   int
	origin         geometry.Point
	dragging       bool
}

// NewSwipe returns a recognizer with every direction disabled.
func NewSwipe(area geometry.Rect) *Swipe {
	return &Swipe{
		area:           area,
		backlightStart: theme.BacklightNormal,
		backlightEnd:   theme.BacklightNone,
	}
}

// SwipeVertical accepts up and down swipes.
func SwipeVertical(area geometry.Rect) *Swipe {
	s := NewSwipe(area)
	s.AllowUp, s.AllowDown = true, true
	return s
}

// SwipeHorizontal accepts left and right swipes.
func SwipeHorizontal(area geometry.Rect) *Swipe {
	s := NewSwipe(area)
	s.AllowLeft, s.AllowRight = true, true
	return s
}

// Area returns the region where a swipe has to start.
func (s *Swipe) Area() geometry.Rect { return s.area }

func (s *Swipe) isActive() bool {
	return s.AllowUp || s.AllowDown || s.AllowLeft || s.AllowRight
}

// classify returns the permitted direction of a displacement and the
// distance travelled along it.
func (s *Swipe) classify(ofs geometry.Offset) (SwipeDirection, int, bool) {
	abs := ofs.Abs()
	if abs.X >= abs.Y {
		switch {
		case ofs.X < 0 && s.AllowLeft:
			return SwipeLeft, abs.X, true
		case ofs.X > 0 && s.AllowRight:
			return SwipeRight, abs.X, true
		}
		return 0, 0, false
	}
	switch {
	case ofs.Y < 0 && s.AllowUp:
		return SwipeUp, abs.Y, true
	case ofs.Y > 0 && s.AllowDown:
		return SwipeDown, abs.Y, true
	}
	return 0, 0, false
}

func (s *Swipe) backlight(ctx *component.EventCtx, dist int) {
	dist = min(dist, SwipeDistance)
	level := s.backlightStart + (s.backlightEnd-s.backlightStart)*dist/SwipeDistance
	ctx.SetBacklight(max(0, min(level, display.MaxBacklight)))
}

func (s *Swipe) Event(ctx *component.EventCtx, ev component.Event) (SwipeDirection, bool) {
	if !s.isActive() {
		return 0, false
	}
	switch ev.Kind {
	case component.KindTouchStart:
		if s.area.Contains(ev.Point) {
			s.origin = ev.Point
			s.dragging = true
		}
	case component.KindTouchMove:
		if !s.dragging {
			break
		}
		if _, dist, ok := s.classify(ev.Point.Delta(s.origin)); ok {
			s.backlight(ctx, dist)
		}
	case component.KindTouchEnd:
		if !s.dragging {
			break
		}
		s.dragging = false
		dir, dist, ok := s.classify(ev.Point.Delta(s.origin))
		if ok && dist > SwipeThreshold {
			return dir, true
		}
		s.backlight(ctx, 0)
	}
	return 0, false
}

func (s *Swipe) Paint(display.Display) {}

func (s *Swipe) Bounds(func(geometry.Rect)) {}
