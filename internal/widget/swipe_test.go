package widget

import (
	"testing"

	"github.com/muurk/tokenui/internal/component"
	"github.com/muurk/tokenui/internal/geometry"
	"github.com/muurk/tokenui/internal/theme"
)

var screen = geometry.RectFromSize(geometry.Pt(0, 0), geometry.Off(240, 240))

func allDirections(area geometry.Rect) *Swipe {
	s := NewSwipe(area)
	s.AllowUp, s.AllowDown, s.AllowLeft, s.AllowRight = true, true, true, true
	return s
}

// drag sends a start at the first point, moves through the middle points and
// an end at the last point, collecting every emitted direction.
func drag(s *Swipe, ctx *component.EventCtx, points ...geometry.Point) []SwipeDirection {
	var out []SwipeDirection
	for i, p := range points {
		var ev component.Event
		switch i {
		case 0:
			ev = component.TouchStart(p)
		case len(points) - 1:
			ev = component.TouchEnd(p)
		default:
			ev = component.TouchMove(p)
		}
		if dir, ok := s.Event(ctx, ev); ok {
			out = append(out, dir)
		}
	}
	return out
}

func TestSwipe_Directions(t *testing.T) {
	origin := geometry.Pt(120, 120)
	tests := []struct {
		name   string
		swipe  *Swipe
		points []geometry.Point
		want   []SwipeDirection
	}{
		{"up", allDirections(screen), []geometry.Point{origin, geometry.Pt(120, 80), geometry.Pt(120, 40)}, []SwipeDirection{SwipeUp}},
		{"down", allDirections(screen), []geometry.Point{origin, geometry.Pt(125, 200)}, []SwipeDirection{SwipeDown}},
		{"left", allDirections(screen), []geometry.Point{origin, geometry.Pt(60, 110)}, []SwipeDirection{SwipeLeft}},
		{"right", allDirections(screen), []geometry.Point{origin, geometry.Pt(160, 130)}, []SwipeDirection{SwipeRight}},
		{"just over threshold", allDirections(screen), []geometry.Point{origin, geometry.Pt(120, 83)}, []SwipeDirection{SwipeUp}},
		{"at threshold", allDirections(screen), []geometry.Point{origin, geometry.Pt(120, 84)}, nil},
		{"tie goes horizontal", allDirections(screen), []geometry.Point{origin, geometry.Pt(170, 70)}, []SwipeDirection{SwipeRight}},
		{"net displacement wins over path", allDirections(screen), []geometry.Point{origin, geometry.Pt(120, 10), geometry.Pt(120, 230), geometry.Pt(121, 125)}, nil},
		{"direction not permitted", SwipeVertical(screen), []geometry.Point{origin, geometry.Pt(40, 120)}, nil},
		{"dominant axis not permitted", SwipeVertical(screen), []geometry.Point{origin, geometry.Pt(40, 70)}, nil},
		{"no direction permitted", NewSwipe(screen), []geometry.Point{origin, geometry.Pt(120, 0)}, nil},
		{"start outside area", allDirections(geometry.RectFromSize(geometry.Pt(0, 0), geometry.Off(100, 100))), []geometry.Point{origin, geometry.Pt(120, 0)}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := drag(tt.swipe, component.NewEventCtx(), tt.points...)
			if len(got) != len(tt.want) {
				t.Fatalf("directions = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("directions = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestSwipe_ThresholdProperty(t *testing.T) {
	origin := geometry.Pt(120, 120)
	for dx := -100; dx <= 100; dx += 4 {
		for dy := -100; dy <= 100; dy += 4 {
			s := allDirections(screen)
			end := origin.Add(geometry.Off(dx, dy))
			got := drag(s, component.NewEventCtx(), origin, geometry.Pt(origin.X+dy, origin.Y+dx), end)

			dominant := max(abs(dx), abs(dy))
			if want := dominant > SwipeThreshold; (len(got) == 1) != want || len(got) > 1 {
				t.Fatalf("offset (%d, %d): directions = %v, want gesture = %v", dx, dy, got, want)
			}
		}
	}
}

func TestSwipe_OncePerTouchCycle(t *testing.T) {
	s := SwipeVertical(screen)
	ctx := component.NewEventCtx()

	if got := drag(s, ctx, geometry.Pt(20, 100), geometry.Pt(20, 20)); len(got) != 1 {
		t.Fatalf("first cycle = %v, want one gesture", got)
	}
	if _, ok := s.Event(ctx, component.TouchEnd(geometry.Pt(20, 0))); ok {
		t.Error("touch end outside a touch sequence produced a gesture")
	}
	if _, ok := s.Event(ctx, component.TouchMove(geometry.Pt(20, 0))); ok {
		t.Error("touch move outside a touch sequence produced a gesture")
	}
	if got := drag(s, ctx, geometry.Pt(20, 20), geometry.Pt(20, 100)); len(got) != 1 || got[0] != SwipeDown {
		t.Errorf("second cycle = %v, want [down]", got)
	}
}

func TestSwipe_Backlight(t *testing.T) {
	s := SwipeVertical(screen)
	ctx := component.NewEventCtx()

	s.Event(ctx, component.TouchStart(geometry.Pt(50, 150)))
	s.Event(ctx, component.TouchMove(geometry.Pt(50, 90)))
	level, ok := ctx.Backlight()
	want := theme.BacklightNormal + (theme.BacklightNone-theme.BacklightNormal)*60/SwipeDistance
	if !ok || level != want {
		t.Fatalf("backlight while dragging = %d (%v), want %d", level, ok, want)
	}

	s.Event(ctx, component.TouchMove(geometry.Pt(50, -200)))
	if level, _ := ctx.Backlight(); level != theme.BacklightNone {
		t.Errorf("backlight past full distance = %d, want %d", level, theme.BacklightNone)
	}

	if _, ok := s.Event(ctx, component.TouchEnd(geometry.Pt(50, 140))); ok {
		t.Fatal("short drag produced a gesture")
	}
	if level, _ := ctx.Backlight(); level != theme.BacklightNormal {
		t.Errorf("backlight after aborted swipe = %d, want %d", level, theme.BacklightNormal)
	}
}

func TestParseSwipeDirection(t *testing.T) {
	for _, d := range []SwipeDirection{SwipeUp, SwipeDown, SwipeLeft, SwipeRight} {
		got, ok := ParseSwipeDirection(d.String())
		if !ok || got != d {
			t.Errorf("ParseSwipeDirection(%q) = %v, %v", d.String(), got, ok)
		}
	}
	if _, ok := ParseSwipeDirection("sideways"); ok {
		t.Error("ParseSwipeDirection accepted an unknown direction")
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
