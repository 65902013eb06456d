// Package component defines the event and paint contract every widget
// implements, along with the small building blocks shared by all layouts.
//
// # Contract
//
// A Component[M] handles an Event and may produce one message of type M,
// paints itself onto a display.Display, and reports the rectangles it covers:
//
//	Event(ctx *EventCtx, ev Event) (M, bool)
//	Paint(d display.Display)
//	Bounds(sink func(geometry.Rect))
//
// Event handling never paints. Painting is a separate full-tree pass driven by
// the host; every component receives the call and decides for itself whether
// anything needs to be redrawn. Child tracks that decision for leaves that
// should only repaint after requesting it through EventCtx.RequestPaint.
//
// # Side channel
//
// EventCtx carries intent out of an event dispatch: paint requests, timer
// requests (answered later with a Timer event carrying the same token), and
// a backlight level for drag feedback. It never carries event data.
//
// # Tracing
//
// Components that implement Traceable render as "<Name field:value >"
// strings through TraceString. Tests and the debug link compare these
// strings rather than pixels.
package component
