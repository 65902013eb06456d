package geometry

import "fmt"

// Point is a position on the display.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add moves the point by an offset.
func (p Point) Add(o Offset) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub moves the point back by an offset.
func (p Point) Sub(o Offset) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Delta returns the offset from q to p.
func (p Point) Delta(q Point) Offset {
	return Offset{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Offset is a displacement or a size.
type Offset struct {
	X, Y int
}

// Off is shorthand for Offset{X: x, Y: y}.
func Off(x, y int) Offset {
	return Offset{X: x, Y: y}
}

// OffsetX returns a horizontal offset.
func OffsetX(x int) Offset { return Offset{X: x} }

// OffsetY returns a vertical offset.
func OffsetY(y int) Offset { return Offset{Y: y} }

// OnAxis returns an offset of length v along the given axis.
func OnAxis(axis Axis, v int) Offset {
	if axis == Horizontal {
		return Offset{X: v}
	}
	return Offset{Y: v}
}

// Abs returns the component-wise absolute value.
func (o Offset) Abs() Offset {
	return Offset{X: abs(o.X), Y: abs(o.Y)}
}

// Add returns o + q.
func (o Offset) Add(q Offset) Offset {
	return Offset{X: o.X + q.X, Y: o.Y + q.Y}
}

// Axis returns the component along the axis.
func (o Offset) Axis(axis Axis) int {
	if axis == Horizontal {
		return o.X
	}
	return o.Y
}

// Snap returns the top-left corner of a box of size o aligned to the anchor
// point with the given horizontal and vertical alignment.
func (o Offset) Snap(anchor Point, h, v Alignment) Point {
	return Point{X: h.apply(anchor.X, o.X), Y: v.apply(anchor.Y, o.Y)}
}

// Axis is the direction of a linear arrangement.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Alignment positions an item relative to an anchor or within an area.
type Alignment int

const (
	Start Alignment = iota
	Center
	End
)

func (a Alignment) apply(anchor, size int) int {
	switch a {
	case Center:
		return anchor - size/2
	case End:
		return anchor - size
	default:
		return anchor
	}
}

// Rect is an axis-aligned rectangle, X0/Y0 inclusive and X1/Y1 exclusive.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// NewRect builds a rectangle from its top-left and bottom-right corners.
func NewRect(topLeft, bottomRight Point) Rect {
	return Rect{X0: topLeft.X, Y0: topLeft.Y, X1: bottomRight.X, Y1: bottomRight.Y}
}

// RectFromSize builds a rectangle from its top-left corner and size.
func RectFromSize(topLeft Point, size Offset) Rect {
	return NewRect(topLeft, topLeft.Add(size))
}

// RectCentered builds a rectangle of the given size centered on p.
func RectCentered(p Point, size Offset) Rect {
	return RectFromSize(size.Snap(p, Center, Center), size)
}

func (r Rect) Width() int  { return r.X1 - r.X0 }
func (r Rect) Height() int { return r.Y1 - r.Y0 }

// Size returns the width and height as an offset.
func (r Rect) Size() Offset { return Offset{X: r.Width(), Y: r.Height()} }

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool { return r.X1 <= r.X0 || r.Y1 <= r.Y0 }

func (r Rect) TopLeft() Point      { return Point{X: r.X0, Y: r.Y0} }
func (r Rect) TopRight() Point     { return Point{X: r.X1, Y: r.Y0} }
func (r Rect) BottomLeft() Point   { return Point{X: r.X0, Y: r.Y1} }
func (r Rect) BottomRight() Point  { return Point{X: r.X1, Y: r.Y1} }
func (r Rect) Center() Point       { return Point{X: (r.X0 + r.X1) / 2, Y: (r.Y0 + r.Y1) / 2} }
func (r Rect) TopCenter() Point    { return Point{X: (r.X0 + r.X1) / 2, Y: r.Y0} }
func (r Rect) BottomCenter() Point { return Point{X: (r.X0 + r.X1) / 2, Y: r.Y1} }
func (r Rect) LeftCenter() Point   { return Point{X: r.X0, Y: (r.Y0 + r.Y1) / 2} }

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

// Translate moves the rectangle by an offset.
func (r Rect) Translate(o Offset) Rect {
	return Rect{X0: r.X0 + o.X, Y0: r.Y0 + o.Y, X1: r.X1 + o.X, Y1: r.Y1 + o.Y}
}

// Inset shrinks the rectangle by the given insets.
func (r Rect) Inset(in Insets) Rect {
	return Rect{X0: r.X0 + in.Left, Y0: r.Y0 + in.Top, X1: r.X1 - in.Right, Y1: r.Y1 - in.Bottom}
}

// Intersect returns the overlap of two rectangles, empty if they do not overlap.
func (r Rect) Intersect(q Rect) Rect {
	out := Rect{X0: max(r.X0, q.X0), Y0: max(r.Y0, q.Y0), X1: min(r.X1, q.X1), Y1: min(r.Y1, q.Y1)}
	if out.IsEmpty() {
		return Rect{}
	}
	return out
}

// SplitTop returns the top strip of the given height and the remainder.
func (r Rect) SplitTop(height int) (top, rest Rect) {
	height = clamp(height, 0, r.Height())
	top = Rect{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: r.Y0 + height}
	rest = Rect{X0: r.X0, Y0: r.Y0 + height, X1: r.X1, Y1: r.Y1}
	return top, rest
}

// SplitBottom returns the remainder and the bottom strip of the given height.
func (r Rect) SplitBottom(height int) (rest, bottom Rect) {
	return r.SplitTop(r.Height() - height)
}

// SplitLeft returns the left strip of the given width and the remainder.
func (r Rect) SplitLeft(width int) (left, rest Rect) {
	width = clamp(width, 0, r.Width())
	left = Rect{X0: r.X0, Y0: r.Y0, X1: r.X0 + width, Y1: r.Y1}
	rest = Rect{X0: r.X0 + width, Y0: r.Y0, X1: r.X1, Y1: r.Y1}
	return left, rest
}

// SplitRight returns the remainder and the right strip of the given width.
func (r Rect) SplitRight(width int) (rest, right Rect) {
	return r.SplitLeft(r.Width() - width)
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d %dx%d]", r.X0, r.Y0, r.Width(), r.Height())
}

// Insets are the distances to shrink each side of a rectangle by.
type Insets struct {
	Top, Right, Bottom, Left int
}

// NewInsets lists insets clockwise starting at the top.
func NewInsets(top, right, bottom, left int) Insets {
	return Insets{Top: top, Right: right, Bottom: bottom, Left: left}
}

// Uniform returns equal insets on all sides.
func Uniform(v int) Insets { return Insets{Top: v, Right: v, Bottom: v, Left: v} }

// InsetsRight returns an inset on the right side only.
func InsetsRight(v int) Insets { return Insets{Right: v} }

// InsetsBottom returns an inset on the bottom side only.
func InsetsBottom(v int) Insets { return Insets{Bottom: v} }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
