package widget

import (
	"github.com/muurk/tokenui/internal/component"
	"github.com/muurk/tokenui/internal/display"
	"github.com/muurk/tokenui/internal/geometry"
	"github.com/muurk/tokenui/internal/theme"
)

const (
	DotSize = 6
	// dotInterval is the gap between dots, edge to edge.
	dotInterval = 6
	// arrowSpace is the distance from the edge of the outermost dot to the
	// center of an arrow.
	arrowSpace = 26
)

// ScrollBar shows the active page among PageCount pages as a row of dots.
// ActivePage stays within [0, PageCount).
type ScrollBar struct {
	area       geometry.Rect
	layout     geometry.LinearLayout
	arrows     bool
	PageCount  int
	ActivePage int
}

func newScrollBar(layout geometry.LinearLayout, area geometry.Rect, pageCount, activePage int) *ScrollBar {
	pageCount = max(pageCount, 1)
	return &ScrollBar{
		area:       area,
		layout:     layout.AlignAtCenter().WithSpacing(dotInterval),
		PageCount:  pageCount,
		ActivePage: max(0, min(activePage, pageCount-1)),
	}
}

// ScrollBarVertical stacks the page dots top to bottom.
func ScrollBarVertical(area geometry.Rect, pageCount, activePage int) *ScrollBar {
	return newScrollBar(geometry.VerticalLayout(), area, pageCount, activePage)
}

// ScrollBarHorizontal lays the page dots out left to right.
func ScrollBarHorizontal(area geometry.Rect, pageCount, activePage int) *ScrollBar {
	return newScrollBar(geometry.HorizontalLayout(), area, pageCount, activePage)
}

// WithArrows adds arrows pointing to the neighbouring pages.
func (s *ScrollBar) WithArrows() *ScrollBar {
	s.arrows = true
	return s
}

// HasPages reports whether there is more than one page.
func (s *ScrollBar) HasPages() bool { return s.PageCount > 1 }

// HasNextPage reports whether the active page is not the last one.
func (s *ScrollBar) HasNextPage() bool { return s.ActivePage < s.PageCount-1 }

// HasPreviousPage reports whether the active page is not the first one.
func (s *ScrollBar) HasPreviousPage() bool { return s.ActivePage > 0 }

func (s *ScrollBar) GoToNextPage() {
	s.GoTo(min(s.ActivePage+1, s.PageCount-1))
}

func (s *ScrollBar) GoToPreviousPage() {
	s.GoTo(max(s.ActivePage-1, 0))
}

// GoTo activates page, clamped to the valid range.
func (s *ScrollBar) GoTo(page int) {
	s.ActivePage = max(0, min(page, s.PageCount-1))
}

func (s *ScrollBar) Event(*component.EventCtx, component.Event) (component.Never, bool) {
	return component.Never{}, false
}

func (s *ScrollBar) Paint(d display.Display) {
	i := 0
	var first geometry.Point
	s.layout.ArrangeUniform(s.area, s.PageCount, geometry.Off(DotSize, DotSize), func(topLeft geometry.Point) {
		icon := theme.IconDotInactive
		if i == s.ActivePage {
			icon = theme.IconDotActive
		}
		if i == 0 {
			first = topLeft
		}
		display.IconTopLeft(d, topLeft, icon, theme.FG, theme.BG)
		i++
	})

	if !s.arrows {
		return
	}
	center := s.area.Center()
	distance := center.Delta(first).Axis(s.layout.Axis) + arrowSpace
	offset := geometry.OnAxis(s.layout.Axis, distance)
	if s.HasPreviousPage() {
		d.Icon(center.Sub(offset), theme.IconScrollUp, theme.FG, theme.BG)
	}
	if s.HasNextPage() {
		d.Icon(center.Add(offset), theme.IconScrollDown, theme.FG, theme.BG)
	}
}

func (s *ScrollBar) Bounds(sink func(geometry.Rect)) {
	sink(s.area)
}

func (s *ScrollBar) Trace(t component.Tracer) {
	t.Open("ScrollBar")
	t.Field("active_page", s.ActivePage)
	t.Field("page_count", s.PageCount)
	t.Close()
}
