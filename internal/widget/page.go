package widget

import (
	"github.com/muurk/tokenui/internal/component"
	"github.com/muurk/tokenui/internal/display"
	"github.com/muurk/tokenui/internal/geometry"
	"github.com/muurk/tokenui/internal/theme"
)

// SwipeHint is painted instead of the controls until the last page.
const SwipeHint = "SWIPE TO CONTINUE"

// PageLayout splits a page area into content, scrollbar and button regions.
type PageLayout struct {
	// ContentSinglePage is used when everything fits on one page.
	ContentSinglePage geometry.Rect
	// Content is narrowed to leave room for the scrollbar.
	Content   geometry.Rect
	Scrollbar geometry.Rect
	Buttons   geometry.Rect
}

const (
	pageButtonSpace    = 6
	pageScrollbarWidth = 10
	pageScrollbarSpace = 10
)

func NewPageLayout(area geometry.Rect) PageLayout {
	content, buttons := area.SplitBottom(ButtonHeight)
	content, _ = content.SplitBottom(pageButtonSpace)
	buttons, _ = buttons.SplitRight(theme.ContentBorder)
	_, content = content.SplitLeft(theme.ContentBorder)
	single, _ := content.SplitRight(theme.ContentBorder)
	content, scrollbar := content.SplitRight(pageScrollbarSpace + pageScrollbarWidth)
	_, scrollbar = scrollbar.SplitLeft(pageScrollbarSpace)
	return PageLayout{
		ContentSinglePage: single,
		Content:           content,
		Scrollbar:         scrollbar,
		Buttons:           buttons,
	}
}

// PageContent is content that SwipePage can paginate.
type PageContent[M any] interface {
	component.Component[M]
	component.Paginate
}

// PageMsgKind tells which part of a SwipePage produced a message.
type PageMsgKind int

const (
	PageMsgContent PageMsgKind = iota
	PageMsgControls
)

// PageMsg carries a message from the content or from the controls.
type PageMsg[T, U any] struct {
	Kind     PageMsgKind
	Content  T
	Controls U
}

// SwipePage pages through content with vertical swipes. The controls are
// only reachable on the last page; earlier pages show a hint instead.
type SwipePage[T, U any, C PageContent[T], B component.Component[U]] struct {
	content     C
	buttons     B
	pad         component.Pad
	swipe       *Swipe
	scrollbar   *ScrollBar
	fade        int
	fadePending bool
}

func NewSwipePage[T, U any, C PageContent[T], B component.Component[U]](
	area geometry.Rect,
	bg display.Color,
	content func(geometry.Rect) C,
	controls func(geometry.Rect) B,
) *SwipePage[T, U, C, B] {
	layout := NewPageLayout(area)
	c := content(layout.ContentSinglePage)
	if c.PageCount() > 1 {
		c.SetArea(layout.Content)
	}
	c.ChangePage(0)

	scrollbar := ScrollBarVertical(layout.Scrollbar, c.PageCount(), 0).WithArrows()
	return &SwipePage[T, U, C, B]{
		content:   c,
		buttons:   controls(layout.Buttons),
		pad:       component.NewPad(area, bg),
		swipe:     makeSwipe(area, scrollbar),
		scrollbar: scrollbar,
	}
}

func makeSwipe(area geometry.Rect, scrollbar *ScrollBar) *Swipe {
	s := NewSwipe(area)
	s.AllowUp = scrollbar.HasNextPage()
	s.AllowDown = scrollbar.HasPreviousPage()
	return s
}

func (p *SwipePage[T, U, C, B]) Content() C { return p.content }

func (p *SwipePage[T, U, C, B]) Controls() B { return p.buttons }

func (p *SwipePage[T, U, C, B]) ScrollBar() *ScrollBar { return p.scrollbar }

func (p *SwipePage[T, U, C, B]) changePage(ctx *component.EventCtx, page int) {
	p.swipe = makeSwipe(p.swipe.Area(), p.scrollbar)

	p.content.ChangePage(page)
	component.RequestCompleteRepaint[T](ctx, p.content)
	p.pad.Clear()

	// The swipe dimmed the backlight; restore it after the next paint.
	p.fade = theme.BacklightNormal
	p.fadePending = true
}

func (p *SwipePage[T, U, C, B]) Event(ctx *component.EventCtx, ev component.Event) (PageMsg[T, U], bool) {
	if dir, ok := p.swipe.Event(ctx, ev); ok {
		switch dir {
		case SwipeUp:
			p.scrollbar.GoToNextPage()
			p.changePage(ctx, p.scrollbar.ActivePage)
			return PageMsg[T, U]{}, false
		case SwipeDown:
			p.scrollbar.GoToPreviousPage()
			p.changePage(ctx, p.scrollbar.ActivePage)
			return PageMsg[T, U]{}, false
		}
	}
	if msg, ok := p.content.Event(ctx, ev); ok {
		return PageMsg[T, U]{Kind: PageMsgContent, Content: msg}, true
	}
	if !p.scrollbar.HasNextPage() {
		if msg, ok := p.buttons.Event(ctx, ev); ok {
			return PageMsg[T, U]{Kind: PageMsgControls, Controls: msg}, true
		}
	}
	return PageMsg[T, U]{}, false
}

func (p *SwipePage[T, U, C, B]) paintHint(d display.Display) {
	baseline := p.pad.Area.BottomCenter().Sub(geometry.OffsetY(3))
	display.TextCenter(d, baseline, SwipeHint, theme.FontBold, theme.GreyLight, theme.BG)
}

func (p *SwipePage[T, U, C, B]) Paint(d display.Display) {
	p.pad.Paint(d)
	p.content.Paint(d)
	if p.scrollbar.HasPages() {
		p.scrollbar.Paint(d)
	}
	if p.scrollbar.HasNextPage() {
		p.paintHint(d)
	} else {
		p.buttons.Paint(d)
	}
	if p.fadePending {
		p.fadePending = false
		// Blocks until the backlight is restored.
		d.FadeBacklight(p.fade)
	}
}

func (p *SwipePage[T, U, C, B]) Bounds(sink func(geometry.Rect)) {
	sink(p.pad.Area)
	p.scrollbar.Bounds(sink)
	p.content.Bounds(sink)
	if !p.scrollbar.HasNextPage() {
		p.buttons.Bounds(sink)
	}
}

func (p *SwipePage[T, U, C, B]) Trace(t component.Tracer) {
	t.Open("SwipePage")
	t.Field("active_page", p.scrollbar.ActivePage)
	t.Field("page_count", p.scrollbar.PageCount)
	t.Field("content", p.content)
	t.Field("buttons", p.buttons)
	t.Close()
}
