package widget

import (
	"github.com/muurk/tokenui/internal/component"
	"github.com/muurk/tokenui/internal/display"
	"github.com/muurk/tokenui/internal/geometry"
	"github.com/muurk/tokenui/internal/theme"
)

// ButtonHeight is the height of a standard button row.
const ButtonHeight = 38

// ButtonMsg is produced by a Button as touches move over it.
type ButtonMsg int

const (
	ButtonPressed ButtonMsg = iota
	ButtonReleased
	ButtonClicked
)

type buttonState int

const (
	stateInitial buttonState = iota
	statePressed
	stateReleased
	stateDisabled
)

// ButtonContent is either a text label or an icon. The zero value is empty.
type ButtonContent struct {
	Text string
	Icon *display.Icon
}

// Button is a touch target with text or icon content.
type Button struct {
	area    geometry.Rect
	content ButtonContent
	styles  theme.ButtonStyleSheet
	state   buttonState
}

func NewButton(area geometry.Rect, content ButtonContent) *Button {
	return &Button{area: area, content: content, styles: theme.ButtonDefault()}
}

func ButtonWithText(area geometry.Rect, text string) *Button {
	return NewButton(area, ButtonContent{Text: text})
}

func ButtonWithIcon(area geometry.Rect, icon display.Icon) *Button {
	return NewButton(area, ButtonContent{Icon: &icon})
}

// Styled replaces the style sheet.
func (b *Button) Styled(styles theme.ButtonStyleSheet) *Button {
	b.styles = styles
	return b
}

// InitiallyEnabled sets the enabled state without requesting a paint.
func (b *Button) InitiallyEnabled(enabled bool) *Button {
	if enabled {
		b.state = stateInitial
	} else {
		b.state = stateDisabled
	}
	return b
}

func (b *Button) Area() geometry.Rect { return b.area }

func (b *Button) Content() ButtonContent { return b.content }

// SetContent replaces the content and requests a paint.
func (b *Button) SetContent(ctx *component.EventCtx, content ButtonContent) {
	b.content = content
	ctx.RequestPaint()
}

func (b *Button) IsEnabled() bool { return b.state != stateDisabled }

func (b *Button) IsPressed() bool { return b.state == statePressed }

func (b *Button) Enable(ctx *component.EventCtx) { b.setState(ctx, stateInitial) }

func (b *Button) Disable(ctx *component.EventCtx) { b.setState(ctx, stateDisabled) }

func (b *Button) SetEnabled(ctx *component.EventCtx, enabled bool) {
	if enabled {
		b.Enable(ctx)
	} else {
		b.Disable(ctx)
	}
}

func (b *Button) setState(ctx *component.EventCtx, s buttonState) {
	if b.state != s {
		b.state = s
		ctx.RequestPaint()
	}
}

func (b *Button) style() theme.ButtonStyle {
	switch b.state {
	case statePressed:
		return b.styles.Active
	case stateDisabled:
		return b.styles.Disabled
	default:
		return b.styles.Normal
	}
}

func (b *Button) Event(ctx *component.EventCtx, ev component.Event) (ButtonMsg, bool) {
	switch ev.Kind {
	case component.KindTouchStart:
		if b.state != stateDisabled && b.area.Contains(ev.Point) {
			b.setState(ctx, statePressed)
			return ButtonPressed, true
		}
	case component.KindTouchMove:
		inside := b.area.Contains(ev.Point)
		switch {
		case b.state == stateReleased && inside:
			b.setState(ctx, statePressed)
			return ButtonPressed, true
		case b.state == statePressed && !inside:
			b.setState(ctx, stateReleased)
			return ButtonReleased, true
		}
	case component.KindTouchEnd:
		switch {
		case b.state == stateInitial || b.state == stateDisabled:
		case b.state == statePressed && b.area.Contains(ev.Point):
			b.setState(ctx, stateInitial)
			return ButtonClicked, true
		default:
			b.setState(ctx, stateInitial)
		}
	}
	return 0, false
}

func (b *Button) Paint(d display.Display) {
	s := b.style()
	d.FillRect(b.area, s.ButtonColor)
	switch {
	case b.content.Icon != nil:
		d.Icon(b.area.Center(), *b.content.Icon, s.TextColor, s.ButtonColor)
	case b.content.Text != "":
		baseline := b.area.Center().Add(geometry.OffsetY(s.Font.TextHeight() / 2))
		display.TextCenter(d, baseline, b.content.Text, s.Font, s.TextColor, s.ButtonColor)
	}
}

func (b *Button) Bounds(sink func(geometry.Rect)) {
	sink(b.area)
}

func (b *Button) Trace(t component.Tracer) {
	t.Open("Button")
	switch {
	case b.content.Icon != nil:
		t.Field("icon", b.content.Icon.Name)
	case b.content.Text != "":
		t.Field("text", b.content.Text)
	}
	t.Close()
}

// Clicked reports whether a button event was a click.
func Clicked(msg ButtonMsg, ok bool) bool {
	return ok && msg == ButtonClicked
}
