package keyboard

import (
	"strings"

	"github.com/muurk/tokenui/internal/component"
	"github.com/muurk/tokenui/internal/display"
	"github.com/muurk/tokenui/internal/geometry"
	"github.com/muurk/tokenui/internal/random"
	"github.com/muurk/tokenui/internal/theme"
	"github.com/muurk/tokenui/internal/widget"
)

const (
	// PinMaxLength is the capacity of the PIN buffer.
	PinMaxLength = 9
	digitCount   = 10

	pinHeaderHeight        = 25
	pinHeaderPaddingSide   = 5
	pinHeaderPaddingBottom = 12
)

var (
	pinMajorOffset = geometry.OffsetY(-2)
	pinMinorOffset = geometry.OffsetY(-1)
)

type (
	buttonChild      = component.Child[widget.ButtonMsg, *widget.Button]
	maybeButton      = component.Maybe[widget.ButtonMsg, *widget.Button]
	maybeButtonChild = component.Child[widget.ButtonMsg, *maybeButton]
)

// PinMsgKind is the terminal outcome of a PIN entry.
type PinMsgKind int

const (
	PinConfirmed PinMsgKind = iota
	PinCancelled
)

// PinMsg is produced when the PIN is confirmed or the entry cancelled.
type PinMsg struct {
	Kind PinMsgKind
	PIN  string
}

// PinOptions configures a PinKeyboard.
type PinOptions struct {
	Prompt    string
	Subprompt string
	// Warning replaces Prompt while no digit has been entered.
	Warning     string
	AllowCancel bool
	// Shuffler randomizes the digit layout. Nil uses random.Secure.
	Shuffler random.Shuffler
	// TraceLayout adds the digit layout to Trace. The layout is secret on a
	// real device; only automated test setups turn this on.
	TraceLayout bool
}

// PinKeyboard is a 4x3 keypad with the digits placed in a random order that
// is fixed for the lifetime of the keyboard.
type PinKeyboard struct {
	digits      [PinMaxLength]byte
	length      int
	layout      [digitCount]string
	allowCancel bool
	traceLayout bool

	majorPrompt  *component.Label
	minorPrompt  *component.Label
	majorWarning *component.Label
	dots         *component.Child[component.Never, *PinDots]
	resetBtn     *maybeButtonChild
	cancelBtn    *maybeButtonChild
	confirmBtn   *buttonChild
	digitBtns    [digitCount]*buttonChild
}

// NewPinKeyboard lays out the keypad in area and shuffles the digits once.
func NewPinKeyboard(area geometry.Rect, opts PinOptions) *PinKeyboard {
	area = area.Inset(geometry.InsetsRight(theme.ContentBorder))

	header, keypad := area.SplitTop(pinHeaderHeight + pinHeaderPaddingBottom)
	header = header.Inset(geometry.NewInsets(0, pinHeaderPaddingSide, pinHeaderPaddingBottom, pinHeaderPaddingSide))

	k := &PinKeyboard{
		allowCancel: opts.AllowCancel,
		traceLayout: opts.TraceLayout,
		majorPrompt: component.LabelLeftAligned(header.TopLeft().Add(pinMajorOffset), opts.Prompt, theme.LabelKeyboard()),
		minorPrompt: component.LabelRightAligned(header.TopRight().Add(pinMinorOffset), opts.Subprompt, theme.LabelKeyboardMinor()),
		dots:        component.NewChild[component.Never](NewPinDots(header, theme.LabelDefault())),
	}
	if opts.Warning != "" {
		k.majorWarning = component.LabelLeftAligned(header.TopLeft().Add(pinMajorOffset), opts.Warning, theme.LabelKeyboardWarning())
	}

	grid := geometry.NewGrid(keypad, 4, 3).WithSpacing(theme.KeyboardSpacing)
	resetCancelArea := grid.RowCol(3, 0)

	reset := widget.ButtonWithIcon(resetCancelArea, theme.IconBack).
		Styled(theme.ButtonReset()).
		InitiallyEnabled(false)
	k.resetBtn = component.NewChild[widget.ButtonMsg](component.MaybeHidden[widget.ButtonMsg](resetCancelArea, theme.BG, reset))

	cancel := widget.ButtonWithIcon(resetCancelArea, theme.IconCancel).Styled(theme.ButtonCancel())
	k.cancelBtn = component.NewChild[widget.ButtonMsg](component.NewMaybe[widget.ButtonMsg](resetCancelArea, theme.BG, cancel, opts.AllowCancel))

	confirm := widget.ButtonWithIcon(grid.RowCol(3, 2), theme.IconConfirm).
		Styled(theme.ButtonConfirm()).
		InitiallyEnabled(false)
	k.confirmBtn = component.NewChild[widget.ButtonMsg](confirm)

	shuffler := opts.Shuffler
	if shuffler == nil {
		shuffler = random.Secure()
	}
	copy(k.layout[:], random.Strings(shuffler, []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}))
	for i, digit := range k.layout {
		// Digits fill the first three rows, the tenth goes to the middle of
		// the bottom row.
		cell := i
		if i == digitCount-1 {
			cell = i + 1
		}
		btn := widget.ButtonWithText(grid.Cell(cell), digit).Styled(theme.ButtonPin())
		k.digitBtns[i] = component.NewChild[widget.ButtonMsg](btn)
	}
	return k
}

// PIN returns the digits entered so far.
func (k *PinKeyboard) PIN() string { return string(k.digits[:k.length]) }

// Len returns the number of digits entered.
func (k *PinKeyboard) Len() int { return k.length }

// IsEmpty reports whether no digit has been entered.
func (k *PinKeyboard) IsEmpty() bool { return k.length == 0 }

// IsFull reports whether the buffer holds PinMaxLength digits.
func (k *PinKeyboard) IsFull() bool { return k.length == PinMaxLength }

// DigitLayout returns the digit shown on each keypad slot.
func (k *PinKeyboard) DigitLayout() [digitCount]string { return k.layout }

// DigitArea returns the keypad area of a digit.
func (k *PinKeyboard) DigitArea(digit byte) (geometry.Rect, bool) {
	for i, d := range k.layout {
		if d[0] == digit {
			return k.digitBtns[i].Inner().Area(), true
		}
	}
	return geometry.Rect{}, false
}

// CancelVisible reports whether the cancel button is shown.
func (k *PinKeyboard) CancelVisible() bool { return k.cancelBtn.Inner().IsVisible() }

// CancelEnabled reports whether the cancel button is shown and accepts taps.
func (k *PinKeyboard) CancelEnabled() bool {
	return k.cancelBtn.Inner().IsVisible() && k.cancelBtn.Inner().Inner().IsEnabled()
}

// EraseVisible reports whether the erase button is shown.
func (k *PinKeyboard) EraseVisible() bool { return k.resetBtn.Inner().IsVisible() }

// EraseEnabled reports whether the erase button is shown and accepts taps.
func (k *PinKeyboard) EraseEnabled() bool {
	return k.resetBtn.Inner().IsVisible() && k.resetBtn.Inner().Inner().IsEnabled()
}

// ConfirmEnabled reports whether the confirm button accepts taps.
func (k *PinKeyboard) ConfirmEnabled() bool { return k.confirmBtn.Inner().IsEnabled() }

// DigitsEnabled reports whether the digit keys accept taps.
func (k *PinKeyboard) DigitsEnabled() bool { return k.digitBtns[0].Inner().IsEnabled() }

// ResetCancelArea returns the slot shared by the erase and cancel buttons.
func (k *PinKeyboard) ResetCancelArea() geometry.Rect { return k.cancelBtn.Inner().Inner().Area() }

// ConfirmArea returns the area of the confirm button.
func (k *PinKeyboard) ConfirmArea() geometry.Rect { return k.confirmBtn.Inner().Area() }

func (k *PinKeyboard) appendDigit(d byte) {
	if k.IsFull() {
		return
	}
	k.digits[k.length] = d
	k.length++
}

func (k *PinKeyboard) eraseDigit() {
	if k.IsEmpty() {
		return
	}
	k.length--
	k.digits[k.length] = 0
}

// recompute derives every button state from the buffer.
func (k *PinKeyboard) recompute(ctx *component.EventCtx) {
	full, empty := k.IsFull(), k.IsEmpty()
	for _, btn := range k.digitBtns {
		btn.Mutate(ctx, func(ctx *component.EventCtx, b *widget.Button) { b.SetEnabled(ctx, !full) })
	}
	k.resetBtn.Mutate(ctx, func(ctx *component.EventCtx, m *maybeButton) {
		m.ShowIf(ctx, !empty)
		m.Inner().SetEnabled(ctx, !empty)
	})
	k.cancelBtn.Mutate(ctx, func(ctx *component.EventCtx, m *maybeButton) {
		m.ShowIf(ctx, empty && k.allowCancel)
		m.Inner().SetEnabled(ctx, empty)
	})
	k.confirmBtn.Mutate(ctx, func(ctx *component.EventCtx, b *widget.Button) { b.SetEnabled(ctx, !empty) })
	count := k.length
	k.dots.Mutate(ctx, func(ctx *component.EventCtx, d *PinDots) { d.Update(ctx, count) })
}

func (k *PinKeyboard) Event(ctx *component.EventCtx, ev component.Event) (PinMsg, bool) {
	if widget.Clicked(k.confirmBtn.Event(ctx, ev)) {
		return PinMsg{Kind: PinConfirmed, PIN: k.PIN()}, true
	}
	if widget.Clicked(k.cancelBtn.Event(ctx, ev)) {
		return PinMsg{Kind: PinCancelled}, true
	}
	if widget.Clicked(k.resetBtn.Event(ctx, ev)) {
		k.eraseDigit()
		k.recompute(ctx)
		return PinMsg{}, false
	}
	for _, btn := range k.digitBtns {
		if widget.Clicked(btn.Event(ctx, ev)) {
			k.appendDigit(btn.Inner().Content().Text[0])
			k.recompute(ctx)
			return PinMsg{}, false
		}
	}
	return PinMsg{}, false
}

func (k *PinKeyboard) Paint(d display.Display) {
	k.resetBtn.Paint(d)
	if k.IsEmpty() {
		k.dots.Inner().Clear(d)
		if k.majorWarning != nil {
			k.majorWarning.Paint(d)
		} else {
			k.majorPrompt.Paint(d)
		}
		k.minorPrompt.Paint(d)
		k.cancelBtn.Paint(d)
	} else {
		k.dots.Paint(d)
	}
	k.confirmBtn.Paint(d)
	for _, btn := range k.digitBtns {
		btn.Paint(d)
	}
}

func (k *PinKeyboard) Bounds(sink func(geometry.Rect)) {
	k.majorPrompt.Bounds(sink)
	k.minorPrompt.Bounds(sink)
	k.resetBtn.Bounds(sink)
	k.cancelBtn.Bounds(sink)
	k.confirmBtn.Bounds(sink)
	k.dots.Bounds(sink)
	for _, btn := range k.digitBtns {
		btn.Bounds(sink)
	}
}

func (k *PinKeyboard) Trace(t component.Tracer) {
	t.Open("PinKeyboard")
	t.Field("length", k.length)
	if k.traceLayout {
		t.Field("keys", strings.Join(k.layout[:], ""))
	}
	t.Field("cancel", k.CancelVisible())
	t.Field("confirm", k.ConfirmEnabled())
	t.Close()
}

const (
	pinDotSize    = 6
	pinDotPadding = 4
)

// PinDots shows one dot per entered digit and repaints only when the count
// changes.
type PinDots struct {
	area  geometry.Rect
	style theme.LabelStyle
	count int
}

// NewPinDots returns an empty dot row centered in area.
func NewPinDots(area geometry.Rect, style theme.LabelStyle) *PinDots {
	return &PinDots{area: area, style: style}
}

// Count returns the number of dots shown.
func (p *PinDots) Count() int { return p.count }

// Update sets the dot count and requests a paint when it changed.
func (p *PinDots) Update(ctx *component.EventCtx, count int) {
	if count != p.count {
		p.count = count
		ctx.RequestPaint()
	}
}

// Clear fills the area with the background color.
func (p *PinDots) Clear(d display.Display) {
	d.FillRect(p.area, p.style.BackgroundColor)
}

func (p *PinDots) size() geometry.Offset {
	width := pinDotSize*p.count + pinDotPadding*max(p.count-1, 0)
	return geometry.Off(width, pinDotSize)
}

func (p *PinDots) Event(*component.EventCtx, component.Event) (component.Never, bool) {
	return component.Never{}, false
}

func (p *PinDots) Paint(d display.Display) {
	p.Clear(d)
	cursor := p.size().Snap(p.area.Center(), geometry.Center, geometry.Center)
	for range p.count {
		display.IconTopLeft(d, cursor, theme.IconDotActive, p.style.TextColor, p.style.BackgroundColor)
		cursor = cursor.Add(geometry.OffsetX(pinDotSize + pinDotPadding))
	}
}

func (p *PinDots) Bounds(sink func(geometry.Rect)) {
	sink(p.area)
}
