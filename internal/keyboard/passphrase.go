package keyboard

import (
	"github.com/muurk/tokenui/internal/component"
	"github.com/muurk/tokenui/internal/display"
	"github.com/muurk/tokenui/internal/geometry"
	"github.com/muurk/tokenui/internal/theme"
	"github.com/muurk/tokenui/internal/widget"
)

const (
	// PassphraseMaxLength is the capacity of the passphrase buffer.
	PassphraseMaxLength = 50

	passphrasePageCount = 4
	passphraseKeyCount  = 10
	startingPage        = 1

	inputTextOffset = 8
)

var passphraseKeys = [passphrasePageCount][passphraseKeyCount]string{
	{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"},
	{" ", "abc", "def", "ghi", "jkl", "mno", "pqrs", "tuv", "wxyz", "*#"},
	{" ", "ABC", "DEF", "GHI", "JKL", "MNO", "PQRS", "TUV", "WXYZ", "*#"},
	{"_<>", ".:@", "/|\\", "!()", "+%&", "-[]", "?{}", ",'`", ";\"~", "$^="},
}

// PassphraseMsgKind is the terminal outcome of a passphrase entry.
type PassphraseMsgKind int

const (
	PassphraseConfirmed PassphraseMsgKind = iota
	PassphraseCancelled
)

// PassphraseKeyboard is a multi-tap keyboard with four pages of ten keys,
// switched by horizontal swipes. The text is read with Passphrase after
// confirmation.
type PassphraseKeyboard struct {
	pageSwipe *widget.Swipe
	input     *component.Child[component.Never, *passphraseInput]
	back      *buttonChild
	confirm   *buttonChild
	keys      [passphrasePageCount][passphraseKeyCount]*buttonChild
	scrollbar *widget.ScrollBar
	fade      bool
}

func NewPassphraseKeyboard(area geometry.Rect) *PassphraseKeyboard {
	inputArea := geometry.NewGrid(area, 5, 1).WithSpacing(theme.KeyboardSpacing).RowCol(0, 0)
	inputArea, scrollArea := inputArea.SplitBottom(widget.DotSize)
	inputArea = inputArea.Inset(geometry.NewInsets(0, pinHeaderPaddingSide, 2, pinHeaderPaddingSide))

	keyGrid := geometry.NewGrid(area, 5, 3).WithSpacing(theme.KeyboardSpacing)

	k := &PassphraseKeyboard{
		pageSwipe: widget.SwipeHorizontal(area),
		input:     component.NewChild[component.Never](newPassphraseInput(inputArea)),
		confirm: component.NewChild[widget.ButtonMsg](
			widget.ButtonWithIcon(keyGrid.Cell(14), theme.IconConfirm).Styled(theme.ButtonConfirm())),
		back: component.NewChild[widget.ButtonMsg](
			widget.ButtonWithIcon(keyGrid.Cell(12), theme.IconCancel).Styled(theme.ButtonCancel())),
		scrollbar: widget.ScrollBarHorizontal(scrollArea, passphrasePageCount, startingPage),
	}
	for page, labels := range passphraseKeys {
		for key, label := range labels {
			k.keys[page][key] = component.NewChild[widget.ButtonMsg](newPassphraseKey(keyGrid, key, label))
		}
	}
	return k
}

func newPassphraseKey(grid geometry.Grid, key int, label string) *widget.Button {
	// Keys start on the second row; the last key takes the middle of the
	// bottom row.
	cell := key + 3
	if key == passphraseKeyCount-1 {
		cell = key + 4
	}
	if label == " " {
		return widget.ButtonWithIcon(grid.Cell(cell), theme.IconSpace)
	}
	return widget.ButtonWithText(grid.Cell(cell), label)
}

func keyText(content widget.ButtonContent) string {
	if content.Icon != nil {
		return " "
	}
	return content.Text
}

// Passphrase returns the entered text.
func (k *PassphraseKeyboard) Passphrase() string { return k.input.Inner().textbox.Content() }

// ActivePage returns the index of the visible key page.
func (k *PassphraseKeyboard) ActivePage() int { return k.scrollbar.ActivePage }

// EraseEnabled reports whether the erase button deletes a character. When
// it does not, pressing it cancels the entry.
func (k *PassphraseKeyboard) EraseEnabled() bool { return !k.input.Inner().textbox.IsEmpty() }

// PendingKey returns the slot whose character can still be cycled.
func (k *PassphraseKeyboard) PendingKey() (int, bool) { return k.input.Inner().multiTap.PendingKey() }

// KeyArea returns the area of a key slot.
func (k *PassphraseKeyboard) KeyArea(key int) geometry.Rect {
	return k.keys[k.scrollbar.ActivePage][key].Inner().Area()
}

func (k *PassphraseKeyboard) BackArea() geometry.Rect { return k.back.Inner().Area() }

func (k *PassphraseKeyboard) ConfirmArea() geometry.Rect { return k.confirm.Inner().Area() }

func (k *PassphraseKeyboard) onPageSwipe(ctx *component.EventCtx, dir widget.SwipeDirection) {
	page := k.scrollbar.ActivePage
	switch dir {
	case widget.SwipeLeft:
		page = (page + 1) % passphrasePageCount
	case widget.SwipeRight:
		page = (page + passphrasePageCount - 1) % passphrasePageCount
	}
	k.scrollbar.GoTo(page)

	k.input.Mutate(ctx, func(ctx *component.EventCtx, i *passphraseInput) {
		i.multiTap.ClearPendingState(ctx)
	})
	for _, btn := range k.keys[page] {
		component.RequestCompleteRepaint[widget.ButtonMsg](ctx, btn)
	}
	k.fade = true
}

// afterEdit turns the erase button into a cancel button when the text is
// empty and back again.
func (k *PassphraseKeyboard) afterEdit(ctx *component.EventCtx) {
	empty := k.input.Inner().textbox.IsEmpty()
	k.back.Mutate(ctx, func(ctx *component.EventCtx, b *widget.Button) {
		icon, styles := theme.IconBack, theme.ButtonReset()
		if empty {
			icon, styles = theme.IconCancel, theme.ButtonCancel()
		}
		if cur := b.Content().Icon; cur != nil && cur.Name == icon.Name {
			return
		}
		b.Styled(styles)
		b.SetContent(ctx, widget.ButtonContent{Icon: &icon})
	})
}

func (k *PassphraseKeyboard) Event(ctx *component.EventCtx, ev component.Event) (PassphraseMsgKind, bool) {
	if k.input.Inner().multiTap.IsTimeoutEvent(ev) {
		k.input.Mutate(ctx, func(ctx *component.EventCtx, i *passphraseInput) {
			i.multiTap.ClearPendingState(ctx)
		})
		return 0, false
	}
	if dir, ok := k.pageSwipe.Event(ctx, ev); ok {
		k.onPageSwipe(ctx, dir)
		return 0, false
	}
	if widget.Clicked(k.confirm.Event(ctx, ev)) {
		return PassphraseConfirmed, true
	}
	if widget.Clicked(k.back.Event(ctx, ev)) {
		if k.input.Inner().textbox.IsEmpty() {
			return PassphraseCancelled, true
		}
		k.input.Mutate(ctx, func(ctx *component.EventCtx, i *passphraseInput) {
			i.multiTap.ClearPendingState(ctx)
			i.textbox.DeleteLast(ctx)
		})
		k.afterEdit(ctx)
		return 0, false
	}
	for key, btn := range k.keys[k.scrollbar.ActivePage] {
		if !widget.Clicked(btn.Event(ctx, ev)) {
			continue
		}
		text := keyText(btn.Inner().Content())
		k.input.Mutate(ctx, func(ctx *component.EventCtx, i *passphraseInput) {
			edit := i.multiTap.ClickKey(ctx, key, text)
			if !i.textbox.Apply(ctx, edit) {
				// A rejected append must not leave a pending character that a
				// later press would replace.
				i.multiTap.ClearPendingState(ctx)
			}
		})
		k.afterEdit(ctx)
		return 0, false
	}
	return 0, false
}

func (k *PassphraseKeyboard) Paint(d display.Display) {
	k.input.Paint(d)
	k.scrollbar.Paint(d)
	k.confirm.Paint(d)
	k.back.Paint(d)
	for _, btn := range k.keys[k.scrollbar.ActivePage] {
		btn.Paint(d)
	}
	if k.fade {
		k.fade = false
		// Blocks until the backlight is restored.
		d.FadeBacklight(theme.BacklightNormal)
	}
}

func (k *PassphraseKeyboard) Bounds(sink func(geometry.Rect)) {
	k.input.Bounds(sink)
	k.scrollbar.Bounds(sink)
	k.confirm.Bounds(sink)
	k.back.Bounds(sink)
	for _, btn := range k.keys[k.scrollbar.ActivePage] {
		btn.Bounds(sink)
	}
}

func (k *PassphraseKeyboard) Trace(t component.Tracer) {
	t.Open("PassphraseKeyboard")
	t.Field("active_page", k.scrollbar.ActivePage)
	t.Field("textbox", k.Passphrase())
	if key, ok := k.PendingKey(); ok {
		t.Field("pending", key)
	}
	t.Close()
}

type passphraseInput struct {
	area     geometry.Rect
	textbox  *TextBox
	multiTap *MultiTapKeyboard
}

func newPassphraseInput(area geometry.Rect) *passphraseInput {
	return &passphraseInput{
		area:     area,
		textbox:  NewTextBox(PassphraseMaxLength),
		multiTap: NewMultiTapKeyboard(),
	}
}

func (i *passphraseInput) Event(*component.EventCtx, component.Event) (component.Never, bool) {
	return component.Never{}, false
}

func (i *passphraseInput) Paint(d display.Display) {
	style := theme.LabelDefault()
	baseline := i.area.BottomLeft().Sub(geometry.OffsetY(inputTextOffset))
	text := i.textbox.Content()

	d.FillRect(i.area, theme.BG)
	d.Text(baseline, text, style.Font, style.TextColor, style.BackgroundColor)
	if _, ok := i.multiTap.PendingKey(); ok && text != "" {
		paintPendingMarker(d, baseline, text, style)
	}
}

func (i *passphraseInput) Bounds(sink func(geometry.Rect)) {
	sink(i.area)
}

// paintPendingMarker underlines the last character of text.
func paintPendingMarker(d display.Display, baseline geometry.Point, text string, style theme.LabelStyle) {
	before := style.Font.TextWidth(text[:len(text)-1])
	width := style.Font.TextWidth(text[len(text)-1:])
	center := baseline.Add(geometry.Off(before+width/2, 2))
	d.Icon(center, theme.IconPendingMark, style.TextColor, style.BackgroundColor)
}
