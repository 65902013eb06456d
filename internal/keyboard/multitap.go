package keyboard

import (
	"time"

	"github.com/muurk/tokenui/internal/component"
)

// MultiTapTimeout is how long a pending character can still be cycled.
const MultiTapTimeout = time.Second

// EditKind is the operation of a TextEdit.
type EditKind int

const (
	EditNone EditKind = iota
	EditAppend
	EditReplaceLast
)

// TextEdit is a change to apply to a TextBox.
type TextEdit struct {
	Kind EditKind
	Char byte
}

type pending struct {
	key   int
	press int
	timer component.TimerToken
}

// MultiTapKeyboard tracks the key whose character is still pending.
type MultiTapKeyboard struct {
	pending *pending
}

func NewMultiTapKeyboard() *MultiTapKeyboard {
	return &MultiTapKeyboard{}
}

// PendingKey returns the key whose character can still be cycled.
func (m *MultiTapKeyboard) PendingKey() (int, bool) {
	if m.pending == nil {
		return 0, false
	}
	return m.pending.key, true
}

// PendingPress returns how many times the pending key was pressed, minus one.
func (m *MultiTapKeyboard) PendingPress() (int, bool) {
	if m.pending == nil {
		return 0, false
	}
	return m.pending.press, true
}

// IsTimeoutEvent reports whether ev is the timer of the pending character.
func (m *MultiTapKeyboard) IsTimeoutEvent(ev component.Event) bool {
	return m.pending != nil && ev.Kind == component.KindTimer && ev.Token == m.pending.timer
}

// ClearPendingState commits the pending character.
func (m *MultiTapKeyboard) ClearPendingState(ctx *component.EventCtx) {
	if m.pending != nil {
		m.pending = nil
		ctx.RequestPaint()
	}
}

// ClickKey handles a press of key carrying the given characters. A repeated
// press of the pending key replaces the last character with the next one of
// the set; any other press appends the first character. Keys with a single
// character never become pending.
func (m *MultiTapKeyboard) ClickKey(ctx *component.EventCtx, key int, chars string) TextEdit {
	if chars == "" {
		m.ClearPendingState(ctx)
		return TextEdit{}
	}

	isPending, press := false, 0
	if m.pending != nil && m.pending.key == key {
		isPending, press = true, m.pending.press+1
	}

	if len(chars) > 1 {
		m.pending = &pending{key: key, press: press, timer: ctx.RequestTimer(MultiTapTimeout)}
	} else {
		m.pending = nil
	}

	ch := chars[press%len(chars)]
	if isPending {
		return TextEdit{Kind: EditReplaceLast, Char: ch}
	}
	return TextEdit{Kind: EditAppend, Char: ch}
}
