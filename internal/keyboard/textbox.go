package keyboard

import "github.com/muurk/tokenui/internal/component"

// TextBox is a fixed-capacity byte buffer.
type TextBox struct {
	buf []byte
}

func NewTextBox(capacity int) *TextBox {
	return &TextBox{buf: make([]byte, 0, capacity)}
}

func (t *TextBox) Content() string { return string(t.buf) }

func (t *TextBox) Len() int { return len(t.buf) }

func (t *TextBox) Capacity() int { return cap(t.buf) }

func (t *TextBox) IsEmpty() bool { return len(t.buf) == 0 }

func (t *TextBox) IsFull() bool { return len(t.buf) == cap(t.buf) }

// Append adds a character. It is rejected when the box is full.
func (t *TextBox) Append(ctx *component.EventCtx, ch byte) bool {
	if t.IsFull() {
		return false
	}
	t.buf = append(t.buf, ch)
	ctx.RequestPaint()
	return true
}

// ReplaceLast swaps the last character. It is rejected when the box is empty.
func (t *TextBox) ReplaceLast(ctx *component.EventCtx, ch byte) bool {
	if t.IsEmpty() {
		return false
	}
	t.buf[len(t.buf)-1] = ch
	ctx.RequestPaint()
	return true
}

// DeleteLast removes the last character.
func (t *TextBox) DeleteLast(ctx *component.EventCtx) bool {
	if t.IsEmpty() {
		return false
	}
	t.buf = t.buf[:len(t.buf)-1]
	ctx.RequestPaint()
	return true
}

func (t *TextBox) Clear(ctx *component.EventCtx) {
	if !t.IsEmpty() {
		t.buf = t.buf[:0]
		ctx.RequestPaint()
	}
}

// Apply performs a TextEdit and reports whether it changed the content.
func (t *TextBox) Apply(ctx *component.EventCtx, edit TextEdit) bool {
	switch edit.Kind {
	case EditAppend:
		return t.Append(ctx, edit.Char)
	case EditReplaceLast:
		return t.ReplaceLast(ctx, edit.Char)
	default:
		return false
	}
}
