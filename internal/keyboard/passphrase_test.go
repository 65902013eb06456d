package keyboard

import (
	"strings"
	"testing"

	"github.com/muurk/tokenui/internal/component"
	"github.com/muurk/tokenui/internal/display"
	"github.com/muurk/tokenui/internal/geometry"
	"github.com/muurk/tokenui/internal/theme"
)

func swipe[M any](c component.Component[M], from, to geometry.Point) (*component.EventCtx, M, bool) {
	ctx := component.NewEventCtx()
	c.Event(ctx, component.TouchStart(from))
	c.Event(ctx, component.TouchMove(to))
	msg, ok := c.Event(ctx, component.TouchEnd(to))
	return ctx, msg, ok
}

func swipeLeft(k *PassphraseKeyboard) {
	swipe[PassphraseMsgKind](k, geometry.Pt(200, 10), geometry.Pt(40, 10))
}

func swipeRight(k *PassphraseKeyboard) {
	swipe[PassphraseMsgKind](k, geometry.Pt(40, 10), geometry.Pt(200, 10))
}

func pressKey(t *testing.T, k *PassphraseKeyboard, key int) *component.EventCtx {
	t.Helper()
	ctx, msg, ok := tap[PassphraseMsgKind](k, k.KeyArea(key).Center())
	if ok {
		t.Fatalf("key %d produced message %v", key, msg)
	}
	return ctx
}

func TestPassphraseKeyboard_MultiTap(t *testing.T) {
	tests := []struct {
		name  string
		keys  []int
		swipe int
		want  string
	}{
		{"first press", []int{1}, 0, "a"},
		{"cycle", []int{1, 1, 1}, 0, "c"},
		{"wrap", []int{1, 1, 1, 1}, 0, "a"},
		{"four letters", []int{6, 6, 6, 6}, 0, "s"},
		{"other key commits", []int{1, 1, 2}, 0, "bd"},
		{"space never pending", []int{0, 0}, 0, "  "},
		{"symbols", []int{9, 9}, 0, "#"},
		{"digits", []int{1, 1, 9}, -1, "220"},
		{"upper case", []int{8, 8}, 1, "X"},
		{"special", []int{2, 2, 2}, 2, "\\"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := NewPassphraseKeyboard(theme.Screen())
			for range max(tt.swipe, 0) {
				swipeLeft(k)
			}
			for range max(-tt.swipe, 0) {
				swipeRight(k)
			}
			for _, key := range tt.keys {
				pressKey(t, k, key)
			}
			if got := k.Passphrase(); got != tt.want {
				t.Errorf("Passphrase() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPassphraseKeyboard_Timeout(t *testing.T) {
	k := NewPassphraseKeyboard(theme.Screen())

	ctx := pressKey(t, k, 1)
	timers := ctx.Timers()
	if len(timers) != 1 {
		t.Fatalf("Timers() = %+v, want one", timers)
	}
	if key, ok := k.PendingKey(); !ok || key != 1 {
		t.Fatalf("PendingKey() = %d, %v", key, ok)
	}

	ctx = component.NewEventCtx()
	if _, ok := k.Event(ctx, component.TimerEvent(timers[0].Token)); ok {
		t.Fatal("timeout produced a message")
	}
	if _, ok := k.PendingKey(); ok {
		t.Fatal("key still pending after timeout")
	}

	// A second delivery of the same timer is a no-op.
	ctx = component.NewEventCtx()
	k.Event(ctx, component.TimerEvent(timers[0].Token))
	if ctx.PaintRequested() {
		t.Error("stale timer requested a paint")
	}

	pressKey(t, k, 1)
	if got := k.Passphrase(); got != "aa" {
		t.Errorf("Passphrase() = %q, want aa", got)
	}
}

func TestPassphraseKeyboard_PageSwipe(t *testing.T) {
	k := NewPassphraseKeyboard(theme.Screen())
	if k.ActivePage() != 1 {
		t.Fatalf("ActivePage() = %d, want 1", k.ActivePage())
	}

	steps := []struct {
		left bool
		want int
	}{
		{true, 2},
		{true, 3},
		{true, 0},
		{false, 3},
		{false, 2},
		{false, 1},
		{false, 0},
		{false, 3},
	}
	for i, s := range steps {
		if s.left {
			swipeLeft(k)
		} else {
			swipeRight(k)
		}
		if k.ActivePage() != s.want {
			t.Fatalf("step %d: ActivePage() = %d, want %d", i, k.ActivePage(), s.want)
		}
	}
}

func TestPassphraseKeyboard_SwipeCommitsPending(t *testing.T) {
	k := NewPassphraseKeyboard(theme.Screen())
	pressKey(t, k, 1)
	swipeLeft(k)
	if _, ok := k.PendingKey(); ok {
		t.Fatal("key still pending after page swipe")
	}
	pressKey(t, k, 1)
	if got := k.Passphrase(); got != "aA" {
		t.Errorf("Passphrase() = %q, want aA", got)
	}
}

func TestPassphraseKeyboard_SwipeFades(t *testing.T) {
	k := NewPassphraseKeyboard(theme.Screen())
	rec := display.NewRecorder()
	k.Paint(rec)
	if len(rec.Fades()) != 0 {
		t.Fatalf("initial paint faded: %v", rec.Fades())
	}

	swipeLeft(k)
	rec.Reset()
	k.Paint(rec)
	if got := rec.Fades(); len(got) != 1 || got[0] != theme.BacklightNormal {
		t.Errorf("Fades() = %v, want [%d]", got, theme.BacklightNormal)
	}
	if texts := strings.Join(rec.Texts(), "|"); !strings.Contains(texts, "ABC") {
		t.Errorf("new page keys not repainted: %q", texts)
	}

	rec.Reset()
	k.Paint(rec)
	if len(rec.Fades()) != 0 {
		t.Errorf("second paint faded again: %v", rec.Fades())
	}
}

func TestPassphraseKeyboard_Back(t *testing.T) {
	t.Run("cancel when empty", func(t *testing.T) {
		k := NewPassphraseKeyboard(theme.Screen())
		if k.EraseEnabled() {
			t.Error("erase enabled on empty passphrase")
		}
		_, msg, ok := tap[PassphraseMsgKind](k, k.BackArea().Center())
		if !ok || msg != PassphraseCancelled {
			t.Errorf("back = %v, %v, want cancelled", msg, ok)
		}
	})

	t.Run("erase when not empty", func(t *testing.T) {
		k := NewPassphraseKeyboard(theme.Screen())
		pressKey(t, k, 1)
		pressKey(t, k, 2)
		if !k.EraseEnabled() {
			t.Fatal("erase disabled on non-empty passphrase")
		}
		if name := k.back.Inner().Content().Icon.Name; name != theme.IconBack.Name {
			t.Errorf("back icon = %q, want %q", name, theme.IconBack.Name)
		}

		if _, _, ok := tap[PassphraseMsgKind](k, k.BackArea().Center()); ok {
			t.Fatal("erase produced a message")
		}
		if got := k.Passphrase(); got != "a" {
			t.Errorf("Passphrase() = %q, want a", got)
		}
		if _, ok := k.PendingKey(); ok {
			t.Error("erase left a pending key")
		}

		tap[PassphraseMsgKind](k, k.BackArea().Center())
		if name := k.back.Inner().Content().Icon.Name; name != theme.IconCancel.Name {
			t.Errorf("back icon = %q, want %q", name, theme.IconCancel.Name)
		}
	})
}

func TestPassphraseKeyboard_Confirm(t *testing.T) {
	k := NewPassphraseKeyboard(theme.Screen())
	pressKey(t, k, 3)
	_, msg, ok := tap[PassphraseMsgKind](k, k.ConfirmArea().Center())
	if !ok || msg != PassphraseConfirmed {
		t.Fatalf("confirm = %v, %v", msg, ok)
	}
	if k.Passphrase() != "g" {
		t.Errorf("Passphrase() = %q, want g", k.Passphrase())
	}
}

func TestPassphraseKeyboard_Capacity(t *testing.T) {
	k := NewPassphraseKeyboard(theme.Screen())
	for range PassphraseMaxLength + 5 {
		pressKey(t, k, 0)
	}
	if got := len(k.Passphrase()); got != PassphraseMaxLength {
		t.Fatalf("len = %d, want %d", got, PassphraseMaxLength)
	}

	pressKey(t, k, 1)
	if _, ok := k.PendingKey(); ok {
		t.Error("rejected append left a pending key")
	}
	pressKey(t, k, 1)
	if got := k.Passphrase(); strings.ContainsAny(got, "abc") {
		t.Errorf("full buffer was modified: %q", got)
	}
}

func TestPassphraseKeyboard_PendingMarker(t *testing.T) {
	k := NewPassphraseKeyboard(theme.Screen())
	rec := display.NewRecorder()
	k.Paint(rec)

	ctx := pressKey(t, k, 4)
	rec.Reset()
	k.Paint(rec)
	if !containsString(rec.Icons(), theme.IconPendingMark.Name) {
		t.Errorf("pending marker not painted: %v", rec.Icons())
	}

	k.Event(component.NewEventCtx(), component.TimerEvent(ctx.Timers()[0].Token))
	rec.Reset()
	k.Paint(rec)
	if containsString(rec.Icons(), theme.IconPendingMark.Name) {
		t.Error("pending marker painted after timeout")
	}
	if !containsString(rec.Texts(), "j") {
		t.Errorf("committed text not repainted: %v", rec.Texts())
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestPassphraseKeyboard_Trace(t *testing.T) {
	k := NewPassphraseKeyboard(theme.Screen())
	pressKey(t, k, 1)
	pressKey(t, k, 1)

	want := "<PassphraseKeyboard active_page:1 textbox:b pending:1 >"
	if got := component.TraceString(k); got != want {
		t.Errorf("trace = %q, want %q", got, want)
	}
}
