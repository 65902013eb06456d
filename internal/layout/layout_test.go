package layout

import (
	"fmt"
	"strings"
	"testing"

	"github.com/muurk/tokenui/internal/component"
	"github.com/muurk/tokenui/internal/display"
	"github.com/muurk/tokenui/internal/geometry"
	"github.com/muurk/tokenui/internal/keyboard"
	"github.com/muurk/tokenui/internal/random"
	"github.com/muurk/tokenui/internal/theme"
)

// Inside the button row of ConfirmAction: the cancel button spans x 10..81
// and the confirm button x 87..230, both at y 192..230.
var (
	cancelPoint  = geometry.Pt(40, 215)
	confirmPoint = geometry.Pt(200, 215)
)

func tap(l *Layout, p geometry.Point) (Result, bool) {
	l.Event(component.TouchStart(p))
	return l.Event(component.TouchEnd(p))
}

func swipeUp(l *Layout) {
	l.Event(component.TouchStart(geometry.Pt(120, 170)))
	l.Event(component.TouchMove(geometry.Pt(120, 70)))
	l.Event(component.TouchEnd(geometry.Pt(120, 70)))
}

func longText() string {
	words := make([]string, 90)
	for i := range words {
		words[i] = fmt.Sprintf("word%02d", i)
	}
	return strings.Join(words, " ")
}

func TestResultKind_String(t *testing.T) {
	tests := []struct {
		kind ResultKind
		want string
	}{
		{Confirmed, "confirmed"},
		{Cancelled, "cancelled"},
		{ResultKind(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestConfirmAction_Buttons(t *testing.T) {
	tests := []struct {
		name  string
		point geometry.Point
		want  ResultKind
	}{
		{"confirm", confirmPoint, Confirmed},
		{"cancel", cancelPoint, Cancelled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ConfirmAction(ConfirmActionOptions{Title: "WIPE DEVICE", Action: "Wipe?", Description: "All data will be lost."})
			res, ok := tap(l, tt.point)
			if !ok || res.Kind != tt.want {
				t.Fatalf("tap = %+v, %v, want %v", res, ok, tt.want)
			}
			if !l.Done() {
				t.Error("Done() = false after result")
			}
			if got, ok := l.Result(); !ok || got != res {
				t.Errorf("Result() = %+v, %v", got, ok)
			}
		})
	}
}

func TestConfirmAction_ResultOnce(t *testing.T) {
	l := ConfirmAction(ConfirmActionOptions{Title: "T", Action: "A"})
	if _, ok := tap(l, confirmPoint); !ok {
		t.Fatal("no result")
	}
	if res, ok := tap(l, cancelPoint); ok {
		t.Errorf("second result %+v delivered", res)
	}
	if res, _ := l.Result(); res.Kind != Confirmed {
		t.Errorf("Result() = %+v, want confirmed", res)
	}
}

func TestConfirmAction_Trace(t *testing.T) {
	tests := []struct {
		name string
		opts ConfirmActionOptions
		want []string
	}{
		{
			"default verb",
			ConfirmActionOptions{Title: "SEND", Action: "Send 1 BTC?"},
			[]string{"<Frame title:SEND ", "<Button icon:cancel >", "<Button text:CONFIRM >"},
		},
		{
			"custom verb",
			ConfirmActionOptions{Title: "SEND", Action: "Send?", Verb: "HOLD"},
			[]string{"<Button text:HOLD >"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ConfirmAction(tt.opts)
			trace := l.Trace()
			for _, w := range tt.want {
				if !strings.Contains(trace, w) {
					t.Errorf("trace %q missing %q", trace, w)
				}
			}
			if l.Title() != tt.opts.Title || l.Name() != NameConfirmAction {
				t.Errorf("Title() = %q, Name() = %q", l.Title(), l.Name())
			}
		})
	}
}

func TestConfirmAction_Reverse(t *testing.T) {
	l := ConfirmAction(ConfirmActionOptions{Title: "T", Action: "ACTION", Description: "details", Reverse: true})
	trace := l.Trace()
	if strings.Index(trace, "details") > strings.Index(trace, "ACTION") {
		t.Errorf("description not first: %q", trace)
	}
}

func TestConfirmAction_ButtonsOnLastPageOnly(t *testing.T) {
	l := ConfirmAction(ConfirmActionOptions{Title: "T", Action: "Read", Description: longText()})
	if !strings.Contains(l.Trace(), "active_page:0") {
		t.Fatalf("trace = %q", l.Trace())
	}

	if _, ok := tap(l, confirmPoint); ok {
		t.Fatal("confirm reachable on the first page")
	}

	for i := 0; i < 10 && !l.Done(); i++ {
		swipeUp(l)
		if res, ok := tap(l, confirmPoint); ok {
			if res.Kind != Confirmed {
				t.Fatalf("result = %+v", res)
			}
		}
	}
	if !l.Done() {
		t.Fatalf("never confirmed, trace = %q", l.Trace())
	}
}

func TestLayout_PaintAppliesBacklight(t *testing.T) {
	l := ConfirmAction(ConfirmActionOptions{Title: "T", Description: longText()})
	rec := display.NewRecorder()
	l.Paint(rec)

	l.Event(component.TouchStart(geometry.Pt(120, 170)))
	l.Event(component.TouchMove(geometry.Pt(120, 110)))
	l.Paint(rec)
	if got := rec.Backlight(); got != 76 {
		t.Errorf("Backlight() = %d during drag, want 76", got)
	}

	l.Event(component.TouchEnd(geometry.Pt(120, 110)))
	if !l.NeedsPaint() {
		t.Fatal("page change did not request a paint")
	}
	rec.Reset()
	l.Paint(rec)
	if got := rec.Fades(); len(got) != 1 || got[0] != theme.BacklightNormal {
		t.Errorf("Fades() = %v after page change", got)
	}
	if len(rec.Texts()) == 0 {
		t.Error("new page was not painted")
	}
}

func TestLayout_RepaintOnlyWhenNeeded(t *testing.T) {
	l := ConfirmAction(ConfirmActionOptions{Title: "T", Action: "A"})
	if !l.NeedsPaint() {
		t.Fatal("new layout does not need a paint")
	}
	rec := display.NewRecorder()
	l.Paint(rec)
	if l.NeedsPaint() {
		t.Fatal("NeedsPaint() after paint")
	}

	l.Event(component.TouchStart(geometry.Pt(120, 100)))
	if l.NeedsPaint() {
		t.Error("touch on text requested a paint")
	}

	l.RequestCompleteRepaint()
	if !l.NeedsPaint() {
		t.Error("RequestCompleteRepaint() did not mark the tree")
	}
	rec.Reset()
	l.Paint(rec)
	if !strings.Contains(strings.Join(rec.Texts(), "|"), "CONFIRM") {
		t.Errorf("complete repaint missed the confirm button: %v", rec.Texts())
	}
}

func pinKeyboard(l *Layout) *keyboard.PinKeyboard {
	return l.root.(*rootChild[keyboard.PinMsg, *keyboard.PinKeyboard]).child.Inner()
}

func TestRequestPin(t *testing.T) {
	l := RequestPin(RequestPinOptions{Prompt: "Enter PIN", AllowCancel: true, Shuffler: random.Seeded([32]byte{3})})
	kb := pinKeyboard(l)

	for _, d := range []byte("1234") {
		area, _ := kb.DigitArea(d)
		if _, ok := tap(l, area.Center()); ok {
			t.Fatalf("digit %q finished the layout", d)
		}
	}
	res, ok := tap(l, kb.ConfirmArea().Center())
	if !ok || res != (Result{Kind: Confirmed, Value: "1234"}) {
		t.Errorf("confirm = %+v, %v", res, ok)
	}
}

func TestRequestPin_Cancel(t *testing.T) {
	l := RequestPin(RequestPinOptions{Prompt: "Enter PIN", AllowCancel: true})
	res, ok := tap(l, pinKeyboard(l).ResetCancelArea().Center())
	if !ok || res.Kind != Cancelled || res.Value != "" {
		t.Errorf("cancel = %+v, %v", res, ok)
	}
}

func TestRequestPin_TraceHidesLayout(t *testing.T) {
	tests := []struct {
		name        string
		traceLayout bool
		wantKeys    bool
	}{
		{"default", false, false},
		{"trace layout", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := RequestPin(RequestPinOptions{Prompt: "Enter PIN", TraceLayout: tt.traceLayout})
			if got := strings.Contains(l.Trace(), "keys:"); got != tt.wantKeys {
				t.Errorf("trace %q contains keys = %v, want %v", l.Trace(), got, tt.wantKeys)
			}
		})
	}
}

func passphraseKeyboard(l *Layout) *keyboard.PassphraseKeyboard {
	return l.root.(*rootChild[keyboard.PassphraseMsgKind, *keyboard.PassphraseKeyboard]).child.Inner()
}

func TestRequestPassphrase(t *testing.T) {
	l := RequestPassphrase("Enter passphrase")
	kb := passphraseKeyboard(l)
	if l.Title() != "Enter passphrase" {
		t.Errorf("Title() = %q", l.Title())
	}

	tap(l, kb.KeyArea(1).Center())
	timers := l.Timers()
	if len(timers) != 1 {
		t.Fatalf("Timers() = %+v, want one", timers)
	}
	if again := l.Timers(); len(again) != 0 {
		t.Errorf("Timers() not drained: %+v", again)
	}

	if _, ok := l.Event(component.TimerEvent(timers[0].Token)); ok {
		t.Fatal("timer finished the layout")
	}
	tap(l, kb.KeyArea(1).Center())

	res, ok := tap(l, kb.ConfirmArea().Center())
	if !ok || res != (Result{Kind: Confirmed, Value: "aa"}) {
		t.Errorf("confirm = %+v, %v", res, ok)
	}
}

func TestRequestPassphrase_EraseCancels(t *testing.T) {
	l := RequestPassphrase("")
	res, ok := tap(l, passphraseKeyboard(l).BackArea().Center())
	if !ok || res.Kind != Cancelled {
		t.Errorf("back = %+v, %v", res, ok)
	}
}
