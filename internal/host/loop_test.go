package host

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/muurk/tokenui/internal/display"
	"github.com/muurk/tokenui/internal/layout"
)

func startLoop(t *testing.T, l *layout.Layout) (*Loop, context.CancelFunc) {
	t.Helper()
	loop := NewLoop(NewSession(l, display.NewRecorder()))
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- loop.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		if err := <-errc; !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v", err)
		}
	})
	return loop, cancel
}

func TestLoop_DoAndWaitResult(t *testing.T) {
	loop, _ := startLoop(t, layout.ConfirmAction(layout.ConfirmActionOptions{Title: "T", Action: "A"}))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := loop.Do(ctx, func(s *Session) { s.Tap(confirmPoint) }); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	res, err := loop.WaitResult(ctx)
	if err != nil {
		t.Fatalf("WaitResult() error = %v", err)
	}
	if res.Kind != layout.Confirmed {
		t.Errorf("WaitResult() = %+v", res)
	}
}

func TestLoop_WaitResultTimeout(t *testing.T) {
	loop, _ := startLoop(t, layout.ConfirmAction(layout.ConfirmActionOptions{Title: "T", Action: "A"}))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := loop.WaitResult(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("WaitResult() error = %v, want deadline exceeded", err)
	}
}

func TestLoop_TimerDelivered(t *testing.T) {
	kb := passphraseGeometry()
	loop, _ := startLoop(t, layout.RequestPassphrase(""))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var trace string
	if err := loop.Do(ctx, func(s *Session) {
		s.Tap(kb.KeyArea(1).Center())
		trace = s.Trace()
	}); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if !strings.Contains(trace, "pending:1") {
		t.Fatalf("trace = %q, want a pending key", trace)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		time.Sleep(100 * time.Millisecond)
		if err := loop.Do(ctx, func(s *Session) { trace = s.Trace() }); err != nil {
			t.Fatalf("Do() error = %v", err)
		}
		if !strings.Contains(trace, "pending:") {
			return
		}
	}
	t.Errorf("multi-tap timeout never delivered, trace = %q", trace)
}

func TestLoop_Stopped(t *testing.T) {
	loop := NewLoop(NewSession(layout.RequestPassphrase(""), display.NewRecorder()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := loop.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v", err)
	}

	if err := loop.Do(context.Background(), func(*Session) {}); !errors.Is(err, ErrLoopStopped) {
		t.Errorf("Do() error = %v, want ErrLoopStopped", err)
	}
	if _, err := loop.WaitResult(context.Background()); !errors.Is(err, ErrLoopStopped) {
		t.Errorf("WaitResult() error = %v, want ErrLoopStopped", err)
	}
}
