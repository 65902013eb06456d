package emulator

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/tokenui/internal/host"
	"github.com/muurk/tokenui/internal/layout"
)

// ErrStopped is returned by Driver calls after the program exited.
var ErrStopped = errors.New("emulator stopped")

// Driver runs closures on the Bubble Tea goroutine that owns the session.
// It satisfies the debug link's driver interface.
type Driver struct {
	send    func(tea.Msg)
	outcome *outcome
	stopped chan struct{}
	once    sync.Once
}

// NewDriver returns a driver for m. send is usually (*tea.Program).Send.
func NewDriver(m Model, send func(tea.Msg)) *Driver {
	return &Driver{
		send:    send,
		outcome: m.outcome,
		stopped: make(chan struct{}),
	}
}

// Stop releases pending and future calls. Call it once the program has
// returned.
func (d *Driver) Stop() {
	d.once.Do(func() { close(d.stopped) })
}

func (d *Driver) Do(ctx context.Context, fn func(*host.Session)) error {
	msg := doMsg{fn: fn, done: make(chan struct{})}
	// Send blocks until the program reads the message or exits.
	go d.send(msg)
	select {
	case <-msg.done:
		return nil
	case <-d.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Driver) WaitResult(ctx context.Context) (layout.Result, error) {
	select {
	case <-d.outcome.done:
		return d.outcome.res, nil
	case <-d.stopped:
		select {
		case <-d.outcome.done:
			return d.outcome.res, nil
		default:
			return layout.Result{}, ErrStopped
		}
	case <-ctx.Done():
		return layout.Result{}, ctx.Err()
	}
}
