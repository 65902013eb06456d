package debuglink

import (
	"context"
	"errors"
	"fmt"

	"github.com/muurk/tokenui/internal/component"
	"github.com/muurk/tokenui/internal/host"
	"github.com/muurk/tokenui/internal/layout"
)

// Request types.
const (
	TypeTouch      = "touch"
	TypeTap        = "tap"
	TypeSwipe      = "swipe"
	TypeReadLayout = "read_layout"
	TypeWaitResult = "wait_result"
)

var (
	// ErrUnknownCommand is returned for an unrecognized request type.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrSessionDone is returned for input sent after the layout finished.
	ErrSessionDone = errors.New("layout already finished")
)

// RequestError describes a malformed or failed request.
type RequestError struct {
	Type string
	Err  error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %v", e.Type, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Driver executes closures on the goroutine owning the session.
type Driver interface {
	Do(ctx context.Context, fn func(*host.Session)) error
	WaitResult(ctx context.Context) (layout.Result, error)
}

// Request is a debug-link command.
type Request struct {
	Type      string `json:"type"`
	Phase     string `json:"phase,omitempty"`
	X         int    `json:"x,omitempty"`
	Y         int    `json:"y,omitempty"`
	Direction string `json:"direction,omitempty"`
}

// Result is the JSON form of a layout result.
type Result struct {
	Kind  string `json:"kind"`
	Value string `json:"value,omitempty"`
}

// Response answers one Request.
type Response struct {
	OK     bool    `json:"ok"`
	Trace  string  `json:"trace,omitempty"`
	Result *Result `json:"result,omitempty"`
	Error  string  `json:"error,omitempty"`
}

func resultFrom(res layout.Result) *Result {
	return &Result{Kind: res.Kind.String(), Value: res.Value}
}

// ParseTouchPhase maps "start", "move" and "end" to event kinds.
func ParseTouchPhase(phase string) (component.EventKind, error) {
	switch phase {
	case "start":
		return component.KindTouchStart, nil
	case "move":
		return component.KindTouchMove, nil
	case "end":
		return component.KindTouchEnd, nil
	default:
		return 0, fmt.Errorf("invalid touch phase %q", phase)
	}
}
