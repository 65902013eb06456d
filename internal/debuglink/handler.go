package debuglink

import (
	"context"
	"fmt"

	"github.com/muurk/tokenui/internal/geometry"
	"github.com/muurk/tokenui/internal/host"
	"github.com/muurk/tokenui/internal/layout"
	"github.com/muurk/tokenui/internal/widget"
)

// Handle executes req through d. Errors are returned as Go errors; Reply
// turns them into a Response.
func Handle(ctx context.Context, d Driver, req Request) (Response, error) {
	switch req.Type {
	case TypeTouch:
		kind, err := ParseTouchPhase(req.Phase)
		if err != nil {
			return Response{}, &RequestError{Type: req.Type, Err: err}
		}
		return input(ctx, d, req.Type, func(s *host.Session) (layout.Result, bool) {
			return s.Touch(kind, geometry.Pt(req.X, req.Y))
		})

	case TypeTap:
		return input(ctx, d, req.Type, func(s *host.Session) (layout.Result, bool) {
			return s.Tap(geometry.Pt(req.X, req.Y))
		})

	case TypeSwipe:
		dir, ok := widget.ParseSwipeDirection(req.Direction)
		if !ok {
			return Response{}, &RequestError{Type: req.Type, Err: fmt.Errorf("invalid direction %q", req.Direction)}
		}
		return input(ctx, d, req.Type, func(s *host.Session) (layout.Result, bool) {
			return s.Swipe(dir)
		})

	case TypeReadLayout:
		var resp Response
		err := d.Do(ctx, func(s *host.Session) {
			resp = snapshot(s)
		})
		if err != nil {
			return Response{}, &RequestError{Type: req.Type, Err: err}
		}
		return resp, nil

	case TypeWaitResult:
		res, err := d.WaitResult(ctx)
		if err != nil {
			return Response{}, &RequestError{Type: req.Type, Err: err}
		}
		return Response{OK: true, Result: resultFrom(res)}, nil

	default:
		return Response{}, &RequestError{Type: req.Type, Err: ErrUnknownCommand}
	}
}

func input(ctx context.Context, d Driver, typ string, fn func(*host.Session) (layout.Result, bool)) (Response, error) {
	var (
		resp Response
		done bool
	)
	err := d.Do(ctx, func(s *host.Session) {
		if s.Done() {
			done = true
			return
		}
		fn(s)
		resp = snapshot(s)
	})
	if err != nil {
		return Response{}, &RequestError{Type: typ, Err: err}
	}
	if done {
		return Response{}, &RequestError{Type: typ, Err: ErrSessionDone}
	}
	return resp, nil
}

func snapshot(s *host.Session) Response {
	resp := Response{OK: true, Trace: s.Trace()}
	if res, ok := s.Result(); ok {
		resp.Result = resultFrom(res)
	}
	return resp
}

// Reply converts the outcome of Handle into the response sent to clients.
func Reply(resp Response, err error) Response {
	if err != nil {
		return Response{OK: false, Error: err.Error()}
	}
	return resp
}
