package host

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/muurk/tokenui/internal/component"
	"github.com/muurk/tokenui/internal/layout"
	"github.com/muurk/tokenui/internal/logging"
	"go.uber.org/zap"
)

// ErrLoopStopped is returned by Do and WaitResult once Run has returned.
var ErrLoopStopped = errors.New("host loop stopped")

// Loop runs a Session on a single goroutine. Timer callbacks and callers of
// Do post closures that the loop executes in order.
type Loop struct {
	session *Session
	work    chan func()
	stopped chan struct{}
	result  chan struct{}
	final   layout.Result

	mu     sync.Mutex
	timers map[component.TimerToken]*time.Timer
	once   sync.Once
}

// NewLoop takes ownership of s. Only the loop goroutine may use s after
// this call.
func NewLoop(s *Session) *Loop {
	l := &Loop{
		session: s,
		work:    make(chan func()),
		stopped: make(chan struct{}),
		result:  make(chan struct{}),
		timers:  make(map[component.TimerToken]*time.Timer),
	}
	s.SetScheduler(l.scheduleTimer)
	return l
}

func (l *Loop) scheduleTimer(req component.TimerRequest) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.timers[req.Token] = time.AfterFunc(req.Duration, func() {
		l.mu.Lock()
		delete(l.timers, req.Token)
		l.mu.Unlock()
		l.post(func() { l.session.Timer(req.Token) })
	})
}

func (l *Loop) post(fn func()) bool {
	select {
	case l.work <- fn:
		return true
	case <-l.stopped:
		return false
	}
}

// Run executes posted closures until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	defer l.stop()
	l.checkResult()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.work:
			fn()
			l.checkResult()
		}
	}
}

func (l *Loop) checkResult() {
	if l.session.Done() {
		l.once.Do(func() {
			l.final, _ = l.session.Result()
			logging.Debug("Host loop result", zap.Stringer("result", l.final))
			close(l.result)
		})
	}
}

func (l *Loop) stop() {
	close(l.stopped)
	l.mu.Lock()
	defer l.mu.Unlock()
	for token, t := range l.timers {
		t.Stop()
		delete(l.timers, token)
	}
}

// Do runs fn on the loop goroutine and waits for it to finish.
func (l *Loop) Do(ctx context.Context, fn func(*Session)) error {
	done := make(chan struct{})
	task := func() {
		defer close(done)
		fn(l.session)
	}
	select {
	case l.work <- task:
	case <-l.stopped:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	// A task that was accepted always runs to completion.
	<-done
	return nil
}

// WaitResult blocks until the layout produced its result.
func (l *Loop) WaitResult(ctx context.Context) (layout.Result, error) {
	select {
	case <-l.result:
	case <-l.stopped:
		select {
		case <-l.result:
		default:
			return layout.Result{}, ErrLoopStopped
		}
	case <-ctx.Done():
		return layout.Result{}, ctx.Err()
	}
	return l.final, nil
}
