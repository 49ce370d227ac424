package loop

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/genricoloni/duoplayer/internal/domain"
	"go.uber.org/zap"
)

const taskBuffer = 256

const (
	timerPending int32 = iota
	timerCancelled
	timerFired
)

// Loop queues closures for the goroutine that owns player state.
// The owner drains Tasks; everything else only posts.
type Loop struct {
	logger   *zap.Logger
	tasks    chan func()
	done     chan struct{}
	once     sync.Once
	inflight atomic.Int64
}

// New creates a task queue
func New(logger *zap.Logger) *Loop {
	return &Loop{
		logger: logger,
		tasks:  make(chan func(), taskBuffer),
		done:   make(chan struct{}),
	}
}

// Tasks returns the queue the owning goroutine selects on
func (l *Loop) Tasks() <-chan func() {
	return l.tasks
}

// Post queues fn. Posting after Close drops fn.
func (l *Loop) Post(fn func()) {
	select {
	case l.tasks <- fn:
	case <-l.done:
		l.logger.Debug("Task dropped, loop closed")
	}
}

// After queues fn once d has elapsed. Cancel reports whether fn was still pending.
func (l *Loop) After(d time.Duration, fn func()) func() bool {
	var state atomic.Int32
	timer := time.AfterFunc(d, func() {
		l.Post(func() {
			// a cancel that raced with the timer still wins
			if state.CompareAndSwap(timerPending, timerFired) {
				fn()
			}
		})
	})
	return func() bool {
		timer.Stop()
		return state.CompareAndSwap(timerPending, timerCancelled)
	}
}

// Go runs work on its own goroutine and posts the returned func back.
// The work counts as in flight until that func has run on the loop.
func (l *Loop) Go(work func() func()) {
	l.inflight.Add(1)
	go func() {
		done := work()
		l.Post(func() {
			defer l.inflight.Add(-1)
			done()
		})
	}()
}

// InFlight counts work started by Go whose result has not run yet
func (l *Loop) InFlight() int {
	return int(l.inflight.Load())
}

// Close releases blocked posters; queued tasks are abandoned
func (l *Loop) Close() {
	l.once.Do(func() { close(l.done) })
}

// Call runs fn on the dispatcher's goroutine and waits for its result
func Call(ctx context.Context, d domain.Dispatcher, fn func() error) error {
	result := make(chan error, 1)
	d.Post(func() { result <- fn() })

	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
