package loop

import (
	"time"

	"github.com/genricoloni/duoplayer/internal/domain"
	"go.uber.org/zap"
)

const (
	eventBuffer = 64
	pushTimeout = 100 * time.Millisecond
)

// Events carries engine notifications from engine threads to the owning loop
type Events struct {
	logger *zap.Logger
	ch     chan domain.EngineEvent
}

// NewEvents creates an engine event queue
func NewEvents(logger *zap.Logger) *Events {
	return &Events{
		logger: logger,
		ch:     make(chan domain.EngineEvent, eventBuffer),
	}
}

// C returns the queue the owning goroutine selects on
func (e *Events) C() <-chan domain.EngineEvent {
	return e.ch
}

// Push enqueues ev. Time updates are dropped when the queue is full; other
// kinds wait briefly before being dropped.
func (e *Events) Push(ev domain.EngineEvent) {
	select {
	case e.ch <- ev:
		return
	default:
	}

	if ev.Kind == domain.EventTimeChanged {
		return
	}

	timer := time.NewTimer(pushTimeout)
	defer timer.Stop()
	select {
	case e.ch <- ev:
	case <-timer.C:
		e.logger.Warn("Engine event dropped, loop is not draining",
			zap.Int("slot", int(ev.Slot)),
			zap.Stringer("event", ev.Kind))
	}
}
