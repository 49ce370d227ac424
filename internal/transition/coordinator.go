// Package transition promotes the standby slot to active, either with a hard
// cut or with an opacity fade driven by loop timers.
package transition

import (
	"fmt"
	"time"

	"github.com/genricoloni/duoplayer/internal/domain"
	"github.com/genricoloni/duoplayer/internal/metrics"
	"github.com/genricoloni/duoplayer/internal/status"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const fadeSteps = 10

// Players is the part of the slot set a swap needs
type Players interface {
	Active() domain.SlotIndex
	SetActive(idx domain.SlotIndex)
	Surface(idx domain.SlotIndex) domain.Surface
	Displaying(idx domain.SlotIndex) bool
	ClearImage(idx domain.SlotIndex) error
	StopIfPlaying(idx domain.SlotIndex) error
}

// Options selects the transition style
type Options struct {
	Instant bool
	Fade    time.Duration
}

type fade struct {
	target domain.SlotIndex
	from   domain.SlotIndex
	step   int
	cancel func() bool
}

// Coordinator performs swaps. It must only be used on the owning loop.
type Coordinator struct {
	logger     *zap.Logger
	players    Players
	reporter   domain.Reporter
	dispatcher domain.Dispatcher
	metrics    *metrics.Metrics
	opts       Options

	running *fade
	settled []func()
	onSwap  func(domain.SlotIndex)
}

// NewCoordinator creates a Coordinator. A non-positive fade forces hard cuts.
func NewCoordinator(
	logger *zap.Logger,
	players Players,
	reporter domain.Reporter,
	dispatcher domain.Dispatcher,
	m *metrics.Metrics,
	opts Options,
) *Coordinator {
	if opts.Fade <= 0 {
		opts.Instant = true
	}
	return &Coordinator{
		logger:     logger,
		players:    players,
		reporter:   reporter,
		dispatcher: dispatcher,
		metrics:    m,
		opts:       opts,
	}
}

// OnSwap registers fn to run right after the active index changes
func (c *Coordinator) OnSwap(fn func(domain.SlotIndex)) {
	c.onSwap = fn
}

// Fading reports whether a fade is in progress
func (c *Coordinator) Fading() bool {
	return c.running != nil
}

// Swap makes idx the active slot
func (c *Coordinator) Swap(idx domain.SlotIndex) error {
	if !idx.Valid() {
		return domain.Invalid(fmt.Errorf("%w: %d", domain.ErrInvalidSlot, idx), "cannot swap")
	}

	// a new swap never starts on top of a running fade
	c.Finish()

	if idx == c.players.Active() {
		return c.reassert(idx)
	}

	from := idx.Other()
	target := c.players.Surface(idx)

	var err error
	if !c.opts.Instant {
		err = multierr.Append(err, target.SetOpacity(0))
	}
	err = multierr.Append(err, target.Show())
	err = multierr.Append(err, target.Raise())
	if err != nil {
		return domain.Failed(err, "cannot show incoming player")
	}

	c.activate(idx)

	if c.opts.Instant {
		return c.release(from)
	}

	c.running = &fade{target: idx, from: from}
	c.scheduleStep()
	c.logger.Debug("Fade started", zap.Int("slot", int(idx)), zap.Duration("duration", c.opts.Fade))
	return nil
}

// WhenSettled runs fn once no fade is running, immediately if none is
func (c *Coordinator) WhenSettled(fn func()) {
	if c.running == nil {
		fn()
		return
	}
	c.settled = append(c.settled, fn)
}

// Finish completes a running fade at once
func (c *Coordinator) Finish() {
	if c.running == nil {
		return
	}
	if c.running.cancel != nil {
		c.running.cancel()
	}
	c.complete()
}

func (c *Coordinator) activate(idx domain.SlotIndex) {
	c.players.SetActive(idx)
	c.reporter.Emit(status.TypeActivePlayer, status.ValueData[int]{Value: int(idx)})
	c.metrics.ObserveSwap(int(idx))
	if c.onSwap != nil {
		c.onSwap(idx)
	}
	c.logger.Info("Active player changed", zap.Int("slot", int(idx)))
}

// reassert keeps idx on top and the other slot hidden without touching its content
func (c *Coordinator) reassert(idx domain.SlotIndex) error {
	target := c.players.Surface(idx)
	other := c.players.Surface(idx.Other())

	var err error
	if !target.Visible() {
		err = multierr.Append(err, target.Show())
	}
	err = multierr.Append(err, target.SetOpacity(1))
	err = multierr.Append(err, target.Raise())
	if other.Visible() {
		err = multierr.Append(err, other.Hide())
	}
	if err != nil {
		return domain.Failed(err, "cannot re-assert active player")
	}

	c.reporter.Emit(status.TypeActivePlayer, status.ValueData[int]{Value: int(idx)})
	if c.onSwap != nil {
		c.onSwap(idx)
	}
	return nil
}

// release hides the outgoing slot and stops whatever it was showing
func (c *Coordinator) release(from domain.SlotIndex) error {
	var err error
	if hideErr := c.players.Surface(from).Hide(); hideErr != nil {
		err = multierr.Append(err, domain.Failed(hideErr, "cannot hide outgoing player"))
	}
	if c.players.Displaying(from) {
		err = multierr.Append(err, c.players.ClearImage(from))
	}
	err = multierr.Append(err, c.players.StopIfPlaying(from))
	return err
}

func (c *Coordinator) scheduleStep() {
	f := c.running
	interval := c.opts.Fade / fadeSteps
	f.cancel = c.dispatcher.After(interval, func() {
		if c.running != f {
			return
		}
		f.step++
		if f.step >= fadeSteps {
			c.complete()
			return
		}
		level := float64(f.step) / fadeSteps
		if err := c.players.Surface(f.target).SetOpacity(level); err != nil {
			c.logger.Warn("Failed to step opacity", zap.Int("slot", int(f.target)), zap.Error(err))
		}
		c.scheduleStep()
	})
}

func (c *Coordinator) complete() {
	f := c.running
	c.running = nil

	if err := c.players.Surface(f.target).SetOpacity(1); err != nil {
		c.logger.Warn("Failed to restore opacity", zap.Int("slot", int(f.target)), zap.Error(err))
	}
	if err := c.release(f.from); err != nil {
		c.reporter.Error(err)
	}
	c.logger.Debug("Fade completed", zap.Int("slot", int(f.target)))

	pending := c.settled
	c.settled = nil
	for _, fn := range pending {
		fn()
	}
}
