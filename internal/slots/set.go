package slots

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"sync"
	"time"

	"github.com/genricoloni/duoplayer/internal/domain"
	"github.com/genricoloni/duoplayer/internal/status"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	minVolume = 0
	maxVolume = 200
)

// RetryPolicy bounds the audio device attempts
type RetryPolicy struct {
	Attempts int
	Interval time.Duration
}

// Deps are the collaborators of a Set
type Deps struct {
	Logger     *zap.Logger
	Reporter   domain.Reporter
	Dispatcher domain.Dispatcher
	Loader     domain.ImageLoader
	Composer   domain.FrameComposer
	Tags       domain.TagReader
	Engines    [domain.SlotCount]domain.MediaEngine
	Surfaces   [domain.SlotCount]domain.Surface
	Retry      RetryPolicy
}

// Set owns the two player slots and the single active index.
// Every method except Close must be called on the owning loop.
type Set struct {
	logger     *zap.Logger
	reporter   domain.Reporter
	dispatcher domain.Dispatcher
	loader     domain.ImageLoader
	composer   domain.FrameComposer
	tags       domain.TagReader
	retry      RetryPolicy

	slots      [domain.SlotCount]*Slot
	active     domain.SlotIndex
	background color.Color
	fullscreen bool

	ctx         context.Context
	cancel      context.CancelFunc
	retryCancel context.CancelFunc
	workers     sync.WaitGroup
}

// NewSet creates the dual player set with slot 0 active
func NewSet(deps Deps) *Set {
	if deps.Retry.Attempts < 1 {
		deps.Retry.Attempts = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Set{
		logger:     deps.Logger,
		reporter:   deps.Reporter,
		dispatcher: deps.Dispatcher,
		loader:     deps.Loader,
		composer:   deps.Composer,
		tags:       deps.Tags,
		retry:      deps.Retry,
		active:     domain.SlotA,
		background: color.Black,
		ctx:        ctx,
		cancel:     cancel,
	}
	for i := range s.slots {
		s.slots[i] = newSlot(domain.SlotIndex(i), deps.Engines[i], deps.Surfaces[i])
	}
	return s
}

// Active returns the active slot index
func (s *Set) Active() domain.SlotIndex { return s.active }

// SetActive records idx as the active slot
func (s *Set) SetActive(idx domain.SlotIndex) { s.active = idx }

// Slot returns the slot at idx
func (s *Set) Slot(idx domain.SlotIndex) *Slot { return s.slots[idx] }

// Surface returns the render surface of idx
func (s *Set) Surface(idx domain.SlotIndex) domain.Surface { return s.slots[idx].surface }

// Item returns a copy of the item bound to idx, or nil
func (s *Set) Item(idx domain.SlotIndex) *domain.MediaItem { return s.slots[idx].Item() }

// Displaying reports whether idx currently holds an image frame
func (s *Set) Displaying(idx domain.SlotIndex) bool {
	return s.slots[idx].surface.HasImage()
}

// Busy reports whether idx is playing or showing an image
func (s *Set) Busy(idx domain.SlotIndex) bool {
	slot := s.slots[idx]
	if slot.surface.HasImage() || slot.startOnLoad {
		return true
	}
	return slot.engine != nil && slot.engine.IsPlaying()
}

// FreeSlot picks the slot a new item should be loaded into
func (s *Set) FreeSlot() domain.SlotIndex {
	if s.Busy(s.active) {
		return s.active.Other()
	}
	return s.active
}

// LoadInto binds item to idx without touching the other slot
func (s *Set) LoadInto(ctx context.Context, idx domain.SlotIndex, item domain.MediaItem) error {
	if !idx.Valid() {
		return domain.Invalid(fmt.Errorf("%w: %d", domain.ErrInvalidSlot, idx), "cannot set media")
	}
	if item.Path == "" {
		return domain.Invalid(domain.ErrEmptyPath, "cannot set media")
	}

	slot := s.slots[idx]
	slot.loads++
	slot.startOnLoad = false
	if item.IsImage {
		s.loadImage(ctx, slot, item)
	} else if err := s.loadStream(slot, item); err != nil {
		return err
	}

	slot.item = &item
	slot.state = domain.StateLoading
	slot.lastPosition, slot.lastDuration = 0, 0

	changed := status.MediaChanged{Idx: int(idx), UUID: item.UUID, Path: item.Path}
	if !item.IsImage && s.tags != nil {
		changed.Title, changed.Artist = s.tags.Read(item.Path)
	}
	s.reporter.Emit(status.TypeMediaChanged, changed)
	s.EmitPlayerData(idx, status.EventNone)

	s.logger.Info("Media loaded",
		zap.Int("slot", int(idx)),
		zap.String("path", item.Path),
		zap.Bool("image", item.IsImage))
	return nil
}

// loadImage fetches and decodes item off the loop. The frame is applied by
// imageLoaded once the result is posted back.
func (s *Set) loadImage(ctx context.Context, slot *Slot, item domain.MediaItem) {
	slot.source = nil
	load := slot.loads
	s.dispatcher.Go(func() func() {
		img, err := s.loader.Load(ctx, item.Path)
		return func() { s.imageLoaded(slot, load, img, err) }
	})
}

func (s *Set) imageLoaded(slot *Slot, load uint64, img image.Image, err error) {
	if load != slot.loads {
		s.logger.Debug("Stale image dropped", zap.Int("slot", int(slot.index)))
		return
	}

	// a stopped slot keeps the source for a later play but shows nothing
	if err == nil && slot.state != domain.StateStopped {
		err = s.showFrame(slot, img)
	}
	if err != nil {
		slot.item = nil
		slot.source = nil
		slot.startOnLoad = false
		slot.state = domain.StateError
		if slot.surface.HasImage() {
			if clearErr := slot.surface.ClearImage(); clearErr != nil {
				s.logger.Warn("Failed to clear previous image", zap.Int("slot", int(slot.index)), zap.Error(clearErr))
			}
		}
		s.reporter.Error(err)
		return
	}
	slot.source = img

	// a previous video must not keep playing behind the frame
	if slot.engine != nil && slot.engine.IsPlaying() {
		if err := slot.engine.Stop(); err != nil {
			s.logger.Warn("Failed to stop engine behind image", zap.Int("slot", int(slot.index)), zap.Error(err))
		}
	}

	if slot.startOnLoad {
		slot.startOnLoad = false
		slot.state = domain.StatePlaying
		s.EmitPlayerData(slot.index, status.EventDisplayImage)
	}
}

func (s *Set) loadStream(slot *Slot, item domain.MediaItem) error {
	if slot.engine == nil {
		return domain.Missing(domain.ErrNoEngine, "cannot set media")
	}
	if slot.surface.HasImage() {
		if err := slot.surface.ClearImage(); err != nil {
			s.logger.Warn("Failed to clear previous image", zap.Int("slot", int(slot.index)), zap.Error(err))
		}
	}
	slot.source = nil

	if slot.engine.Loaded() == item.Path {
		s.logger.Debug("Source already attached", zap.Int("slot", int(slot.index)), zap.String("path", item.Path))
		return nil
	}
	if err := slot.engine.Load(item.Path); err != nil {
		return domain.Failed(err, "cannot open media "+item.Path)
	}
	return nil
}

func (s *Set) showFrame(slot *Slot, img image.Image) error {
	frame, err := s.composer.Compose(img, slot.surface.Geometry().Size(), s.background)
	if err != nil {
		return err
	}
	if err := slot.surface.SetImage(frame); err != nil {
		return domain.Failed(err, "cannot display image")
	}
	return nil
}

// Start begins playback of idx without changing visibility.
// Image slots are marked as displaying.
func (s *Set) Start(idx domain.SlotIndex) error {
	slot := s.slots[idx]
	if slot.item == nil {
		return domain.Missing(domain.ErrNoFile, "nothing to play")
	}

	if slot.isImage() {
		if slot.source == nil {
			slot.startOnLoad = true
			return nil
		}
		if !slot.surface.HasImage() {
			if err := s.showFrame(slot, slot.source); err != nil {
				return err
			}
		}
		slot.state = domain.StatePlaying
		s.EmitPlayerData(idx, status.EventDisplayImage)
		return nil
	}

	if slot.engine == nil {
		return domain.Missing(domain.ErrNoEngine, "cannot play")
	}
	if err := slot.engine.Play(); err != nil {
		return domain.Failed(err, "cannot play")
	}
	return nil
}

// PlayActive starts the active slot and makes sure it is visible
func (s *Set) PlayActive() error {
	if err := s.Start(s.active); err != nil {
		return err
	}
	slot := s.slots[s.active]
	if slot.isImage() && !slot.surface.Visible() {
		if err := slot.surface.Show(); err != nil {
			return domain.Failed(err, "cannot show image")
		}
	}
	return nil
}

// PauseActive pauses the active engine; images have nothing to pause
func (s *Set) PauseActive() error {
	slot := s.slots[s.active]
	if slot.isImage() {
		return nil
	}
	if slot.engine == nil {
		return domain.Missing(domain.ErrNoEngine, "cannot pause")
	}
	if err := slot.engine.Pause(); err != nil {
		return domain.Failed(err, "cannot pause")
	}
	return nil
}

// StopActive stops the active slot
func (s *Set) StopActive() error {
	return s.StopSlot(s.active)
}

// StopSlot stops the engine or clears the image of idx and hides it
func (s *Set) StopSlot(idx domain.SlotIndex) error {
	if !idx.Valid() {
		return domain.Invalid(fmt.Errorf("%w: %d", domain.ErrInvalidSlot, idx), "cannot stop")
	}
	slot := s.slots[idx]

	var err error
	if slot.isImage() || slot.surface.HasImage() {
		err = s.ClearImage(idx)
	} else if slot.engine != nil {
		if stopErr := slot.engine.Stop(); stopErr != nil {
			err = domain.Failed(stopErr, "cannot stop")
		}
		slot.state = domain.StateStopped
		s.EmitPlayerData(idx, domain.EventStopped.String())
	}

	if hideErr := slot.surface.Hide(); hideErr != nil {
		err = multierr.Append(err, domain.Failed(hideErr, "cannot hide player"))
	}
	return err
}

// ClearImage drops the frame shown by idx. The decoded source is kept so a
// later play can show it again.
func (s *Set) ClearImage(idx domain.SlotIndex) error {
	slot := s.slots[idx]
	err := slot.surface.ClearImage()
	slot.startOnLoad = false
	if slot.isImage() {
		slot.state = domain.StateStopped
	}
	s.reporter.Emit(status.TypePlayerData, status.PlayerData{
		ID:    int(idx),
		Event: status.EventStopImage,
		State: status.StateStoppedImage,
	})
	if err != nil {
		return domain.Failed(err, "cannot clear image")
	}
	return nil
}

// StopIfPlaying stops the engine of idx when it is still running
func (s *Set) StopIfPlaying(idx domain.SlotIndex) error {
	slot := s.slots[idx]
	if slot.engine == nil || !slot.engine.IsPlaying() {
		return nil
	}
	if err := slot.engine.Stop(); err != nil {
		return domain.Failed(err, "cannot stop outgoing player")
	}
	return nil
}

// SeekActive moves the active engine to ms
func (s *Set) SeekActive(ms int64) error {
	if ms < 0 {
		return domain.Invalid(domain.ErrNegativeTime, "cannot seek")
	}
	slot := s.slots[s.active]
	if slot.isImage() {
		return nil
	}
	if slot.engine == nil {
		return domain.Missing(domain.ErrNoEngine, "cannot seek")
	}
	if err := slot.engine.SetTime(ms); err != nil {
		return domain.Failed(err, "cannot seek")
	}
	slot.lastPosition = ms
	return nil
}

// Position returns the active engine time in ms, 0 for images
func (s *Set) Position() int64 {
	slot := s.slots[s.active]
	if slot.isImage() || slot.engine == nil {
		return 0
	}
	return slot.engine.Snapshot().Time
}

// SetVolume sets the active engine volume (0-200)
func (s *Set) SetVolume(level int) error {
	if level < minVolume || level > maxVolume {
		return domain.Invalid(fmt.Errorf("%w: %d", domain.ErrInvalidVolume, level), "cannot set volume")
	}
	slot := s.slots[s.active]
	if slot.engine == nil {
		return domain.Missing(domain.ErrNoEngine, "cannot set volume")
	}
	if err := slot.engine.SetVolume(level); err != nil {
		return domain.Failed(err, "cannot set volume")
	}
	return nil
}

// SetRate sets the active engine speed multiplier
func (s *Set) SetRate(rate float64) error {
	if rate <= 0 {
		return domain.Invalid(fmt.Errorf("%w: %g", domain.ErrInvalidRate, rate), "cannot set speed")
	}
	slot := s.slots[s.active]
	if slot.engine == nil {
		return domain.Missing(domain.ErrNoEngine, "cannot set speed")
	}
	if err := slot.engine.SetRate(rate); err != nil {
		return domain.Failed(err, "cannot set speed")
	}
	return nil
}

// SetFullscreen mirrors the window flag on both engines
func (s *Set) SetFullscreen(on bool) error {
	s.fullscreen = on
	var err error
	for _, slot := range s.slots {
		if slot.engine == nil {
			continue
		}
		err = multierr.Append(err, slot.engine.SetFullscreen(on))
	}
	if err != nil {
		return domain.Failed(err, "cannot set fullscreen")
	}
	return nil
}

// Fullscreen returns the last fullscreen flag
func (s *Set) Fullscreen() bool { return s.fullscreen }

// SetBackground changes the color behind image frames and recomposes them
func (s *Set) SetBackground(c color.Color) error {
	s.background = c
	return s.Recompose()
}

// Recompose redraws every image frame at the current surface geometry
func (s *Set) Recompose() error {
	var err error
	for _, slot := range s.slots {
		if slot.source == nil || !slot.surface.HasImage() {
			continue
		}
		err = multierr.Append(err, s.showFrame(slot, slot.source))
	}
	return err
}

// ApplyEvent folds an engine notification into the slot state.
// It reports false when the event is stale, as when the engine of an image slot stops.
func (s *Set) ApplyEvent(ev domain.EngineEvent) bool {
	if !ev.Slot.Valid() {
		return false
	}
	slot := s.slots[ev.Slot]
	if slot.isImage() && ev.Kind != domain.EventDwellElapsed {
		return false
	}
	// a dwell only ends the image still on screen
	if ev.Kind == domain.EventDwellElapsed &&
		(!slot.isImage() || ev.Slot != s.active || slot.state == domain.StateStopped) {
		return false
	}

	switch ev.Kind {
	case domain.EventPlaying:
		slot.state = domain.StatePlaying
	case domain.EventPaused:
		slot.state = domain.StatePaused
	case domain.EventStopped, domain.EventEndReached, domain.EventDwellElapsed:
		slot.state = domain.StateStopped
	case domain.EventError:
		slot.state = domain.StateError
	}

	if slot.engine != nil && !slot.isImage() {
		snap := slot.engine.Snapshot()
		slot.lastPosition = snap.Time
		slot.lastDuration = snap.Duration
	}

	s.EmitPlayerData(ev.Slot, ev.Kind.String())
	return true
}

// Snapshot builds the player_data payload of idx
func (s *Set) Snapshot(idx domain.SlotIndex, event string) status.PlayerData {
	slot := s.slots[idx]
	data := status.PlayerData{
		ID:         int(idx),
		Event:      event,
		State:      string(slot.state),
		Rate:       1,
		Fullscreen: s.fullscreen,
	}

	if slot.isImage() {
		data.Media = slot.item.Path
		if slot.state == domain.StatePlaying {
			data.State = status.StateDisplayingImage
			data.IsPlaying = true
		}
		return data
	}
	if slot.engine == nil {
		return data
	}

	snap := slot.engine.Snapshot()
	data.Media = snap.Media
	data.State = snap.State
	data.Time = snap.Time
	data.Duration = snap.Duration
	data.Position = snap.Position
	data.Volume = snap.Volume
	data.Rate = snap.Rate
	data.IsPlaying = snap.IsPlaying
	return data
}

// EmitPlayerData reports the state of idx
func (s *Set) EmitPlayerData(idx domain.SlotIndex, event string) {
	s.reporter.Emit(status.TypePlayerData, s.Snapshot(idx, event))
}

// Close cancels retry workers, waits for them and releases both engines
func (s *Set) Close(ctx context.Context) error {
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.workers.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.logger.Warn("Audio device worker did not exit in time")
	}

	var err error
	for _, slot := range s.slots {
		if slot.engine == nil {
			continue
		}
		err = multierr.Append(err, slot.engine.Release())
	}
	return err
}
