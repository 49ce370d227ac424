// Package playlist advances through an ordered track list using the two
// player slots as a read-ahead buffer of depth one.
package playlist

import (
	"context"
	"fmt"
	"time"

	"github.com/genricoloni/duoplayer/internal/domain"
	"github.com/genricoloni/duoplayer/internal/status"
	"go.uber.org/zap"
)

const (
	// restartThreshold is the position past which previous restarts the current track
	restartThreshold int64 = 5000
	defaultDwell           = 10
)

// Players is the part of the slot set the playlist drives
type Players interface {
	Active() domain.SlotIndex
	FreeSlot() domain.SlotIndex
	Item(idx domain.SlotIndex) *domain.MediaItem
	LoadInto(ctx context.Context, idx domain.SlotIndex, item domain.MediaItem) error
	Start(idx domain.SlotIndex) error
	Position() int64
	SeekActive(ms int64) error
}

// Switcher promotes a slot to active
type Switcher interface {
	Swap(idx domain.SlotIndex) error
	WhenSettled(fn func())
	Finish()
}

// Controller holds the playlist state. It must only be used on the owning loop.
type Controller struct {
	logger     *zap.Logger
	players    Players
	switcher   Switcher
	reporter   domain.Reporter
	dispatcher domain.Dispatcher

	mode         bool
	tracks       []domain.MediaItem
	index        int
	next         int
	nextSlot     domain.SlotIndex
	preloaded    bool
	dwellDefault int

	dwellCancel func() bool
	onEnd       func(domain.EngineEvent)
}

// NewController creates an empty controller outside playlist mode
func NewController(
	logger *zap.Logger,
	players Players,
	switcher Switcher,
	reporter domain.Reporter,
	dispatcher domain.Dispatcher,
) *Controller {
	return &Controller{
		logger:       logger,
		players:      players,
		switcher:     switcher,
		reporter:     reporter,
		dispatcher:   dispatcher,
		dwellDefault: defaultDwell,
	}
}

// OnItemEnd registers the handler that receives synthesized dwell expiries
func (c *Controller) OnItemEnd(fn func(domain.EngineEvent)) {
	c.onEnd = fn
}

// Mode reports whether playlist mode is on
func (c *Controller) Mode() bool { return c.mode }

// TrackIndex returns the current track index
func (c *Controller) TrackIndex() int { return c.index }

// NextTrackIndex returns the read-ahead target
func (c *Controller) NextTrackIndex() int { return c.next }

// Len returns the number of tracks
func (c *Controller) Len() int { return len(c.tracks) }

// DwellDefault returns the image display time in seconds
func (c *Controller) DwellDefault() int { return c.dwellDefault }

// Restore applies the playlist settings handed over at startup without reporting them
func (c *Controller) Restore(mode bool, index, dwell int) {
	c.mode = mode
	if index >= 0 {
		c.index = index
	}
	if dwell > 0 {
		c.dwellDefault = dwell
	}
	c.retarget()
}

// Halt cancels a pending image dwell
func (c *Controller) Halt() {
	c.stopDwell()
}

// SetMode turns playlist mode on or off
func (c *Controller) SetMode(on bool) {
	c.mode = on
	c.reporter.Debug(fmt.Sprintf("Setting playlist mode to: %t", on))
}

// SetTracks replaces the track list
func (c *Controller) SetTracks(tracks []domain.MediaItem) {
	c.tracks = tracks
	if c.index >= len(tracks) {
		c.index = 0
	}
	c.retarget()
	c.reporter.Debug(fmt.Sprintf("Playlist set with %d tracks.", len(tracks)))
}

// SetTrackIndex moves the current index without playing
func (c *Controller) SetTrackIndex(i int) error {
	if i < 0 || i >= len(c.tracks) {
		return domain.Invalid(fmt.Errorf("%w: %d", domain.ErrInvalidTrack, i), "cannot set track index")
	}
	c.setIndex(i)
	c.retarget()
	return nil
}

func (c *Controller) setIndex(i int) {
	c.index = i
	c.reporter.Emit(status.TypeTrackIndex, status.ValueData[int]{Value: i})
}

// retarget points the read-ahead at the track after the current index.
// Whatever was preloaded before is reloaded on the next advance.
func (c *Controller) retarget() {
	c.next = c.following()
	c.preloaded = false
}

func (c *Controller) following() int {
	if len(c.tracks) == 0 {
		return 0
	}
	return (c.index + 1) % len(c.tracks)
}

// SetDwellDefault sets how long images stay on screen, in seconds
func (c *Controller) SetDwellDefault(seconds int) error {
	if seconds <= 0 {
		return domain.Invalid(fmt.Errorf("%w: %d", domain.ErrNegativeTime, seconds), "cannot set image time")
	}
	c.dwellDefault = seconds
	c.reporter.Emit(status.TypeSetImageTime, status.ValueData[int]{Value: seconds})
	return nil
}

// PlayItem loads item into a free slot, starts it and makes it active
func (c *Controller) PlayItem(ctx context.Context, item domain.MediaItem) error {
	c.stopDwell()
	c.switcher.Finish()

	idx := c.players.FreeSlot()
	if err := c.players.LoadInto(ctx, idx, item); err != nil {
		return err
	}
	if err := c.players.Start(idx); err != nil {
		return err
	}
	return c.switcher.Swap(idx)
}

// Play plays track i, preloads the track after it and arms the dwell timer
func (c *Controller) Play(ctx context.Context, i int) error {
	if i < 0 || i >= len(c.tracks) {
		return domain.Invalid(fmt.Errorf("%w: %d", domain.ErrInvalidTrack, i), "cannot play track")
	}
	c.setIndex(i)
	c.retarget()

	if err := c.PlayItem(ctx, c.tracks[i]); err != nil {
		return err
	}
	c.preloadAfterSwap(ctx)
	c.armDwell()
	return nil
}

// Next advances to the track after the current index
func (c *Controller) Next(ctx context.Context) error {
	if !c.mode {
		return domain.Invalid(domain.ErrNotPlaylistMode, "next track")
	}
	return c.advance(ctx, c.following())
}

// Previous restarts the current track when it is past 5 s, otherwise steps back one
func (c *Controller) Previous(ctx context.Context) error {
	if !c.mode {
		return domain.Invalid(domain.ErrNotPlaylistMode, "previous track")
	}
	if len(c.tracks) == 0 {
		return domain.Invalid(domain.ErrEmptyPlaylist, "previous track")
	}

	c.switcher.Finish()
	if c.players.Position() > restartThreshold {
		return c.players.SeekActive(0)
	}

	prev := c.index - 1
	if prev < 0 {
		prev = len(c.tracks) - 1
	}
	return c.advance(ctx, prev)
}

// EndOfItem handles the natural or synthesized end of the active item
func (c *Controller) EndOfItem(ctx context.Context, idx domain.SlotIndex) error {
	c.reporter.Info(fmt.Sprintf("Player %d has reached the end.", idx))
	c.reporter.Emit(status.TypeEndReached, status.EndReached{
		PlaylistTrackIndex: c.index,
		ActivePlayerID:     int(c.players.Active()),
	})
	if !c.mode {
		return nil
	}
	return c.advance(ctx, c.following())
}

// advance swaps to track target, reusing the read-ahead when it holds that track
func (c *Controller) advance(ctx context.Context, target int) error {
	c.stopDwell()
	// pending read-ahead runs when the previous swap settles
	c.switcher.Finish()
	if len(c.tracks) == 0 {
		return domain.Invalid(domain.ErrEmptyPlaylist, "cannot advance")
	}
	target %= len(c.tracks)

	if !c.readAhead(target) {
		if err := c.preload(ctx, target); err != nil {
			return err
		}
	}
	c.preloaded = false

	c.index = target
	if err := c.players.Start(c.nextSlot); err != nil {
		return err
	}
	if err := c.switcher.Swap(c.nextSlot); err != nil {
		return err
	}
	c.setIndex(c.index)

	c.preloadAfterSwap(ctx)
	c.armDwell()
	return nil
}

// preloadAfterSwap loads the track after the current one once the outgoing slot is released
func (c *Controller) preloadAfterSwap(ctx context.Context) {
	following := c.index + 1
	if following >= len(c.tracks) {
		following = 0
	}
	c.switcher.WhenSettled(func() {
		if err := c.preload(ctx, following); err != nil {
			c.reporter.Error(err)
		}
	})
}

// readAhead reports whether the standby slot already holds track i
func (c *Controller) readAhead(i int) bool {
	if !c.preloaded || c.next != i || c.nextSlot != c.players.Active().Other() {
		return false
	}
	item := c.players.Item(c.nextSlot)
	return item != nil && item.Path == c.tracks[i].Path
}

func (c *Controller) preload(ctx context.Context, i int) error {
	c.next = i
	c.nextSlot = c.players.Active().Other()
	if err := c.players.LoadInto(ctx, c.nextSlot, c.tracks[i]); err != nil {
		c.preloaded = false
		return err
	}
	c.preloaded = true
	c.logger.Debug("Track preloaded",
		zap.Int("track", i),
		zap.Int("slot", int(c.nextSlot)))
	return nil
}

func (c *Controller) armDwell() {
	c.stopDwell()
	if !c.mode {
		return
	}

	item := c.players.Item(c.players.Active())
	if item == nil || !item.IsImage {
		return
	}
	seconds := item.DisplaySeconds
	if seconds <= 0 {
		seconds = c.dwellDefault
	}
	if seconds <= 0 {
		seconds = defaultDwell
	}

	c.dwellCancel = c.dispatcher.After(time.Duration(seconds)*time.Second, func() {
		c.dwellCancel = nil
		if c.onEnd != nil {
			c.onEnd(domain.EngineEvent{Slot: c.players.Active(), Kind: domain.EventDwellElapsed})
		}
	})
	c.reporter.Debug(fmt.Sprintf("Image timer started for %d seconds.", seconds))
}

func (c *Controller) stopDwell() {
	if c.dwellCancel == nil {
		return
	}
	if c.dwellCancel() {
		c.reporter.Debug("Existing image timer stopped.")
	}
	c.dwellCancel = nil
}
