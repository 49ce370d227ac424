//go:build cgo

package vlc

import (
	"sync"

	libvlc "github.com/adrg/libvlc-go/v3"
	"github.com/genricoloni/duoplayer/internal/domain"
	"github.com/samber/lo"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	initOnce sync.Once
	initErr  error
)

func initialize(args []string) error {
	initOnce.Do(func() {
		initErr = libvlc.Init(args...)
	})
	return initErr
}

// Shutdown releases the libVLC instance once every player is released
func Shutdown() error {
	return libvlc.Release()
}

var playerEvents = map[libvlc.Event]domain.EngineEventKind{
	libvlc.MediaPlayerTimeChanged:      domain.EventTimeChanged,
	libvlc.MediaPlayerPlaying:          domain.EventPlaying,
	libvlc.MediaPlayerPaused:           domain.EventPaused,
	libvlc.MediaPlayerStopped:          domain.EventStopped,
	libvlc.MediaPlayerEndReached:       domain.EventEndReached,
	libvlc.MediaPlayerEncounteredError: domain.EventError,
}

var stateNames = map[libvlc.MediaState]string{
	libvlc.MediaNothingSpecial: "NothingSpecial",
	libvlc.MediaOpening:        "Opening",
	libvlc.MediaBuffering:      "Buffering",
	libvlc.MediaPlaying:        "Playing",
	libvlc.MediaPaused:         "Paused",
	libvlc.MediaStopped:        "Stopped",
	libvlc.MediaEnded:          "Ended",
	libvlc.MediaError:          "Error",
}

// Player is one libVLC media player rendering into an X window.
// Callbacks only forward events; all other calls come from the owning loop.
type Player struct {
	logger *zap.Logger
	slot   domain.SlotIndex
	player *libvlc.Player
	events *libvlc.EventManager
	ids    []libvlc.EventID

	media      *libvlc.Media
	loaded     string
	fullscreen bool
}

func newPlayer(logger *zap.Logger, slot domain.SlotIndex, window uint32, sink func(domain.EngineEvent)) (*Player, error) {
	player, err := libvlc.NewPlayer()
	if err != nil {
		return nil, err
	}
	p := &Player{logger: logger, slot: slot, player: player}

	if err := player.SetXWindow(window); err != nil {
		_ = player.Release()
		return nil, err
	}
	if err := player.SetVolume(defaultVolume); err != nil {
		logger.Warn("Failed to set initial volume", zap.Error(err))
	}

	manager, err := player.EventManager()
	if err != nil {
		_ = player.Release()
		return nil, err
	}
	p.events = manager

	callback := func(event libvlc.Event, _ interface{}) {
		kind, ok := playerEvents[event]
		if !ok {
			return
		}
		sink(domain.EngineEvent{Slot: slot, Kind: kind})
	}
	for event := range playerEvents {
		id, err := manager.Attach(event, callback, nil)
		if err != nil {
			p.detach()
			_ = player.Release()
			return nil, err
		}
		p.ids = append(p.ids, id)
	}

	logger.Debug("Player created", zap.Uint32("window", window))
	return p, nil
}

func (p *Player) detach() {
	if len(p.ids) > 0 {
		p.events.Detach(p.ids...)
		p.ids = nil
	}
}

// Load attaches path as the new source
func (p *Player) Load(path string) error {
	var (
		m   *libvlc.Media
		err error
	)
	if isURL(path) {
		m, err = libvlc.NewMediaFromURL(path)
	} else {
		m, err = libvlc.NewMediaFromPath(path)
	}
	if err != nil {
		return err
	}
	if err := p.player.SetMedia(m); err != nil {
		_ = m.Release()
		return err
	}

	if p.media != nil {
		if err := p.media.Release(); err != nil {
			p.logger.Debug("Failed to release previous media", zap.Error(err))
		}
	}
	p.media = m
	p.loaded = path
	return nil
}

func (p *Player) Loaded() string { return p.loaded }

func (p *Player) Play() error { return p.player.Play() }

func (p *Player) Pause() error { return p.player.SetPause(true) }

func (p *Player) Stop() error { return p.player.Stop() }

func (p *Player) IsPlaying() bool { return p.player.IsPlaying() }

func (p *Player) SetTime(ms int64) error { return p.player.SetMediaTime(int(ms)) }

// Snapshot reads the fields reported in player_data; unreadable values stay zero
func (p *Player) Snapshot() domain.EngineSnapshot {
	snap := domain.EngineSnapshot{
		Media:      p.loaded,
		Rate:       float64(p.player.PlaybackRate()),
		IsPlaying:  p.player.IsPlaying(),
		Fullscreen: p.fullscreen,
	}
	if snap.Media == "" {
		snap.Media = "No media"
	}
	if state, err := p.player.MediaState(); err == nil {
		snap.State = stateNames[state]
	}
	if t, err := p.player.MediaTime(); err == nil {
		snap.Time = int64(t)
	}
	if length, err := p.player.MediaLength(); err == nil {
		snap.Duration = int64(length)
	}
	if pos, err := p.player.MediaPosition(); err == nil {
		snap.Position = float64(pos)
	}
	if vol, err := p.player.Volume(); err == nil {
		snap.Volume = vol
	}
	return snap
}

func (p *Player) SetVolume(level int) error { return p.player.SetVolume(level) }

func (p *Player) SetRate(rate float64) error { return p.player.SetPlaybackRate(float32(rate)) }

// SetFullscreen records the flag; the window itself is resized by the surface layer
func (p *Player) SetFullscreen(on bool) error {
	if err := p.player.SetFullScreen(on); err != nil {
		return err
	}
	p.fullscreen = on
	return nil
}

func (p *Player) SetAudioDevice(id string) error {
	if err := p.player.SetAudioOutputDevice(id, ""); err != nil {
		return multierr.Append(domain.ErrDeviceRejected, err)
	}
	return nil
}

func (p *Player) AudioDevices() ([]domain.AudioDevice, error) {
	devices, err := p.player.AudioOutputDevices()
	if err != nil {
		return nil, err
	}
	return lo.Map(devices, func(d *libvlc.AudioOutputDevice, _ int) domain.AudioDevice {
		return domain.AudioDevice{ID: d.Name, Name: d.Description}
	}), nil
}

// Release detaches callbacks and frees the player and its media
func (p *Player) Release() error {
	p.detach()
	var err error
	if p.media != nil {
		err = multierr.Append(err, p.media.Release())
		p.media = nil
	}
	return multierr.Append(err, p.player.Release())
}
