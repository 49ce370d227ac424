package fakes

import (
	"sync"

	"github.com/genricoloni/duoplayer/internal/domain"
)

// Engine is an in-memory playback engine.
// Transport calls emit the matching event on Sink when it is set.
type Engine struct {
	mu      sync.Mutex
	Slot    domain.SlotIndex
	Sink    func(domain.EngineEvent)
	loaded  string
	loads   int
	playing bool
	time    int64
	volume  int
	rate    float64
	full    bool
	device  string
	// DeviceErr is returned by SetAudioDevice
	DeviceErr error
	Devices   []domain.AudioDevice
}

// NewEngine creates an idle engine for slot
func NewEngine(slot domain.SlotIndex) *Engine {
	return &Engine{Slot: slot, volume: 100, rate: 1}
}

func (e *Engine) emit(kind domain.EngineEventKind) {
	if e.Sink != nil {
		e.Sink(domain.EngineEvent{Slot: e.Slot, Kind: kind})
	}
}

func (e *Engine) Load(path string) error {
	e.mu.Lock()
	e.loaded = path
	e.loads++
	e.time = 0
	e.mu.Unlock()
	return nil
}

func (e *Engine) Loaded() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loaded
}

// Loads counts Load calls
func (e *Engine) Loads() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loads
}

func (e *Engine) Play() error {
	e.mu.Lock()
	e.playing = true
	e.mu.Unlock()
	e.emit(domain.EventPlaying)
	return nil
}

func (e *Engine) Pause() error {
	e.mu.Lock()
	e.playing = false
	e.mu.Unlock()
	e.emit(domain.EventPaused)
	return nil
}

func (e *Engine) Stop() error {
	e.mu.Lock()
	e.playing = false
	e.mu.Unlock()
	e.emit(domain.EventStopped)
	return nil
}

// End simulates the natural end of the source
func (e *Engine) End() {
	e.mu.Lock()
	e.playing = false
	e.mu.Unlock()
	e.emit(domain.EventEndReached)
}

func (e *Engine) IsPlaying() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playing
}

func (e *Engine) SetTime(ms int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.time = ms
	return nil
}

// Time returns the current position
func (e *Engine) Time() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.time
}

func (e *Engine) Snapshot() domain.EngineSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	state := "Stopped"
	if e.playing {
		state = "Playing"
	}
	return domain.EngineSnapshot{
		Media:      e.loaded,
		State:      state,
		Time:       e.time,
		Volume:     e.volume,
		Rate:       e.rate,
		IsPlaying:  e.playing,
		Fullscreen: e.full,
	}
}

func (e *Engine) SetVolume(level int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.volume = level
	return nil
}

func (e *Engine) SetRate(rate float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rate = rate
	return nil
}

func (e *Engine) SetFullscreen(on bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.full = on
	return nil
}

func (e *Engine) SetAudioDevice(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.DeviceErr != nil {
		return e.DeviceErr
	}
	e.device = id
	return nil
}

// Device returns the last accepted audio device
func (e *Engine) Device() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.device
}

func (e *Engine) AudioDevices() ([]domain.AudioDevice, error) {
	return e.Devices, nil
}

func (e *Engine) Release() error { return nil }
