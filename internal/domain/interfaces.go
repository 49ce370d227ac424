package domain

import (
	"context"
	"image"
	"image/color"
	"time"
)

// MediaEngine is one playback-engine handle bound to one render surface.
// Implementations deliver their notifications as EngineEvents on the sink they
// were constructed with, never by calling back into player state.
//
//go:generate mockgen -destination=mocks/engine_mock.go -package=mocks github.com/genricoloni/duoplayer/internal/domain MediaEngine
type MediaEngine interface {
	// Load attaches a new source to the handle without starting it
	Load(path string) error

	// Loaded returns the path of the attached source, or "" if none
	Loaded() string

	// Play starts or resumes playback
	Play() error

	// Pause pauses playback
	Pause() error

	// Stop stops playback, keeping the source attached
	Stop() error

	// IsPlaying reports whether the handle is currently playing
	IsPlaying() bool

	// SetTime seeks to the given position in milliseconds
	SetTime(ms int64) error

	// Snapshot returns the state reported in player_data
	Snapshot() EngineSnapshot

	// SetVolume sets the output volume (0-200)
	SetVolume(level int) error

	// SetRate sets the playback speed multiplier
	SetRate(rate float64) error

	// SetFullscreen mirrors the window fullscreen flag on the handle
	SetFullscreen(on bool) error

	// SetAudioDevice routes audio to the given device id
	SetAudioDevice(id string) error

	// AudioDevices lists the available audio outputs
	AudioDevices() ([]AudioDevice, error)

	// Release frees the handle; it must not be used afterwards
	Release() error
}

// Surface is the render target of one slot.
// It hides the concrete window-system type from the coordinator.
//
//go:generate mockgen -destination=mocks/surface_mock.go -package=mocks github.com/genricoloni/duoplayer/internal/domain Surface
type Surface interface {
	// Show makes the surface visible
	Show() error

	// Hide makes the surface invisible
	Hide() error

	// Raise stacks the surface above its siblings
	Raise() error

	// Visible reports the last requested visibility
	Visible() bool

	// SetImage displays a composed frame directly, bypassing the engine
	SetImage(frame image.Image) error

	// ClearImage removes the displayed frame
	ClearImage() error

	// HasImage reports whether a frame is displayed
	HasImage() bool

	// SetOpacity sets the surface opacity in [0,1]
	SetOpacity(level float64) error

	// Geometry returns the surface bounds
	Geometry() image.Rectangle

	// Handle returns the native window handle the engine renders into
	Handle() uint32
}

// Window is the top-level window hosting both surfaces and the logo
type Window interface {
	// Surfaces returns the render surfaces for slot 0 and slot 1
	Surfaces() [SlotCount]Surface

	// SetFullscreen switches fullscreen mode
	SetFullscreen(on bool) error

	// SetBackground sets the color shown behind and around content
	SetBackground(c color.Color) error

	// SetLogo replaces the logo frame; nil removes it
	SetLogo(frame image.Image) error

	// ShowLogo toggles logo visibility and raises it when shown
	ShowLogo(show bool) error

	// Bounds returns the current client area
	Bounds() image.Rectangle

	// Events returns a read-only channel of window notifications
	Events() <-chan WindowEvent

	// Start begins pumping window-system events
	Start(ctx context.Context) error

	// Stop closes the window and its connection
	Stop(ctx context.Context) error
}

// Dispatcher marshals work onto the goroutine that owns player state
type Dispatcher interface {
	// Post queues fn for execution on the owning goroutine
	Post(fn func())

	// After queues fn for execution on the owning goroutine once d has elapsed.
	// The returned cancel func reports whether fn was still pending.
	After(d time.Duration, fn func()) (cancel func() bool)

	// Go runs work off the owning goroutine, then queues the func it returns
	Go(work func() func())
}

// Reporter emits status lines on the output stream
type Reporter interface {
	// Emit writes one {"type","data"} line and flushes it
	Emit(kind string, data any)

	// Info emits an info line
	Info(msg string)

	// Warn emits a warn line
	Warn(msg string)

	// Debug emits a debug line
	Debug(msg string)

	// Error emits an error line describing err
	Error(err error)
}

// Fetcher retrieves the raw bytes of an image asset
type Fetcher interface {
	// Fetch reads a local path or downloads an http(s) URL
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// FrameComposer turns source images into frames that fit a surface
type FrameComposer interface {
	// Compose fits src into size, centered over bg
	Compose(src image.Image, size image.Point, bg color.Color) (image.Image, error)

	// Logo scales src to the requested width, keeping its aspect ratio.
	// A width of 0 keeps the original size.
	Logo(src image.Image, width int) (image.Image, error)
}

// ImageLoader fetches and decodes image items
type ImageLoader interface {
	// Load returns the decoded image at location
	Load(ctx context.Context, location string) (image.Image, error)
}

// TagReader extracts descriptive metadata from audio files
type TagReader interface {
	// Read returns title and artist, empty when unavailable
	Read(path string) (title, artist string)
}

// PriorityRaiser asks the OS to schedule this process ahead of others
type PriorityRaiser interface {
	// Raise elevates the process priority and describes the outcome
	Raise(ctx context.Context) (string, error)
}

// Config defines the interface for application configuration
type Config interface {
	// InstantSwap selects the hard-cut transition instead of the opacity fade
	InstantSwap() bool

	// FadeDuration is the length of the opacity fade
	FadeDuration() time.Duration

	// DebounceWindow is the per-command duplicate suppression window
	DebounceWindow() time.Duration

	// AudioRetries bounds the audio device attempts
	AudioRetries() int

	// AudioRetryInterval is the pause between audio device attempts
	AudioRetryInterval() time.Duration

	// DiagAddr is the diagnostics listen address, empty when disabled
	DiagAddr() string

	// RaisePriority enables the process priority tweak
	RaisePriority() bool

	// EngineArgs are passed to the playback engine at init
	EngineArgs() []string

	// Initial returns the startup status blob
	Initial() InitialStatus

	// InitialErr explains why the startup blob was rejected, nil when absent or valid
	InitialErr() error
}
