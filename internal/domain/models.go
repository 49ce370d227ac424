package domain

import (
	"image"
	"strings"
)

// SlotIndex identifies one of the two player slots
type SlotIndex int

const (
	// SlotA is the slot that is active at startup
	SlotA SlotIndex = 0
	// SlotB is the slot that starts as standby
	SlotB SlotIndex = 1
)

// SlotCount is the number of player slots
const SlotCount = 2

// Other returns the opposite slot
func (s SlotIndex) Other() SlotIndex {
	if s == SlotA {
		return SlotB
	}
	return SlotA
}

// Valid reports whether s addresses an existing slot
func (s SlotIndex) Valid() bool {
	return s == SlotA || s == SlotB
}

// PlaybackState represents the lifecycle state of a single slot
type PlaybackState string

const (
	// StateIdle indicates nothing has been loaded into the slot yet
	StateIdle PlaybackState = "Idle"
	// StateLoading indicates a source is attached but playback has not started
	StateLoading PlaybackState = "Loading"
	// StatePlaying indicates the slot is playing or displaying an image
	StatePlaying PlaybackState = "Playing"
	// StatePaused indicates playback is paused
	StatePaused PlaybackState = "Paused"
	// StateStopped indicates playback stopped or reached its end
	StateStopped PlaybackState = "Stopped"
	// StateError indicates the engine reported an error
	StateError PlaybackState = "Error"
)

// MediaItem is one playable unit supplied by the command source.
// It is never mutated after construction.
type MediaItem struct {
	// Path is a local path or URL understood by the engine
	Path string
	// MimeType as sent by the command source, may be empty
	MimeType string
	// IsImage items are rendered directly on the surface without the engine
	IsImage bool
	// DisplaySeconds is the dwell time for images, 0 means use the default
	DisplaySeconds int
	// UUID is echoed back in media_changed
	UUID string
	// Name is a display name, may be empty
	Name string
}

// IsAudio reports whether the item carries no picture at all
func (m MediaItem) IsAudio() bool {
	return strings.HasPrefix(m.MimeType, "audio/")
}

// AudioDevice is one audio output exposed by the engine
type AudioDevice struct {
	ID   string `json:"deviceid"`
	Name string `json:"name"`
}

// EngineEventKind enumerates the engine notifications the loop reacts to
type EngineEventKind int

const (
	EventTimeChanged EngineEventKind = iota
	EventPlaying
	EventPaused
	EventStopped
	EventEndReached
	EventError
	// EventDwellElapsed is synthesized when an image dwell timer expires
	EventDwellElapsed
)

var engineEventNames = map[EngineEventKind]string{
	EventTimeChanged: "MediaPlayerTimeChanged",
	EventPlaying:     "MediaPlayerPlaying",
	EventPaused:      "MediaPlayerPaused",
	EventStopped:     "MediaPlayerStopped",
	EventEndReached:  "MediaPlayerEndReached",
	EventError:       "MediaPlayerEncounteredError",
}

// String returns the name reported in player_data. Synthesized events have none.
func (k EngineEventKind) String() string {
	if name, ok := engineEventNames[k]; ok {
		return name
	}
	return "None"
}

// EngineEvent is emitted by an engine handle, tagged with its slot
type EngineEvent struct {
	Slot SlotIndex
	Kind EngineEventKind
	Err  error
}

// EngineSnapshot is the engine-side state reported in player_data
type EngineSnapshot struct {
	Media      string
	State      string
	Time       int64
	Duration   int64
	Position   float64
	Volume     int
	Rate       float64
	IsPlaying  bool
	Fullscreen bool
}

// WindowEventKind enumerates window notifications
type WindowEventKind int

const (
	// WindowResized is sent when the top-level window geometry changes
	WindowResized WindowEventKind = iota
	// WindowClosed is sent when the user closes the window
	WindowClosed
)

// WindowEvent is emitted by the window pump
type WindowEvent struct {
	Kind   WindowEventKind
	Bounds image.Rectangle
}

// LogoSettings is the logo part of the startup status
type LogoSettings struct {
	File string `json:"file"`
	Size int    `json:"size"`
	Show bool   `json:"show"`
}

// DeviceSettings is the audio part of the startup status
type DeviceSettings struct {
	AudioDevice string `json:"audiodevice"`
}

// InitialStatus is the startup status blob handed over by the host process
type InitialStatus struct {
	Background         string         `json:"background"`
	Fullscreen         bool           `json:"fullscreen"`
	Logo               LogoSettings   `json:"logo"`
	ImageTime          int            `json:"imageTime"`
	Device             DeviceSettings `json:"device"`
	PlaylistMode       bool           `json:"playlistMode"`
	PlaylistTrackIndex int            `json:"playlistTrackIndex"`
}

// DefaultInitialStatus returns the status used when the host sends none
func DefaultInitialStatus() InitialStatus {
	return InitialStatus{
		Background: "#000000",
		Logo:       LogoSettings{Show: true},
		ImageTime:  10,
		Device:     DeviceSettings{AudioDevice: "default"},
	}
}
