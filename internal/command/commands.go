package command

import (
	"github.com/genricoloni/duoplayer/internal/domain"
	"github.com/genricoloni/duoplayer/internal/media"
)

// Name is the value of the "command" field
type Name string

const (
	NameSetMedia        Name = "set_media"
	NamePlay            Name = "play"
	NamePause           Name = "pause"
	NameStop            Name = "stop"
	NameStopAll         Name = "stop_all"
	NamePlayID          Name = "playid"
	NameSetTime         Name = "set_time"
	NameVolume          Name = "volume"
	NameSpeed           Name = "speed"
	NameSetAudioDevice  Name = "set_audio_device"
	NameGetAudioDevices Name = "get_audio_devices"
	NamePlaylistMode    Name = "playlist_mode"
	NameSetTracks       Name = "set_tracks"
	NameSetTrackIndex   Name = "set_track_index"
	NamePlaylistPlay    Name = "playlist_play"
	NameNext            Name = "next"
	NamePrevious        Name = "previous"
	NameImageTime       Name = "image_time"
	NameSetFullscreen   Name = "set_fullscreen"
	NameBackgroundColor Name = "background_color"
	NameLogoFile        Name = "logo_file"
	NameLogoSize        Name = "logo_size"
	NameShowLogo        Name = "show_logo"
	NameGetStatus       Name = "get_status"
)

// Command is one parsed input line
type Command interface {
	Name() Name
}

// SlotRef is an optional "idx" field
type SlotRef struct {
	Idx *int `json:"idx,omitempty"`
}

// Slot resolves the reference, falling back to def when absent
func (r SlotRef) Slot(def domain.SlotIndex) domain.SlotIndex {
	if r.Idx == nil {
		return def
	}
	return domain.SlotIndex(*r.Idx)
}

type SetMedia struct {
	SlotRef
	File *media.File `json:"file"`
}

type Play struct{ SlotRef }

type Pause struct{ SlotRef }

type Stop struct{ SlotRef }

type StopAll struct{}

type PlayID struct {
	File *media.File `json:"file"`
}

type SetTime struct {
	SlotRef
	Time *int64 `json:"time"`
}

type Volume struct {
	Volume *int `json:"volume"`
}

type Speed struct {
	Speed *float64 `json:"speed"`
}

type SetAudioDevice struct {
	DeviceID string `json:"device_id"`
}

type GetAudioDevices struct{}

type PlaylistMode struct {
	Value bool `json:"value"`
}

type SetTracks struct {
	Tracks []media.File `json:"tracks"`
}

type SetTrackIndex struct {
	Index *int `json:"index"`
}

type PlaylistPlay struct{ SlotRef }

type Next struct{}

type Previous struct{}

type ImageTime struct {
	Time *int `json:"time"`
}

type SetFullscreen struct {
	Value bool `json:"value"`
}

type BackgroundColor struct {
	Color string `json:"color"`
}

type LogoFile struct {
	File string `json:"file"`
}

type LogoSize struct {
	Size *int `json:"size"`
}

type ShowLogo struct {
	Show bool `json:"show"`
}

type GetStatus struct{}

func (SetMedia) Name() Name        { return NameSetMedia }
func (Play) Name() Name            { return NamePlay }
func (Pause) Name() Name           { return NamePause }
func (Stop) Name() Name            { return NameStop }
func (StopAll) Name() Name         { return NameStopAll }
func (PlayID) Name() Name          { return NamePlayID }
func (SetTime) Name() Name         { return NameSetTime }
func (Volume) Name() Name          { return NameVolume }
func (Speed) Name() Name           { return NameSpeed }
func (SetAudioDevice) Name() Name  { return NameSetAudioDevice }
func (GetAudioDevices) Name() Name { return NameGetAudioDevices }
func (PlaylistMode) Name() Name    { return NamePlaylistMode }
func (SetTracks) Name() Name       { return NameSetTracks }
func (SetTrackIndex) Name() Name   { return NameSetTrackIndex }
func (PlaylistPlay) Name() Name    { return NamePlaylistPlay }
func (Next) Name() Name            { return NameNext }
func (Previous) Name() Name        { return NamePrevious }
func (ImageTime) Name() Name       { return NameImageTime }
func (SetFullscreen) Name() Name   { return NameSetFullscreen }
func (BackgroundColor) Name() Name { return NameBackgroundColor }
func (LogoFile) Name() Name        { return NameLogoFile }
func (LogoSize) Name() Name        { return NameLogoSize }
func (ShowLogo) Name() Name        { return NameShowLogo }
func (GetStatus) Name() Name       { return NameGetStatus }
