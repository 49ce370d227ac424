package status

import "github.com/genricoloni/duoplayer/internal/domain"

// Image pseudo-events and states reported in player_data
const (
	EventNone            = "None"
	EventDisplayImage    = "display_image"
	EventStopImage       = "stop_image"
	StateDisplayingImage = "displaying_image"
	StateStoppedImage    = "stopped_image"
)

// PlayerData is the player_data payload
type PlayerData struct {
	ID         int     `json:"id"`
	Event      string  `json:"event"`
	Media      string  `json:"media"`
	State      string  `json:"state"`
	Time       int64   `json:"time"`
	Duration   int64   `json:"duration"`
	Position   float64 `json:"position"`
	Volume     int     `json:"volume"`
	Rate       float64 `json:"rate"`
	IsPlaying  bool    `json:"is_playing"`
	Fullscreen bool    `json:"fullscreen"`
}

// MediaChanged is the media_changed payload
type MediaChanged struct {
	Idx    int    `json:"idx"`
	UUID   string `json:"uuid"`
	Path   string `json:"path"`
	Title  string `json:"title,omitempty"`
	Artist string `json:"artist,omitempty"`
}

// EndReached is the end_reached payload
type EndReached struct {
	PlaylistTrackIndex int `json:"playlist_track_index"`
	ActivePlayerID     int `json:"active_player_id"`
}

// AudioDevices is the audiodevices payload
type AudioDevices struct {
	Devices []domain.AudioDevice `json:"devices"`
}
