package domain

import (
	"errors"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
)

// Base causes. Callers wrap them with Invalid, Missing or Failed so the
// reporter can classify them.
var (
	ErrInvalidSlot     = errors.New("invalid player index")
	ErrEmptyPath       = errors.New("invalid media path provided")
	ErrNoFile          = errors.New("no file provided to set media")
	ErrNegativeTime    = errors.New("invalid time value provided")
	ErrInvalidTrack    = errors.New("invalid track index")
	ErrEmptyPlaylist   = errors.New("playlist is empty or index out of range")
	ErrNotPlaylistMode = errors.New("only available in playlist mode")
	ErrNoEngine        = errors.New("player engine is not available")
	ErrInvalidVolume   = errors.New("volume must be between 0 and 200")
	ErrInvalidRate     = errors.New("rate must be positive")
	ErrNoDevice        = errors.New("no audio device provided")
	ErrDeviceRejected  = errors.New("audio device rejected")
	ErrUnsupported     = errors.New("not supported on this platform")
)

// Invalid tags err as a rejected parameter
func Invalid(err error, msg string) error {
	return fault.Wrap(err, ftag.With(ftag.InvalidArgument), fmsg.With(msg))
}

// Missing tags err as an absent resource
func Missing(err error, msg string) error {
	return fault.Wrap(err, ftag.With(ftag.NotFound), fmsg.With(msg))
}

// Failed tags err as an engine or device failure
func Failed(err error, msg string) error {
	return fault.Wrap(err, ftag.With(ftag.Internal), fmsg.With(msg))
}

// Kind returns the classification reported next to an error message
func Kind(err error) string {
	if k := ftag.Get(err); k != "" {
		return string(k)
	}
	return string(ftag.Internal)
}
