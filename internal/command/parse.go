package command

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/genricoloni/duoplayer/internal/domain"
)

var (
	errNotObject      = errors.New("command line is not a JSON object")
	errMissingName    = errors.New("missing command field")
	errInvalidName    = errors.New("command field must be a string")
	errMissingField   = errors.New("missing required field")
	errUnknownCommand = errors.New("unknown command")
)

type parser func(line []byte) (Command, error)

var parsers = map[Name]parser{
	NameSetMedia:        decode[SetMedia],
	NamePlay:            decode[Play],
	NamePause:           decode[Pause],
	NameStop:            decode[Stop],
	NameStopAll:         decode[StopAll],
	NamePlayID:          decode[PlayID],
	NameSetTime:         decode[SetTime],
	NameVolume:          decode[Volume],
	NameSpeed:           decode[Speed],
	NameSetAudioDevice:  decode[SetAudioDevice],
	NameGetAudioDevices: decode[GetAudioDevices],
	NamePlaylistMode:    decode[PlaylistMode],
	NameSetTracks:       decode[SetTracks],
	NameSetTrackIndex:   decode[SetTrackIndex],
	NamePlaylistPlay:    decode[PlaylistPlay],
	NameNext:            decode[Next],
	NamePrevious:        decode[Previous],
	NameImageTime:       decode[ImageTime],
	NameSetFullscreen:   decode[SetFullscreen],
	NameBackgroundColor: decode[BackgroundColor],
	NameLogoFile:        decode[LogoFile],
	NameLogoSize:        decode[LogoSize],
	NameShowLogo:        decode[ShowLogo],
	NameGetStatus:       decode[GetStatus],
}

// Parse decodes one input line into its typed command
func Parse(line []byte) (Command, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(line, &fields); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, domain.Invalid(errNotObject, "invalid command")
		}
		return nil, domain.Invalid(err, "invalid JSON received")
	}
	if fields == nil {
		return nil, domain.Invalid(errNotObject, "invalid command")
	}

	raw, ok := fields["command"]
	if !ok {
		return nil, domain.Invalid(errMissingName, "invalid command")
	}
	var name Name
	if err := json.Unmarshal(raw, &name); err != nil {
		return nil, domain.Invalid(errInvalidName, "invalid command")
	}

	p, ok := parsers[name]
	if !ok {
		return nil, domain.Invalid(fmt.Errorf("%w: %s", errUnknownCommand, name), "invalid command")
	}

	cmd, err := p(line)
	if err != nil {
		return nil, domain.Invalid(err, fmt.Sprintf("invalid payload for %s", name))
	}
	return cmd, nil
}

func decode[T Command](line []byte) (Command, error) {
	var cmd T
	if err := json.Unmarshal(line, &cmd); err != nil {
		return nil, err
	}
	if err := validate(cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}

func validate(cmd Command) error {
	missing := func(field string) error {
		return fmt.Errorf("%w: %s", errMissingField, field)
	}

	switch c := cmd.(type) {
	case SetMedia:
		if c.File == nil {
			return domain.ErrNoFile
		}
	case PlayID:
		if c.File == nil {
			return domain.ErrNoFile
		}
	case SetTime:
		if c.Time == nil {
			return missing("time")
		}
	case Volume:
		if c.Volume == nil {
			return missing("volume")
		}
	case Speed:
		if c.Speed == nil {
			return missing("speed")
		}
	case SetTrackIndex:
		if c.Index == nil {
			return missing("index")
		}
	case ImageTime:
		if c.Time == nil {
			return missing("time")
		}
	case LogoSize:
		if c.Size == nil {
			return missing("size")
		}
	}
	return nil
}
