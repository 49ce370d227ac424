package engine

import (
	"context"
	"fmt"

	"github.com/genricoloni/duoplayer/internal/command"
	"github.com/genricoloni/duoplayer/internal/domain"
	"github.com/genricoloni/duoplayer/internal/media"
	"github.com/genricoloni/duoplayer/internal/status"
	"github.com/samber/lo"
	"go.uber.org/multierr"
)

func (e *Engine) handle(ctx context.Context, cmd command.Command) error {
	switch c := cmd.(type) {
	case command.SetMedia:
		return e.players.LoadInto(ctx, c.Slot(domain.SlotA), media.NewItem(*c.File))

	case command.Play:
		return e.play(c.Slot(e.players.Active()))

	case command.Pause:
		if idx := c.Slot(e.players.Active()); !idx.Valid() {
			return invalidSlot(idx, "cannot pause")
		}
		return e.players.PauseActive()

	case command.Stop:
		idx := c.Slot(e.players.Active())
		if idx == e.players.Active() {
			e.playlist.Halt()
		}
		if err := e.players.StopSlot(idx); err != nil {
			return err
		}
		e.syncLogo()
		return nil

	case command.StopAll:
		return e.stopAll()

	case command.PlayID:
		return e.playlist.PlayItem(ctx, media.NewItem(*c.File))

	case command.SetTime:
		if idx := c.Slot(e.players.Active()); !idx.Valid() {
			return invalidSlot(idx, "cannot seek")
		}
		return e.players.SeekActive(*c.Time)

	case command.Volume:
		return e.players.SetVolume(*c.Volume)

	case command.Speed:
		return e.players.SetRate(*c.Speed)

	case command.SetAudioDevice:
		return e.players.SetAudioDevice(c.DeviceID)

	case command.GetAudioDevices:
		_, err := e.players.EnumerateAudioDevices()
		return err

	case command.PlaylistMode:
		e.playlist.SetMode(c.Value)
		return nil

	case command.SetTracks:
		e.playlist.SetTracks(lo.Map(c.Tracks, func(s media.File, _ int) domain.MediaItem {
			return media.NewItem(s)
		}))
		return nil

	case command.SetTrackIndex:
		return e.playlist.SetTrackIndex(*c.Index)

	case command.PlaylistPlay:
		i := e.playlist.TrackIndex()
		if c.Idx != nil {
			i = *c.Idx
		}
		return e.playlist.Play(ctx, i)

	case command.Next:
		return e.playlist.Next(ctx)

	case command.Previous:
		return e.playlist.Previous(ctx)

	case command.ImageTime:
		return e.playlist.SetDwellDefault(*c.Time)

	case command.SetFullscreen:
		if err := e.setFullscreen(c.Value); err != nil {
			return err
		}
		e.reporter.Emit(status.TypeSetFullscreen, status.ValueData[bool]{Value: c.Value})
		return nil

	case command.BackgroundColor:
		return e.setBackground(c.Color)

	case command.LogoFile:
		return e.setLogoFile(ctx, c.File)

	case command.LogoSize:
		return e.setLogoSize(*c.Size)

	case command.ShowLogo:
		e.logoShow = c.Show
		e.syncLogo()
		return nil

	case command.GetStatus:
		e.reporter.Emit(status.TypeActivePlayer, status.ValueData[int]{Value: int(e.players.Active())})
		for _, idx := range []domain.SlotIndex{domain.SlotA, domain.SlotB} {
			e.players.EmitPlayerData(idx, status.EventNone)
		}
		return nil
	}

	return domain.Invalid(fmt.Errorf("unhandled command %s", cmd.Name()), "invalid command")
}

// play starts idx and brings it to the front when it is not already showing
func (e *Engine) play(idx domain.SlotIndex) error {
	if !idx.Valid() {
		return invalidSlot(idx, "cannot play")
	}
	if idx != e.players.Active() {
		if err := e.players.Start(idx); err != nil {
			return err
		}
		e.playlist.Halt()
		return e.coord.Swap(idx)
	}

	if err := e.players.PlayActive(); err != nil {
		return err
	}
	if e.players.Surface(idx).Visible() {
		e.syncLogo()
		return nil
	}
	e.playlist.Halt()
	return e.coord.Swap(idx)
}

func (e *Engine) stopAll() error {
	e.coord.Finish()
	e.playlist.Halt()

	var err error
	for _, idx := range []domain.SlotIndex{domain.SlotA, domain.SlotB} {
		err = multierr.Append(err, e.players.StopSlot(idx))
	}
	e.syncLogo()
	return err
}

func invalidSlot(idx domain.SlotIndex, msg string) error {
	return domain.Invalid(fmt.Errorf("%w: %d", domain.ErrInvalidSlot, idx), msg)
}
