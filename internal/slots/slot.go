package slots

import (
	"image"

	"github.com/genricoloni/duoplayer/internal/domain"
)

// Slot is one of the two symmetric players.
// Its fields are only touched on the owning loop.
type Slot struct {
	index   domain.SlotIndex
	engine  domain.MediaEngine
	surface domain.Surface

	item         *domain.MediaItem
	state        domain.PlaybackState
	lastPosition int64
	lastDuration int64

	// decoded source of an image item, kept so a resize can recompose it
	source image.Image

	// loads numbers each LoadInto; an image decoded for an older load is dropped
	loads uint64
	// startOnLoad marks an image started before its decode finished
	startOnLoad bool
}

func newSlot(idx domain.SlotIndex, engine domain.MediaEngine, surface domain.Surface) *Slot {
	return &Slot{
		index:   idx,
		engine:  engine,
		surface: surface,
		state:   domain.StateIdle,
	}
}

// Index returns the slot position
func (s *Slot) Index() domain.SlotIndex { return s.index }

// Item returns a copy of the bound item, or nil
func (s *Slot) Item() *domain.MediaItem {
	if s.item == nil {
		return nil
	}
	item := *s.item
	return &item
}

// State returns the playback state
func (s *Slot) State() domain.PlaybackState { return s.state }

// LastPosition is the last engine time seen, in ms
func (s *Slot) LastPosition() int64 { return s.lastPosition }

// LastDuration is the last engine length seen, in ms
func (s *Slot) LastDuration() int64 { return s.lastDuration }

func (s *Slot) isImage() bool {
	return s.item != nil && s.item.IsImage
}
