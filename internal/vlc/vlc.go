// Package vlc binds one libVLC media player to each slot surface.
package vlc

import (
	"github.com/genricoloni/duoplayer/internal/domain"
	"github.com/genricoloni/duoplayer/internal/loop"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const defaultVolume = 100

// NewEngines initializes libVLC with the configured flags and creates one
// player per window surface. Engine notifications are pushed onto events.
func NewEngines(
	logger *zap.Logger,
	cfg domain.Config,
	window domain.Window,
	events *loop.Events,
) ([domain.SlotCount]domain.MediaEngine, error) {
	var engines [domain.SlotCount]domain.MediaEngine

	if err := initialize(cfg.EngineArgs()); err != nil {
		return engines, domain.Failed(err, "cannot initialize playback engine")
	}

	surfaces := window.Surfaces()
	for i := range engines {
		idx := domain.SlotIndex(i)
		p, err := newPlayer(logger.With(zap.Int("slot", i)), idx, surfaces[i].Handle(), events.Push)
		if err != nil {
			var release error
			for _, created := range engines[:i] {
				release = multierr.Append(release, created.Release())
			}
			return engines, domain.Failed(multierr.Append(err, release), "cannot create player")
		}
		engines[i] = p
	}

	logger.Info("Playback engines ready", zap.Strings("args", cfg.EngineArgs()))
	return engines, nil
}
