//go:build !cgo

package vlc

import (
	"github.com/genricoloni/duoplayer/internal/domain"
	"go.uber.org/zap"
)

func initialize([]string) error {
	return domain.ErrUnsupported
}

// Shutdown is a no-op without libVLC
func Shutdown() error { return nil }

func newPlayer(*zap.Logger, domain.SlotIndex, uint32, func(domain.EngineEvent)) (domain.MediaEngine, error) {
	return nil, domain.ErrUnsupported
}
