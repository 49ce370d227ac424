//go:build !linux && !windows

package priority

import (
	"context"

	"github.com/genricoloni/duoplayer/internal/domain"
	"go.uber.org/zap"
)

// Raiser is a placeholder for unsupported platforms (macOS, BSD, etc.)
type Raiser struct {
	logger *zap.Logger
}

// NewRaiser creates a stub raiser
func NewRaiser(logger *zap.Logger) *Raiser {
	return &Raiser{logger: logger}
}

// Raise always fails on this platform
func (r *Raiser) Raise(ctx context.Context) (string, error) {
	return "", domain.Failed(domain.ErrUnsupported, failedMsg)
}
