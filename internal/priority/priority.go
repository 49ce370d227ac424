// Package priority asks the operating system to schedule the player ahead of
// other processes so playback does not stutter under load.
package priority

import (
	"context"

	"github.com/genricoloni/duoplayer/internal/domain"
	"go.uber.org/zap"
)

// niceLevel is the niceness requested on Linux
const niceLevel = -10

const failedMsg = "Failed to set process priority"

// Apply raises the priority when enabled and reports the outcome as a status line.
// A failure is never fatal.
func Apply(ctx context.Context, logger *zap.Logger, cfg domain.Config, raiser domain.PriorityRaiser, reporter domain.Reporter) {
	if !cfg.RaisePriority() {
		logger.Debug("Process priority tweak disabled")
		return
	}

	msg, err := raiser.Raise(ctx)
	if err != nil {
		logger.Warn("Process priority unchanged", zap.Error(err))
		reporter.Error(err)
		return
	}
	reporter.Info(msg)
}
