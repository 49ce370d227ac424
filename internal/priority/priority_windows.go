//go:build windows

package priority

import (
	"context"

	"github.com/genricoloni/duoplayer/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

// Raiser moves the process into the realtime priority class
type Raiser struct {
	logger *zap.Logger
}

// NewRaiser creates the Windows priority raiser
func NewRaiser(logger *zap.Logger) *Raiser {
	return &Raiser{logger: logger}
}

// Raise calls SetPriorityClass on the current process
func (r *Raiser) Raise(ctx context.Context) (string, error) {
	if err := windows.SetPriorityClass(windows.CurrentProcess(), windows.REALTIME_PRIORITY_CLASS); err != nil {
		return "", domain.Failed(err, failedMsg)
	}
	r.logger.Info("Process priority class set", zap.String("class", "REALTIME"))
	return "Process priority set to REALTIME", nil
}
