//go:build linux

package priority

import (
	"context"
	"fmt"
	"os"

	"github.com/genricoloni/duoplayer/internal/domain"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// Raiser renices the process through RealtimeKit, falling back to setpriority
type Raiser struct {
	logger *zap.Logger
	dial   func() (DBusClient, error)
	renice func(prio int) error
	pid    int
}

// NewRaiser creates the Linux priority raiser
func NewRaiser(logger *zap.Logger) *Raiser {
	return newRaiser(logger, NewStdDBusClient, func(prio int) error {
		return unix.Setpriority(unix.PRIO_PROCESS, 0, prio)
	})
}

func newRaiser(logger *zap.Logger, dial func() (DBusClient, error), renice func(int) error) *Raiser {
	return &Raiser{
		logger: logger,
		dial:   dial,
		renice: renice,
		pid:    os.Getpid(),
	}
}

// Raise elevates the process priority and describes the outcome
func (r *Raiser) Raise(ctx context.Context) (string, error) {
	rtErr := r.viaRealtimeKit(ctx)
	if rtErr == nil {
		r.logger.Info("Process priority raised via RealtimeKit", zap.Int("nice", niceLevel))
		return fmt.Sprintf("Process priority set to %d via RealtimeKit", niceLevel), nil
	}
	r.logger.Debug("RealtimeKit unavailable, falling back to setpriority", zap.Error(rtErr))

	if err := r.renice(niceLevel); err != nil {
		return "", domain.Failed(multierr.Append(rtErr, err), failedMsg)
	}
	r.logger.Info("Process priority raised via setpriority", zap.Int("nice", niceLevel))
	return fmt.Sprintf("Process priority set to %d", niceLevel), nil
}

func (r *Raiser) viaRealtimeKit(ctx context.Context) error {
	client, err := r.dial()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			r.logger.Warn("Failed to close D-Bus connection", zap.Error(cerr))
		}
	}()
	return client.MakeThreadHighPriority(ctx, uint64(r.pid), niceLevel)
}
