package slots

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/genricoloni/duoplayer/internal/domain"
	"github.com/genricoloni/duoplayer/internal/loop"
	"github.com/genricoloni/duoplayer/internal/status"
	"github.com/samber/lo"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const defaultDeviceID = "default"

// SetAudioDevice routes both engines to deviceID on a retry worker.
// A newer request cancels the worker of an older one.
func (s *Set) SetAudioDevice(deviceID string) error {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return domain.Invalid(domain.ErrNoDevice, "cannot set audio device")
	}

	if s.retryCancel != nil {
		s.retryCancel()
	}
	ctx, cancel := context.WithCancel(s.ctx)
	s.retryCancel = cancel

	s.workers.Add(1)
	go func() {
		defer s.workers.Done()
		defer cancel()
		s.retryAudioDevice(ctx, deviceID)
	}()
	return nil
}

// retryAudioDevice runs on its own goroutine; each attempt runs on the loop
func (s *Set) retryAudioDevice(ctx context.Context, deviceID string) {
	attempts := s.retry.Attempts
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = loop.Call(ctx, s.dispatcher, func() error {
			return s.applyAudioDevice(deviceID)
		})
		if err == nil {
			s.reporter.Info(fmt.Sprintf("Audio device set to: %s", deviceID))
			return
		}
		if ctx.Err() != nil {
			s.logger.Debug("Audio device worker cancelled", zap.String("device", deviceID))
			return
		}

		s.logger.Warn("Audio device attempt failed",
			zap.String("device", deviceID),
			zap.Int("attempt", attempt),
			zap.Error(err))
		if attempt == attempts {
			break
		}
		s.reporter.Warn(fmt.Sprintf("Retrying to set audio device: %s (Attempt %d/%d)", deviceID, attempt, attempts))

		select {
		case <-ctx.Done():
			return
		case <-time.After(s.retry.Interval):
		}
	}

	s.reporter.Error(domain.Failed(err, "failed to set audio device "+deviceID))
}

func (s *Set) applyAudioDevice(deviceID string) error {
	var err error
	applied := 0
	for _, slot := range s.slots {
		if slot.engine == nil {
			continue
		}
		err = multierr.Append(err, slot.engine.SetAudioDevice(deviceID))
		applied++
	}
	if applied == 0 {
		return domain.ErrNoEngine
	}
	return err
}

// EnumerateAudioDevices reports the outputs of slot 0's engine
func (s *Set) EnumerateAudioDevices() ([]domain.AudioDevice, error) {
	engine := s.slots[domain.SlotA].engine
	if engine == nil {
		return nil, domain.Missing(domain.ErrNoEngine, "cannot list audio devices")
	}

	devices, err := engine.AudioDevices()
	if err != nil {
		return nil, domain.Failed(err, "cannot list audio devices")
	}
	devices = lo.Map(devices, func(d domain.AudioDevice, _ int) domain.AudioDevice {
		if d.ID == "" {
			d.ID = defaultDeviceID
		}
		if d.Name == "" {
			d.Name = d.ID
		}
		return d
	})

	s.reporter.Emit(status.TypeAudioDevices, status.AudioDevices{Devices: devices})
	return devices, nil
}
