//go:build !linux

package surface

import (
	"context"
	"image"
	"image/color"

	"github.com/genricoloni/duoplayer/internal/domain"
	"go.uber.org/zap"
)

// Window is unavailable outside X11 hosts
type Window struct{}

// NewWindow always fails on this platform
func NewWindow(logger *zap.Logger, cfg domain.Config) (*Window, error) {
	logger.Error("Window system not supported on this platform")
	return nil, domain.Failed(domain.ErrUnsupported, "cannot create window")
}

// Surfaces returns no surfaces
func (w *Window) Surfaces() [domain.SlotCount]domain.Surface {
	return [domain.SlotCount]domain.Surface{}
}

// SetFullscreen is unsupported
func (w *Window) SetFullscreen(bool) error {
	return domain.ErrUnsupported
}

// SetBackground is unsupported
func (w *Window) SetBackground(color.Color) error {
	return domain.ErrUnsupported
}

// SetLogo is unsupported
func (w *Window) SetLogo(image.Image) error {
	return domain.ErrUnsupported
}

// ShowLogo is unsupported
func (w *Window) ShowLogo(bool) error {
	return domain.ErrUnsupported
}

// Bounds returns an empty rectangle
func (w *Window) Bounds() image.Rectangle {
	return image.Rectangle{}
}

// Events returns a nil channel
func (w *Window) Events() <-chan domain.WindowEvent {
	return nil
}

// Start is unsupported
func (w *Window) Start(context.Context) error {
	return domain.ErrUnsupported
}

// Stop does nothing
func (w *Window) Stop(context.Context) error {
	return nil
}
