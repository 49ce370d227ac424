package surface

import (
	"image"

	"github.com/kbinani/screenshot"
	"go.uber.org/zap"
)

// DisplayBounds returns the bounds of the primary display, falling back to
// 1920x1080 when none is detected
func DisplayBounds(logger *zap.Logger) image.Rectangle {
	if screenshot.NumActiveDisplays() <= 0 {
		logger.Warn("No active displays detected, falling back to 1920x1080")
		return image.Rect(0, 0, 1920, 1080)
	}

	bounds := screenshot.GetDisplayBounds(0)
	logger.Info("Display bounds detected",
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()))
	return bounds
}
