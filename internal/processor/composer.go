package processor

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // GIF format support
	_ "image/jpeg" // JPEG format support
	_ "image/png"  // PNG format support

	"github.com/disintegration/imaging"
	"github.com/genricoloni/duoplayer/internal/domain"
	"go.uber.org/zap"
)

// FrameProcessor decodes images and composes them into surface-sized frames
type FrameProcessor struct {
	logger *zap.Logger
	filter imaging.ResampleFilter
}

// NewFrameProcessor creates a new frame processor
func NewFrameProcessor(logger *zap.Logger) *FrameProcessor {
	return &FrameProcessor{
		logger: logger,
		filter: imaging.Lanczos,
	}
}

// Decode turns raw image bytes into an image, honoring EXIF orientation
func (p *FrameProcessor) Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, domain.Invalid(err, "failed to decode image")
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, domain.Invalid(fmt.Errorf("invalid image dimensions: %dx%d", bounds.Dx(), bounds.Dy()), "failed to decode image")
	}
	return img, nil
}

// Compose fits src inside size, keeping its aspect ratio, and centers it over bg
func (p *FrameProcessor) Compose(src image.Image, size image.Point, bg color.Color) (image.Image, error) {
	if src == nil {
		return nil, domain.Invalid(domain.ErrEmptyPath, "no image to compose")
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, domain.Invalid(fmt.Errorf("invalid surface size: %dx%d", size.X, size.Y), "cannot compose frame")
	}

	p.logger.Debug("Composing frame",
		zap.Int("w", size.X), zap.Int("h", size.Y),
		zap.Int("srcW", src.Bounds().Dx()), zap.Int("srcH", src.Bounds().Dy()))

	// Fit never upscales, small images stay centered at their own size
	fitted := imaging.Fit(src, size.X, size.Y, p.filter)
	canvas := imaging.New(size.X, size.Y, bg)
	return imaging.PasteCenter(canvas, fitted), nil
}

// Logo scales src to width keeping the aspect ratio. A width of 0 keeps the original size.
func (p *FrameProcessor) Logo(src image.Image, width int) (image.Image, error) {
	if src == nil {
		return nil, domain.Invalid(domain.ErrEmptyPath, "no logo image")
	}
	if width < 0 {
		return nil, domain.Invalid(fmt.Errorf("invalid logo width: %d", width), "cannot scale logo")
	}
	if width == 0 {
		return src, nil
	}
	return imaging.Resize(src, width, 0, p.filter), nil
}
