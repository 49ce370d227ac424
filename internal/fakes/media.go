package fakes

import (
	"context"
	"image"
	"image/color"

	"github.com/genricoloni/duoplayer/internal/domain"
)

// Loader returns a solid image for any location unless it is listed in Missing
type Loader struct {
	Missing map[string]bool
}

func (l *Loader) Load(_ context.Context, location string) (image.Image, error) {
	if l.Missing[location] {
		return nil, domain.Missing(domain.ErrNoFile, "cannot open image file")
	}
	return image.NewRGBA(image.Rect(0, 0, 40, 30)), nil
}

// Composer returns frames of the requested size without resampling
type Composer struct{}

func (Composer) Compose(_ image.Image, size image.Point, _ color.Color) (image.Image, error) {
	return image.NewRGBA(image.Rectangle{Max: size}), nil
}

func (Composer) Logo(src image.Image, width int) (image.Image, error) {
	if width == 0 {
		return src, nil
	}
	return image.NewRGBA(image.Rect(0, 0, width, width)), nil
}
