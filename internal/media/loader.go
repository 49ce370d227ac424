package media

import (
	"context"
	"image"

	"github.com/genricoloni/duoplayer/internal/domain"
)

// Decoder turns raw bytes into an image
type Decoder interface {
	Decode(data []byte) (image.Image, error)
}

// ImageLoader fetches image items and decodes them
type ImageLoader struct {
	fetcher domain.Fetcher
	decoder Decoder
}

// NewImageLoader creates a new image loader
func NewImageLoader(fetcher domain.Fetcher, decoder Decoder) *ImageLoader {
	return &ImageLoader{fetcher: fetcher, decoder: decoder}
}

// Load fetches location and decodes it
func (l *ImageLoader) Load(ctx context.Context, location string) (image.Image, error) {
	data, err := l.fetcher.Fetch(ctx, location)
	if err != nil {
		return nil, err
	}
	return l.decoder.Decode(data)
}
