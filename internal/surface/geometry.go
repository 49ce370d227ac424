// Package surface provides the top-level window, the two slot surfaces and
// the logo overlay the players render into.
package surface

import (
	"image"
	"image/color"
	"image/draw"
)

const (
	defaultTitle = "Media Player"
	bytesPerPx   = 4
	// putImageHeader is the fixed part of a PutImage request
	putImageHeader = 24
)

var defaultBounds = image.Rect(100, 100, 900, 700)

// pixel packs c for a 24-bit TrueColor visual
func pixel(c color.Color) uint32 {
	if c == nil {
		return 0
	}
	r, g, b, _ := c.RGBA()
	return (r>>8)<<16 | (g>>8)<<8 | b>>8
}

// centered returns a rectangle of size centered inside outer
func centered(outer image.Rectangle, size image.Point) image.Rectangle {
	origin := image.Pt(
		outer.Min.X+(outer.Dx()-size.X)/2,
		outer.Min.Y+(outer.Dy()-size.Y)/2,
	)
	return image.Rectangle{Min: origin, Max: origin.Add(size)}
}

// zpixmap converts img to the little-endian BGRX layout of a depth 24/32 ZPixmap
func zpixmap(img image.Image) []byte {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != b.Dx()*bytesPerPx {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	out := make([]byte, len(rgba.Pix))
	for i := 0; i+3 < len(rgba.Pix); i += bytesPerPx {
		out[i] = rgba.Pix[i+2]
		out[i+1] = rgba.Pix[i+1]
		out[i+2] = rgba.Pix[i]
		out[i+3] = 0xff
	}
	return out
}

// rowsPerRequest is how many image rows fit in one request of maxBytes
func rowsPerRequest(width, maxBytes int) int {
	if width <= 0 {
		return 0
	}
	rows := (maxBytes - putImageHeader) / (width * bytesPerPx)
	return max(rows, 1)
}

// opacityValue scales level in [0,1] to the _NET_WM_WINDOW_OPACITY range
func opacityValue(level float64) uint32 {
	level = min(max(level, 0), 1)
	return uint32(level * float64(^uint32(0)))
}
