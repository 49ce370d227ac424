package processor

import (
	"image/color"

	"github.com/genricoloni/duoplayer/internal/domain"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a #rrggbb or #rgb background color
func ParseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, domain.Invalid(err, "invalid background color "+hex)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
