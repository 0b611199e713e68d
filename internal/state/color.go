package state

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor converts a "#rgb" or "#rrggbb" stroke color into an opaque
// NRGBA value.
func ParseColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// StrokeRGBA is the shape's stroke color, black when it cannot be parsed.
func (s Shape) StrokeRGBA() color.NRGBA {
	c, err := ParseColor(s.StrokeColor)
	if err != nil {
		return color.NRGBA{A: 255}
	}
	return c
}
