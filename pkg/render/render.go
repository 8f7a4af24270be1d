// Package render turns a layout plan into encoded card images.
//
// Two sinks are provided: an SVG sink that writes the card markup directly
// (the canonical visual definition) and a PNG sink that rasterizes the same
// geometry with embedded Go fonts or a caller-supplied TTF. Both consume a
// [layout.Plan] plus the original strings and know nothing about where the
// bytes end up.
package render

import (
	"fmt"
	"image/color"

	"github.com/tkurosawa/quotecard/pkg/config"
	"github.com/tkurosawa/quotecard/pkg/errors"
	"github.com/tkurosawa/quotecard/pkg/layout"
)

// Output formats supported by the renderer.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG: true,
	FormatSVG: true,
}

// Render dispatches to the sink for the requested format.
func Render(format string, plan layout.Plan, data layout.QuoteData, cfg config.Config, opts ...PNGOption) ([]byte, error) {
	switch format {
	case FormatSVG:
		return RenderSVG(plan, data, cfg)
	case FormatPNG:
		return RenderPNG(plan, data, cfg, opts...)
	default:
		return nil, errors.New(errors.ErrCodeRenderFailed, "unknown format: %s", format)
	}
}

// Ext returns the file extension for a format, including the dot.
func Ext(format string) string {
	return "." + format
}

// parseHexColor parses a #RRGGBB color string.
func parseHexColor(s string) (color.NRGBA, error) {
	var c color.NRGBA
	c.A = 0xFF
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("invalid color %q (want #RRGGBB)", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// withAlpha scales a color's alpha by opacity in [0, 1].
func withAlpha(c color.NRGBA, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(float64(c.A) * opacity)
	return c
}
