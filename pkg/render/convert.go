package render

import (
	"context"
	"errors"
	"fmt"

	"github.com/matzehuels/pcietopo/pkg/execx"
)

const rsvgConvert = "rsvg-convert"

// Converter turns SVG into other formats using rsvg-convert.
type Converter struct {
	// Runner executes rsvg-convert. Nil uses [execx.Exec].
	Runner execx.Runner
}

// ToPDF converts SVG bytes to PDF using rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return Converter{}.ToPDF(ctx, svg)
}

// ToPNG converts SVG bytes to PNG with the given scale factor.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	return Converter{}.ToPNG(ctx, svg, scale)
}

// ToPDF converts SVG bytes to PDF.
func (c Converter) ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return c.convert(ctx, svg, "pdf")
}

// ToPNG converts SVG bytes to PNG. A scale of 2.0 produces a 2x image.
func (c Converter) ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	return c.convert(ctx, svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

func (c Converter) convert(ctx context.Context, svg []byte, format string, extraArgs ...string) ([]byte, error) {
	run := c.Runner
	if run == nil {
		run = execx.Exec{}
	}
	args := append([]string{"-f", format}, extraArgs...)
	out, err := run.Run(ctx, svg, rsvgConvert, args...)
	if errors.Is(err, execx.ErrNotInstalled) {
		return nil, fmt.Errorf("%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
