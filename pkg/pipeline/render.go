package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/pcietopo/pkg/errors"
	"github.com/matzehuels/pcietopo/pkg/observability"
	"github.com/matzehuels/pcietopo/pkg/render/nodelink"
	"github.com/matzehuels/pcietopo/pkg/topology/transform"
)

// RenderPartition renders one NUMA partition in every requested format
// and returns the artifacts keyed by format. The json format is a
// whole-run export and is skipped here.
func RenderPartition(ctx context.Context, part transform.Partition, opts Options) (map[string][]byte, error) {
	opts.SetDefaults()
	name := part.Name()

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, name, opts.Formats)
	artifacts, err := renderPartition(ctx, part, opts)
	observability.Pipeline().OnRenderComplete(ctx, name, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	opts.Logger.Debug("rendered partition",
		"partition", name,
		"roots", len(part.Roots),
		"duration", time.Since(start))
	return artifacts, nil
}

func renderPartition(ctx context.Context, part transform.Partition, opts Options) (map[string][]byte, error) {
	name := part.Name()
	dot, err := nodelink.ToDOT(ctx, name, part.Roots, opts.NodelinkOptions())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "build %s", name)
	}

	artifacts := make(map[string][]byte)
	var svg []byte
	svgOnce := func() ([]byte, error) {
		if svg != nil {
			return svg, nil
		}
		out, err := nodelink.RenderSVG(ctx, dot)
		svg = out
		return out, err
	}

	for _, format := range opts.Formats {
		var (
			data []byte
			err  error
		)
		switch format {
		case FormatDOT:
			data = []byte(dot)
		case FormatSVG:
			data, err = svgOnce()
		case FormatPNG:
			data, err = nodelink.RenderPNG(ctx, dot)
		case FormatPDF:
			if data, err = svgOnce(); err == nil {
				data, err = opts.Converter.ToPDF(ctx, data)
			}
		case FormatJSON:
			continue
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRender, err, "render %s as %s", name, format)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
