// Package render holds the format conversions shared by the diagram
// renderers.
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG to other formats using the external
// rsvg-convert tool (from librsvg). The [nodelink] subpackage uses them for
// PDF output; SVG and PNG are produced in-process.
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//
// Use a [Converter] with a custom [execx.Runner] to stub the tool in tests.
//
// [nodelink]: github.com/matzehuels/pcietopo/pkg/render/nodelink
// [execx.Runner]: github.com/matzehuels/pcietopo/pkg/execx#Runner
package render
