// Package render turns resolved slide layouts into visual output.
//
// # Overview
//
// The layout core only computes rectangles. Everything that draws them lives
// here:
//
//   - Format conversion from SVG to PDF and PNG ([ToPDF], [ToPNG])
//   - Output sinks for SVG and JSON (in the [sink] subpackage)
//   - Visual styles for rectangles, labels and tables (in [styles])
//   - Tree diagrams of a layout's structure (in [treeview])
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG using the external rsvg-convert tool
// from librsvg:
//
//	svg := surface.Bytes()
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// Without librsvg both return an UNSUPPORTED error; use [Available] to check
// up front.
//
// [sink]: github.com/matzehuels/slidegrid/pkg/render/sink
// [styles]: github.com/matzehuels/slidegrid/pkg/render/styles
// [treeview]: github.com/matzehuels/slidegrid/pkg/render/treeview
package render
