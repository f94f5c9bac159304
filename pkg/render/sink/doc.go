// Package sink provides output formats for resolved slide layouts.
//
// # Overview
//
// A "sink" turns a resolved [layout.Root] and its annotations into a final
// output format:
//
//   - SVG: [SVGSurface] records annotation calls and renders them
//   - JSON: [RenderJSON] exports node geometry for external tools
//   - PDF and PNG: [RenderPDF] and [RenderPNG] convert the SVG (requires
//     rsvg-convert)
//
// # SVG Output
//
// [SVGSurface] implements [layout.Surface]. Pass it to [layout.NewRoot], resolve
// the tree, annotate areas and call [SVGSurface.Bytes]:
//
//	surface := sink.NewSVG(layout.Widescreen, sink.WithStyle(styles.Blueprint{}))
//	root, _ := layout.NewRoot(layout.Widescreen.Width, layout.Widescreen.Height, surface)
//	// build and resolve the tree, then annotate
//	svg := surface.Bytes()
//
// Coordinates are converted from EMU to CSS pixels at 96 DPI (9525 EMU per
// pixel); the viewBox uses the same pixel space. Annotations are drawn in the
// order they were made, so later calls paint over earlier ones.
//
// # JSON Output
//
// [RenderJSON] lists every node in depth-first pre-order with its path, kind,
// unit, name and rectangle in EMU. It is an export format only; layouts are
// never re-imported from JSON.
//
// [layout.Root]: github.com/matzehuels/slidegrid/pkg/layout.Root
// [layout.Surface]: github.com/matzehuels/slidegrid/pkg/layout.Surface
// [layout.NewRoot]: github.com/matzehuels/slidegrid/pkg/layout.NewRoot
package sink
