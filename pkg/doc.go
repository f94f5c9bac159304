// Package pkg provides the core libraries for Slidegrid slide layouts.
//
// # Overview
//
// Slidegrid turns a declarative tree of rows, columns and boxes into exact
// slide rectangles measured in EMUs (English Metric Units, 914400 per inch).
// Sizes are given as absolute lengths, as ratios of the parent, or as weights
// that share whatever space is left. The pkg directory is organized into:
//
//  1. [layout] - Units, span resolution and the area tree
//  2. [document] - TOML, YAML and JSON layout documents
//  3. [render] - SVG surfaces, styles, JSON export and tree diagrams
//  4. [pipeline] - Orchestration (decode → resolve → render) with caching
//  5. [cache] - File, Redis and no-op result caches
//
// # Architecture
//
// The typical data flow through Slidegrid:
//
//	Layout document (TOML/YAML/JSON)
//	         ↓
//	    [document] package (decode + build area tree)
//	         ↓
//	    [layout] package (resolve rectangles)
//	         ↓
//	    [render] package (draw annotations)
//	         ↓
//	    SVG/PDF/PNG/JSON output
//
// # Quick Start
//
// Resolve a two-column slide by hand:
//
//	import "github.com/matzehuels/slidegrid/pkg/layout"
//
//	root, _ := layout.NewRoot(layout.Widescreen.Width, layout.Widescreen.Height, nil)
//	cols, _ := root.SplitVertical(layout.Inch(3), layout.Auto())
//	_ = root.Resolve()
//	r, _ := cols[1].Rect()
//
// Or run a whole document through the pipeline:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Document: data,
//	    Syntax:   "toml",
//	    Formats:  []string{pipeline.FormatSVG, pipeline.FormatJSON},
//	})
//
// # Errors
//
// Every package reports failures as [errors.Error] values carrying a stable
// code such as LAYOUT_OVERFLOW or INVALID_UNIT. Use [errors.Is] to branch on
// the code and [errors.UserMessage] for display.
//
// [layout]: https://pkg.go.dev/github.com/matzehuels/slidegrid/pkg/layout
// [document]: https://pkg.go.dev/github.com/matzehuels/slidegrid/pkg/document
// [render]: https://pkg.go.dev/github.com/matzehuels/slidegrid/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/slidegrid/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/slidegrid/pkg/cache
// [errors.Error]: https://pkg.go.dev/github.com/matzehuels/slidegrid/pkg/errors#Error
// [errors.Is]: https://pkg.go.dev/github.com/matzehuels/slidegrid/pkg/errors#Is
// [errors.UserMessage]: https://pkg.go.dev/github.com/matzehuels/slidegrid/pkg/errors#UserMessage
package pkg
