package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/slidegrid/pkg/document"
	"github.com/matzehuels/slidegrid/pkg/layout"
	"github.com/matzehuels/slidegrid/pkg/observability"
	"github.com/matzehuels/slidegrid/pkg/render/sink"
	"github.com/matzehuels/slidegrid/pkg/render/styles"
)

// Slide is a resolved document together with the surface holding its
// annotations.
type Slide struct {
	Document *document.Document
	Root     *layout.Root
	Surface  *sink.SVGSurface
}

// Resolve builds the document's tree on a fresh SVG surface, resolves it and
// draws the annotations. The style in opts wins over the document's.
func Resolve(ctx context.Context, doc *document.Document, opts Options) (*Slide, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	styleName := opts.Style
	if styleName == "" {
		styleName = doc.Style
	}
	style, ok := styles.ByName(styleName)
	if !ok {
		return nil, ValidateStyle(styleName)
	}

	size, err := doc.Canvas.Size()
	if err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}
	surface := sink.NewSVG(size, sink.WithStyle(style), sink.WithTitle(doc.Title))
	root, err := doc.Build(surface, layout.WithLogger(opts.Logger))
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	nodes := doc.Count()
	hooks := observability.Pipeline()
	hooks.OnResolveStart(ctx, nodes)
	start := time.Now()
	err = root.Resolve()
	hooks.OnResolveComplete(ctx, nodes, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	if err := doc.Annotate(root, opts.Debug || doc.Debug); err != nil {
		return nil, fmt.Errorf("annotate: %w", err)
	}
	return &Slide{Document: doc, Root: root, Surface: surface}, nil
}
