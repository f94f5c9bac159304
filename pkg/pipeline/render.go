package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/slidegrid/pkg/observability"
	"github.com/matzehuels/slidegrid/pkg/render/sink"
	"github.com/matzehuels/slidegrid/pkg/render/treeview"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, s *Slide, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := renderFormats(ctx, s, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

func renderFormats(ctx context.Context, s *Slide, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(ctx, s, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, s *Slide, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return s.Surface.Bytes(), nil
	case FormatPDF:
		return sink.RenderPDF(ctx, s.Surface)
	case FormatPNG:
		return sink.RenderPNG(ctx, s.Surface, sink.WithScale(opts.Scale))
	case FormatJSON:
		jsonOpts := []sink.JSONOption{sink.WithJSONTitle(s.Document.Title)}
		if opts.Inches {
			jsonOpts = append(jsonOpts, sink.WithJSONInches())
		}
		return sink.RenderJSON(s.Root, jsonOpts...)
	case FormatDOT:
		return []byte(treeview.ToDOT(s.Root.Area, treeview.Options{Detailed: opts.Debug})), nil
	case FormatTree:
		dot := treeview.ToDOT(s.Root.Area, treeview.Options{Detailed: true})
		return treeview.RenderSVG(ctx, dot)
	}
	return nil, ValidateFormat(format)
}
