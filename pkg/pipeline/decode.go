package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/slidegrid/pkg/document"
	"github.com/matzehuels/slidegrid/pkg/observability"
)

// Decode parses the options' document.
func Decode(ctx context.Context, opts Options) (*document.Document, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnDecodeStart(ctx, opts.Syntax, len(opts.Document))
	start := time.Now()

	doc, err := document.Decode(opts.Document, document.Syntax(opts.Syntax))
	nodes := 0
	if doc != nil {
		nodes = doc.Count()
	}
	hooks.OnDecodeComplete(ctx, opts.Syntax, nodes, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return doc, nil
}
