package sink

import (
	"context"

	"github.com/matzehuels/slidegrid/pkg/render"
)

// RenderPDF renders the surface as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, s *SVGSurface) ([]byte, error) {
	return render.ToPDF(ctx, s.Bytes())
}
