package layout

import (
	"strings"

	"github.com/matzehuels/slidegrid/pkg/errors"
)

// Surface receives annotation calls for resolved rectangles. Implementations
// draw onto whatever canvas they wrap; the layout core never reads anything
// back from a surface.
//
// A Surface is owned by exactly one [Root]. Sharing one surface between roots
// is unsupported.
type Surface interface {
	DrawRect(r Rect, style RectStyle)
	DrawLabel(r Rect, text string)
	DrawTable(r Rect, rows [][]string)
}

// Default outline style, matching a thin red debug frame.
const (
	DefaultLineColor = "FF0000"
	DefaultLineWidth = 1.0
)

// RectStyle describes how a rectangle outline is drawn. Colours are six digit
// uppercase hex values without a leading '#'. An empty Fill means no fill.
type RectStyle struct {
	Fill      string  `json:"fill,omitempty"`
	Line      string  `json:"line"`
	LineWidth float64 `json:"line_width"` // points
}

// RectOption configures a [RectStyle].
type RectOption func(*RectStyle)

// WithFill sets the fill colour.
func WithFill(hex string) RectOption {
	return func(s *RectStyle) { s.Fill = hex }
}

// WithLine sets the outline colour.
func WithLine(hex string) RectOption {
	return func(s *RectStyle) { s.Line = hex }
}

// WithLineWidth sets the outline width in points.
func WithLineWidth(pt float64) RectOption {
	return func(s *RectStyle) { s.LineWidth = pt }
}

// NewRectStyle applies opts on top of the default style and validates the
// result. Colours are normalised to uppercase without '#'.
func NewRectStyle(opts ...RectOption) (RectStyle, error) {
	s := RectStyle{Line: DefaultLineColor, LineWidth: DefaultLineWidth}
	for _, opt := range opts {
		opt(&s)
	}
	if s.Fill != "" {
		if err := errors.ValidateColor(s.Fill); err != nil {
			return RectStyle{}, err
		}
		s.Fill = normalizeColor(s.Fill)
	}
	if err := errors.ValidateColor(s.Line); err != nil {
		return RectStyle{}, err
	}
	s.Line = normalizeColor(s.Line)
	if s.LineWidth < 0 {
		return RectStyle{}, errors.New(errors.ErrCodeInvalidInput, "line width must not be negative, got %v", s.LineWidth)
	}
	return s, nil
}

func normalizeColor(hex string) string {
	return strings.ToUpper(strings.TrimPrefix(hex, "#"))
}
