package sink

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/matzehuels/slidegrid/pkg/layout"
	"github.com/matzehuels/slidegrid/pkg/render/styles"
)

// pointsToPixels converts a line width in points to CSS pixels.
const pointsToPixels = 96.0 / 72.0

type opKind int

const (
	opRect opKind = iota
	opLabel
	opTable
)

type op struct {
	kind  opKind
	rect  layout.Rect
	style layout.RectStyle
	text  string
	rows  [][]string
}

// SVGOption configures an [SVGSurface].
type SVGOption func(*SVGSurface)

// WithStyle sets the visual style. The default is [styles.Simple].
func WithStyle(s styles.Style) SVGOption { return func(r *SVGSurface) { r.style = s } }

// WithTitle adds a <title> element to the document.
func WithTitle(title string) SVGOption { return func(r *SVGSurface) { r.title = title } }

// SVGSurface is a [layout.Surface] that records annotations in call order and
// renders them as an SVG document sized in CSS pixels.
//
// An SVGSurface belongs to a single [layout.Root] and is not safe for
// concurrent use.
type SVGSurface struct {
	size  layout.Size
	style styles.Style
	title string
	ops   []op
}

// NewSVG returns an empty surface for a canvas of the given size in EMU.
func NewSVG(size layout.Size, opts ...SVGOption) *SVGSurface {
	s := &SVGSurface{size: size, style: styles.Simple{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DrawRect records a rectangle outline.
func (s *SVGSurface) DrawRect(r layout.Rect, style layout.RectStyle) {
	s.ops = append(s.ops, op{kind: opRect, rect: r, style: style})
}

// DrawLabel records a text label.
func (s *SVGSurface) DrawLabel(r layout.Rect, text string) {
	s.ops = append(s.ops, op{kind: opLabel, rect: r, text: text})
}

// DrawTable records tabular content. rows is copied.
func (s *SVGSurface) DrawTable(r layout.Rect, rows [][]string) {
	cp := make([][]string, len(rows))
	for i, row := range rows {
		cp[i] = slices.Clone(row)
	}
	s.ops = append(s.ops, op{kind: opTable, rect: r, rows: cp})
}

// Len returns the number of recorded annotations.
func (s *SVGSurface) Len() int { return len(s.ops) }

// Bytes renders the recorded annotations as an SVG document.
func (s *SVGSurface) Bytes() []byte {
	w, h := Pixels(s.size.Width), Pixels(s.size.Height)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`+"\n",
		w, h, w, h)
	if s.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", styles.EscapeXML(s.title))
	}
	s.style.RenderDefs(&buf)
	s.style.RenderBackground(&buf, w, h)

	for i, o := range s.ops {
		box := PixelBox(o.rect)
		switch o.kind {
		case opRect:
			s.style.RenderShape(&buf, styles.Shape{
				ID:        fmt.Sprintf("shape-%d", i),
				Box:       box,
				Fill:      o.style.Fill,
				Line:      o.style.Line,
				LineWidth: o.style.LineWidth * pointsToPixels,
			})
		case opLabel:
			s.style.RenderLabel(&buf, styles.Label{ID: fmt.Sprintf("label-%d", i), Box: box, Text: o.text})
		case opTable:
			s.style.RenderTable(&buf, styles.Table{ID: fmt.Sprintf("table-%d", i), Box: box, Rows: o.rows})
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// Pixels converts EMU to CSS pixels at 96 DPI.
func Pixels(emu int64) float64 { return float64(emu) / layout.EMUPerPixel }

// PixelBox converts a rectangle in EMU to a pixel box.
func PixelBox(r layout.Rect) styles.Box {
	return styles.Box{X: Pixels(r.X), Y: Pixels(r.Y), W: Pixels(r.Width), H: Pixels(r.Height)}
}
