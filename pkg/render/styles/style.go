package styles

import "bytes"

// Style defines the visual appearance of annotations on an SVG surface.
// Coordinates passed to a style are in CSS pixels.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, patterns, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderBackground writes the canvas background.
	RenderBackground(buf *bytes.Buffer, w, h float64)
	// RenderShape writes the SVG for a rectangle annotation.
	RenderShape(buf *bytes.Buffer, s Shape)
	// RenderLabel writes the SVG for a text label.
	RenderLabel(buf *bytes.Buffer, l Label)
	// RenderTable writes the SVG for tabular content.
	RenderTable(buf *bytes.Buffer, t Table)
}

// ByName returns the style registered under name ("simple" or "blueprint").
func ByName(name string) (Style, bool) {
	switch name {
	case "", "simple":
		return Simple{}, true
	case "blueprint":
		return Blueprint{}, true
	}
	return nil, false
}

// Names lists the available style names.
func Names() []string { return []string{"simple", "blueprint"} }

// Box is a positioned rectangle in pixels.
type Box struct {
	X, Y, W, H float64
}

// Center returns the center point of the box.
func (b Box) Center() (cx, cy float64) { return b.X + b.W/2, b.Y + b.H/2 }

// Shape is a rectangle annotation.
type Shape struct {
	ID string
	Box
	Fill      string  // "RRGGBB", empty for no fill
	Line      string  // "RRGGBB"
	LineWidth float64 // pixels
}

// Label is a text annotation placed inside a box.
type Label struct {
	ID string
	Box
	Text string
}

// Table is tabular content laid out as an even grid. Rows[0] is the header.
type Table struct {
	ID string
	Box
	Rows [][]string
}

// Cells returns the grid cell boxes row by row. Every row has as many cells
// as the header.
func (t Table) Cells() [][]Box {
	if len(t.Rows) == 0 || len(t.Rows[0]) == 0 {
		return nil
	}
	nr, nc := len(t.Rows), len(t.Rows[0])
	cw, ch := t.W/float64(nc), t.H/float64(nr)
	cells := make([][]Box, nr)
	for i := range cells {
		cells[i] = make([]Box, nc)
		for j := range cells[i] {
			cells[i][j] = Box{X: t.X + float64(j)*cw, Y: t.Y + float64(i)*ch, W: cw, H: ch}
		}
	}
	return cells
}
