package layout

import "fmt"

// Rect is an axis-aligned rectangle in EMU. The origin is the top-left corner
// of the canvas and Y grows downward.
type Rect struct {
	X      int64 `json:"x"`
	Y      int64 `json:"y"`
	Width  int64 `json:"width"`
	Height int64 `json:"height"`
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() int64 { return r.X + r.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() int64 { return r.Y + r.Height }

// Inches returns the rectangle converted to inches as x, y, width, height.
func (r Rect) Inches() (x, y, w, h float64) {
	const in = float64(EMUPerInch)
	return float64(r.X) / in, float64(r.Y) / in, float64(r.Width) / in, float64(r.Height) / in
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// SplitVertical divides the width into side-by-side columns, one per unit.
// Each column keeps the source Y and Height. Columns are returned left to
// right in input order, starting at r.X with no gaps between them.
func (r Rect) SplitVertical(units []Unit) ([]Rect, error) {
	widths, err := ResolveSpan(units, r.Width)
	if err != nil {
		return nil, err
	}
	out := make([]Rect, len(widths))
	x := r.X
	for i, w := range widths {
		out[i] = Rect{X: x, Y: r.Y, Width: w, Height: r.Height}
		x += w
	}
	return out, nil
}

// SplitHorizontal divides the height into stacked rows, one per unit. Each
// row keeps the source X and Width. Rows are returned top to bottom in input
// order, starting at r.Y with no gaps between them.
func (r Rect) SplitHorizontal(units []Unit) ([]Rect, error) {
	heights, err := ResolveSpan(units, r.Height)
	if err != nil {
		return nil, err
	}
	out := make([]Rect, len(heights))
	y := r.Y
	for i, h := range heights {
		out[i] = Rect{X: r.X, Y: y, Width: r.Width, Height: h}
		y += h
	}
	return out, nil
}
