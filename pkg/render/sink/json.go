package sink

import (
	"encoding/json"

	"github.com/matzehuels/slidegrid/pkg/errors"
	"github.com/matzehuels/slidegrid/pkg/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	title  string
	inches bool
}

// WithJSONTitle records a document title in the output.
func WithJSONTitle(title string) JSONOption { return func(r *jsonRenderer) { r.title = title } }

// WithJSONInches adds each node's rectangle in inches next to the EMU values.
func WithJSONInches() JSONOption { return func(r *jsonRenderer) { r.inches = true } }

type jsonOutput struct {
	Title  string     `json:"title,omitempty"`
	Units  string     `json:"units"`
	Width  int64      `json:"width"`
	Height int64      `json:"height"`
	Nodes  []jsonNode `json:"nodes"`
}

type jsonNode struct {
	Path   []int       `json:"path"`
	Kind   string      `json:"kind"`
	Unit   string      `json:"unit"`
	Name   string      `json:"name,omitempty"`
	Rect   layout.Rect `json:"rect"`
	Inches *jsonInches `json:"inches,omitempty"`
}

type jsonInches struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RenderJSON exports the geometry of a resolved layout as pretty-printed JSON.
// Nodes appear in depth-first pre-order with their path, kind, unit, optional
// name and rectangle in EMU.
//
// The export is one-way; there is no importer. RenderJSON fails with
// LAYOUT_STATE if the root has not been resolved.
func RenderJSON(root *layout.Root, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if !root.Resolved() {
		return nil, errors.New(errors.ErrCodeState, "layout must be resolved before export")
	}

	size := root.Size()
	out := jsonOutput{
		Title:  r.title,
		Units:  "emu",
		Width:  size.Width,
		Height: size.Height,
		Nodes:  make([]jsonNode, 0),
	}
	for a := range root.Walk() {
		rect, err := a.Rect()
		if err != nil {
			return nil, err
		}
		n := jsonNode{
			Path: a.Path(),
			Kind: a.Kind().String(),
			Unit: a.Unit().String(),
			Name: a.Name(),
			Rect: rect,
		}
		if r.inches {
			x, y, w, h := rect.Inches()
			n.Inches = &jsonInches{X: x, Y: y, Width: w, Height: h}
		}
		out.Nodes = append(out.Nodes, n)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode layout")
	}
	return data, nil
}
