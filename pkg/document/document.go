package document

import (
	"github.com/matzehuels/slidegrid/pkg/errors"
	"github.com/matzehuels/slidegrid/pkg/layout"
)

// Document describes one slide: its canvas, its layout tree and the
// annotations to draw once the tree is resolved.
type Document struct {
	Title  string `toml:"title" yaml:"title" json:"title,omitempty"`
	Style  string `toml:"style" yaml:"style" json:"style,omitempty"`
	Debug  bool   `toml:"debug" yaml:"debug" json:"debug,omitempty"`
	Canvas Canvas `toml:"canvas" yaml:"canvas" json:"canvas"`
	Layout Node   `toml:"layout" yaml:"layout" json:"layout"`
}

// Canvas selects the slide extent, either by preset name or by explicit
// lengths such as "10in". Explicit lengths win over the preset. The zero
// value is the widescreen preset.
type Canvas struct {
	Preset string `toml:"preset" yaml:"preset" json:"preset,omitempty"`
	Width  string `toml:"width" yaml:"width" json:"width,omitempty"`
	Height string `toml:"height" yaml:"height" json:"height,omitempty"`
}

// Node describes one area. Split is "vertical" (children side by side),
// "horizontal" (children stacked) or empty for a box holding at most one
// child. Unit uses the textual form accepted by [layout.ParseUnit]; empty
// means auto.
type Node struct {
	Name     string     `toml:"name" yaml:"name" json:"name,omitempty"`
	Unit     string     `toml:"unit" yaml:"unit" json:"unit,omitempty"`
	Split    string     `toml:"split" yaml:"split" json:"split,omitempty"`
	Children []Node     `toml:"children" yaml:"children" json:"children,omitempty"`
	Outline  *Outline   `toml:"outline" yaml:"outline" json:"outline,omitempty"`
	Debug    bool       `toml:"debug" yaml:"debug" json:"debug,omitempty"`
	Label    string     `toml:"label" yaml:"label" json:"label,omitempty"`
	Table    [][]string `toml:"table" yaml:"table" json:"table,omitempty"`
}

// Outline is a rectangle annotation. Empty fields keep the defaults.
type Outline struct {
	Fill  string  `toml:"fill" yaml:"fill" json:"fill,omitempty"`
	Line  string  `toml:"line" yaml:"line" json:"line,omitempty"`
	Width float64 `toml:"width" yaml:"width" json:"width,omitempty"`
}

// Options converts the outline to rect options.
func (o Outline) Options() []layout.RectOption {
	var opts []layout.RectOption
	if o.Fill != "" {
		opts = append(opts, layout.WithFill(o.Fill))
	}
	if o.Line != "" {
		opts = append(opts, layout.WithLine(o.Line))
	}
	if o.Width != 0 {
		opts = append(opts, layout.WithLineWidth(o.Width))
	}
	return opts
}

// Size returns the canvas extent in EMU.
func (c Canvas) Size() (layout.Size, error) {
	size := layout.Widescreen
	if c.Preset != "" {
		p, ok := layout.Preset(c.Preset)
		if !ok {
			return layout.Size{}, errors.New(errors.ErrCodeInvalidDocument, "unknown canvas preset %q", c.Preset)
		}
		size = p
	}
	if c.Width != "" {
		w, err := layout.ParseLength(c.Width)
		if err != nil {
			return layout.Size{}, err
		}
		size.Width = w.EMU()
	}
	if c.Height != "" {
		h, err := layout.ParseLength(c.Height)
		if err != nil {
			return layout.Size{}, err
		}
		size.Height = h.EMU()
	}
	return size, errors.ValidateExtent(size.Width, size.Height)
}

// Count returns the number of nodes in the layout tree.
func (d *Document) Count() int { return d.Layout.count() }

func (n Node) count() int {
	c := 1
	for _, ch := range n.Children {
		c += ch.count()
	}
	return c
}
