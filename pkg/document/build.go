package document

import (
	"fmt"
	"strings"

	"github.com/matzehuels/slidegrid/pkg/errors"
	"github.com/matzehuels/slidegrid/pkg/layout"
)

// Build creates a root for the document's canvas and builds the layout tree
// under it. The returned tree is not resolved yet. The unit of the top layout
// node is ignored since the root always covers the whole canvas.
func (d *Document) Build(surface layout.Surface, opts ...layout.RootOption) (*layout.Root, error) {
	size, err := d.Canvas.Size()
	if err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}
	root, err := layout.NewRoot(size.Width, size.Height, surface, opts...)
	if err != nil {
		return nil, err
	}
	if err := build(root.Area, d.Layout); err != nil {
		return nil, err
	}
	return root, nil
}

func build(a *layout.Area, n Node) error {
	if n.Name != "" {
		if err := a.SetName(n.Name); err != nil {
			return err
		}
	}

	split, err := normalizeSplit(n.Split)
	if err != nil {
		return fmt.Errorf("node %v: %w", a.Path(), err)
	}

	units := make([]layout.Unit, len(n.Children))
	for i, c := range n.Children {
		if c.Unit == "" {
			continue
		}
		u, err := layout.ParseUnit(c.Unit)
		if err != nil {
			return fmt.Errorf("node %v child %d: %w", a.Path(), i, err)
		}
		units[i] = u
	}

	var children []*layout.Area
	switch split {
	case "vertical":
		children, err = a.SplitVertical(units...)
	case "horizontal":
		children, err = a.SplitHorizontal(units...)
	default:
		children, err = addBoxes(a, units)
	}
	if err != nil {
		return fmt.Errorf("node %v: %w", a.Path(), err)
	}

	for i, c := range n.Children {
		if err := build(children[i], c); err != nil {
			return err
		}
	}
	return nil
}

func addBoxes(a *layout.Area, units []layout.Unit) ([]*layout.Area, error) {
	children := make([]*layout.Area, 0, len(units))
	for _, u := range units {
		c, err := a.AddBox(u)
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	return children, nil
}

func normalizeSplit(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "box", "none":
		return "", nil
	case "vertical", "v", "row":
		return "vertical", nil
	case "horizontal", "h", "column":
		return "horizontal", nil
	}
	return "", errors.New(errors.ErrCodeInvalidDocument,
		"split must be 'vertical' or 'horizontal', not %q", s)
}

// Annotate draws the document's annotations on a resolved root. For each node
// the outline comes first, then the debug frame, the label and the table. When
// debugAll is set every node gets a debug frame labelled with its name.
func (d *Document) Annotate(root *layout.Root, debugAll bool) error {
	return annotate(root, root.Area, d.Layout, debugAll || d.Debug)
}

func annotate(root *layout.Root, a *layout.Area, n Node, debugAll bool) error {
	if n.Outline != nil {
		if err := a.Outline(n.Outline.Options()...); err != nil {
			return fmt.Errorf("node %v outline: %w", a.Path(), err)
		}
	}
	if n.Debug || debugAll {
		if err := a.Debug(n.Name); err != nil {
			return fmt.Errorf("node %v debug: %w", a.Path(), err)
		}
	}
	if n.Label != "" {
		rect, err := a.Rect()
		if err != nil {
			return err
		}
		if err := root.Label(rect, n.Label); err != nil {
			return fmt.Errorf("node %v label: %w", a.Path(), err)
		}
	}
	if len(n.Table) > 0 {
		if err := a.AddTable(n.Table); err != nil {
			return fmt.Errorf("node %v table: %w", a.Path(), err)
		}
	}

	for i, c := range n.Children {
		child, err := a.Child(i)
		if err != nil {
			return err
		}
		if err := annotate(root, child, c, debugAll); err != nil {
			return err
		}
	}
	return nil
}
