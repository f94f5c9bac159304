package treeview

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/slidegrid/pkg/errors"
	"github.com/matzehuels/slidegrid/pkg/layout"
)

// Options configures tree diagram rendering.
type Options struct {
	// Detailed adds each resolved node's rectangle, in inches, to its label.
	Detailed bool
	// LeftToRight lays the tree out horizontally instead of top to bottom.
	LeftToRight bool
}

var kindFill = map[layout.Kind]string{
	layout.KindBox:    "white",
	layout.KindRow:    "lightblue",
	layout.KindColumn: "lightyellow",
}

// ToDOT converts the subtree rooted at a to Graphviz DOT format. Each node is
// identified by its path and labelled with its kind, unit and name.
func ToDOT(a *layout.Area, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	if opts.LeftToRight {
		buf.WriteString("  rankdir=LR;\n")
	} else {
		buf.WriteString("  rankdir=TB;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.25;\n")
	buf.WriteString("\n")

	for n := range a.Walk() {
		attrs := []string{
			fmt.Sprintf("label=%q", fmtLabel(n, opts.Detailed)),
			fmt.Sprintf("fillcolor=%q", kindFill[n.Kind()]),
		}
		if !n.Resolved() {
			attrs = append(attrs, `style="rounded,filled,dashed"`)
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", NodeID(n.Path()), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for n := range a.Walk() {
		for _, c := range n.Children() {
			fmt.Fprintf(&buf, "  %q -> %q;\n", NodeID(n.Path()), NodeID(c.Path()))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// NodeID returns the DOT identifier for the node at path, such as "/1/0".
// The top node is "/".
func NodeID(path []int) string {
	if len(path) == 0 {
		return "/"
	}
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = strconv.Itoa(p)
	}
	return "/" + strings.Join(parts, "/")
}

func fmtLabel(n *layout.Area, detailed bool) string {
	lines := []string{fmt.Sprintf("%s %s", NodeID(n.Path()), n.Kind())}
	if name := n.Name(); name != "" {
		lines[0] += " " + name
	}
	lines = append(lines, n.Unit().String())
	if detailed {
		if r, err := n.Rect(); err == nil {
			x, y, w, h := r.Inches()
			lines = append(lines, fmt.Sprintf("%.2f,%.2f %.2fx%.2f in", x, y, w, h))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render DOT")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root <svg> tag so that width and height match
// the viewBox, which Graphviz expresses in points.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
