// Package treeview draws the structure of a layout tree as a Graphviz diagram.
//
// Where the SVG sink shows where areas end up on the slide, a tree view shows
// how they nest: one node per area, labelled with its path, kind and unit,
// with rows and columns tinted so splits are easy to spot.
//
//	dot := treeview.ToDOT(root.Area, treeview.Options{Detailed: true})
//	svg, err := treeview.RenderSVG(ctx, dot)
//
// Unresolved areas are drawn with a dashed outline.
package treeview
