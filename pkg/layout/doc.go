// Package layout resolves declarative slide layouts into concrete rectangles.
//
// # Overview
//
// A layout is a tree of areas. Rows place their children side by side,
// columns stack them, and boxes forward their whole rectangle to at most one
// child. Every child carries a [Unit] describing its size along its parent's
// split axis. Resolving the tree walks it top-down and assigns each area a
// [Rect] in EMU (English Metric Units, 914400 per inch), the integer length
// unit used by presentation formats.
//
// # Units
//
// Three kinds of units exist:
//
//   - [Length]: an absolute size such as [Inch](2) or [Centimeter](1.5)
//   - [Ratio]: a fraction in [0, 1] of the parent's extent
//   - [Weight]: a share of whatever space is left after all lengths and
//     ratios were subtracted
//
// [ResolveSpan] implements the two-pass resolution shared by every split.
// Fixed sizes that exceed their container fail with LAYOUT_OVERFLOW rather
// than being clamped. Weighted shares are truncated, so a few EMU may remain
// unallocated at the end of a span.
//
// [ParseUnit] reads the textual form used in layout documents ("2in", "30%",
// "1fr", "auto").
//
// # Building and Resolving
//
// Create a [Root] for a canvas, split it, then call [Root.Resolve]:
//
//	root, err := layout.NewRoot(layout.Widescreen.Width, layout.Widescreen.Height, surface)
//	cols, err := root.SplitVertical(layout.Inch(3), layout.Auto())
//	rows, err := cols[1].SplitHorizontal(layout.MustRatio(0.2), layout.Auto())
//	err = root.Resolve()
//	body, err := rows[1].Rect()
//
// Areas are addressed by path, the child indices leading from the top of the
// tree: root.At(1, 0) is rows[0] above. [Area.Walk] iterates a subtree in
// depth-first pre-order.
//
// # Lifecycle
//
// Each area is resolved exactly once. Querying a rect before resolution,
// resolving twice or mutating a resolved tree fails with LAYOUT_STATE. If
// resolution fails part way, areas laid out before the failure keep their
// rects; the tree must be discarded.
//
// # Annotation
//
// A [Root] forwards annotation calls to its [Surface]: [Root.DrawRect],
// [Root.Label] and [Root.Table]. Areas expose the same calls keyed by their
// own rect through [Area.Outline], [Area.Debug] and [Area.AddTable].
//
// # Concurrency
//
// Trees are not safe for concurrent use. Build a separate tree and surface
// per goroutine.
package layout
