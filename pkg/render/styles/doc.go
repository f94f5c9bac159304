// Package styles provides visual styles for the SVG surface.
//
// A [Style] turns positioned annotations ([Shape], [Label], [Table]) into SVG
// fragments. Two styles are available:
//
//   - [Simple]: plain outlines on white, the default
//   - [Blueprint]: dashed light outlines on a dark grid
//
// Styles never measure text. [FontSize] estimates a size from the box and the
// character count, and [TruncateLabel] shortens text that would overflow.
package styles
