// Package document loads declarative slide layouts.
//
// A document names a canvas, a tree of nodes and the annotations to draw on
// them. The same structure can be written in TOML, YAML or JSON:
//
//	title = "Quarterly review"
//	style = "simple"
//
//	[canvas]
//	preset = "widescreen"
//
//	[layout]
//	split = "vertical"
//
//	[[layout.children]]
//	name  = "nav"
//	unit  = "3in"
//	debug = true
//
//	[[layout.children]]
//	name  = "body"
//	split = "horizontal"
//
//	[[layout.children.children]]
//	unit  = "20%"
//	label = "Headline"
//
//	[[layout.children.children]]
//	table = [["Metric", "Value"], ["Revenue", "12M"]]
//
// [Decode] parses a document, [Document.Build] turns it into an unresolved
// [layout.Root], and after [layout.Root.Resolve] succeeds [Document.Annotate]
// draws its annotations on the root's surface.
//
// Units use the textual form of [layout.ParseUnit]. Layout errors keep their
// codes when wrapped with the failing node's path.
package document
