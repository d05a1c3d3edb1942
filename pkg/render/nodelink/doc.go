// Package nodelink renders org charts as Graphviz node-link diagrams.
//
// # Overview
//
// The built-in chart layout spaces each level evenly and does not center
// subtrees. For large or unbalanced structures Graphviz's hierarchical
// "dot" engine produces a tidier drawing, so this package offers it as an
// alternative engine.
//
// # Usage
//
// Convert a forest to DOT, then render:
//
//	dot := nodelink.ToDOT(forest, nodelink.Options{Theme: styles.Gradient()})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)
//
// Only nodes reachable from a root are emitted; orphans stay out of the
// drawing just as they do in the built-in layouts.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
