// Package render paints org chart layouts onto drawing surfaces.
//
// # Overview
//
// Rendering is split in three parts:
//
//   - [Surface]: a minimal drawing interface (rectangles, curves, lines, text)
//   - [Paint]: walks a [layout.Layout] and issues surface calls using a
//     [styles.Theme]
//   - sinks (in [sink]): Surface implementations that produce SVG, PNG and
//     PDF bytes
//
// [Paint] keeps no state between calls and always clears the surface first,
// so repainting the same layout is idempotent.
//
//	l := layout.Chart(forest)
//	svg := sink.RenderSVG(l, sink.WithTheme(styles.Gradient()))
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert SVG to other formats using the external
// rsvg-convert tool (from librsvg). The PDF sink and the Graphviz engine in
// [nodelink] use them.
//
// [sink]: github.com/matzehuels/orgchart/pkg/render/sink
// [nodelink]: github.com/matzehuels/orgchart/pkg/render/nodelink
package render
