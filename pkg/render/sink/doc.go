// Package sink turns a computed [layout.Layout] into output bytes.
//
// # Formats
//
//   - SVG ([RenderSVG]): vector output, one <g> per company
//   - PNG ([RenderPNG]): raster output drawn with fogleman/gg, scaled by a
//     device pixel ratio
//   - PDF ([RenderPDF]): the SVG converted by rsvg-convert
//   - JSON ([RenderJSON]): the layout itself, for external tools
//
// SVG and PNG are both [render.Surface] implementations; [render.Paint]
// does the drawing and the sink only serializes.
//
//	svg := sink.RenderSVG(l, sink.WithTheme(styles.Flat()))
//	png, err := sink.RenderPNG(l, sink.WithPixelRatio(2))
//
// # Pixel Ratio
//
// The PNG canvas is allocated at width*ratio by height*ratio pixels and
// scaled once, so layout coordinates stay logical and labels stay sharp
// on high-density displays.
package sink
