package sink

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/matzehuels/orgchart/pkg/fonts"
	"github.com/matzehuels/orgchart/pkg/layout"
	"github.com/matzehuels/orgchart/pkg/render"
	"github.com/matzehuels/orgchart/pkg/render/styles"
)

// PNGOption configures [RenderPNG].
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	theme styles.Theme
	ratio float64
}

// WithPNGTheme sets the color theme (default [styles.Gradient]).
func WithPNGTheme(t styles.Theme) PNGOption { return func(r *pngRenderer) { r.theme = t } }

// WithPixelRatio sets the device pixel ratio (default 2.0).
func WithPixelRatio(ratio float64) PNGOption {
	return func(r *pngRenderer) {
		if ratio > 0 {
			r.ratio = ratio
		}
	}
}

// RenderPNG paints l onto a raster canvas and encodes it as PNG.
func RenderPNG(l layout.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{theme: styles.Gradient(), ratio: 2.0}
	for _, opt := range opts {
		opt(&r)
	}

	c := NewCanvas(l.Width, l.Height, r.ratio)
	render.Paint(c, l, r.theme)
	if err := c.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Canvas is a [render.Surface] backed by a gg raster context. The backing
// image is ratio times the logical size in each dimension.
type Canvas struct {
	*gg.Context
	w, h  float64
	ratio float64
	faces fonts.Faces
	err   error
}

// NewCanvas allocates a canvas for a logical size and pixel ratio.
func NewCanvas(w, h, ratio float64) *Canvas {
	dc := gg.NewContext(max(1, int(w*ratio+0.5)), max(1, int(h*ratio+0.5)))
	dc.Scale(ratio, ratio)
	return &Canvas{Context: dc, w: w, h: h, ratio: ratio}
}

// Err returns the first font error encountered while drawing text.
func (c *Canvas) Err() error { return c.err }

// Ratio returns the device pixel ratio.
func (c *Canvas) Ratio() float64 { return c.ratio }

func (c *Canvas) Size() (float64, float64) { return c.w, c.h }

func (c *Canvas) Clear(bg color.NRGBA) {
	c.Push()
	c.Identity()
	c.SetColor(bg)
	c.Context.Clear()
	c.Pop()
}

func (c *Canvas) FillRect(r render.Rect, f render.Fill) {
	c.rect(r)
	if g := f.Gradient; g != nil {
		// gg evaluates gradients in device pixels.
		grad := gg.NewLinearGradient(g.X1*c.ratio, g.Y1*c.ratio, g.X2*c.ratio, g.Y2*c.ratio)
		grad.AddColorStop(0, g.From)
		grad.AddColorStop(1, g.To)
		c.SetFillStyle(grad)
	} else {
		c.SetColor(f.Color)
	}
	c.Fill()
}

func (c *Canvas) StrokeRect(r render.Rect, s render.Stroke) {
	c.rect(r)
	c.stroke(s)
}

func (c *Canvas) Curve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64, s render.Stroke) {
	c.NewSubPath()
	c.MoveTo(x1, y1)
	c.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
	c.stroke(s)
}

func (c *Canvas) Line(x1, y1, x2, y2 float64, s render.Stroke) {
	c.DrawLine(x1, y1, x2, y2)
	c.stroke(s)
}

// Text rasterizes glyphs at device resolution rather than scaling a
// logical-size face, which gg would resample.
func (c *Canvas) Text(s string, x, y float64, f render.Font, a render.Align, col color.NRGBA) {
	face, err := c.faces.Get(f.Size*c.ratio, f.Bold)
	if err != nil {
		if c.err == nil {
			c.err = err
		}
		return
	}
	ax := 0.0
	if a == render.AlignCenter {
		ax = 0.5
	}
	c.Push()
	c.Identity()
	c.SetFontFace(face)
	c.SetColor(col)
	c.DrawStringAnchored(s, x*c.ratio, y*c.ratio, ax, 0)
	c.Pop()
}

func (c *Canvas) rect(r render.Rect) {
	if r.Radius > 0 {
		c.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, r.Radius)
	} else {
		c.DrawRectangle(r.X, r.Y, r.W, r.H)
	}
}

func (c *Canvas) stroke(s render.Stroke) {
	// Line widths and dashes apply after the transform, in device pixels.
	dash := make([]float64, len(s.Dash))
	for i, d := range s.Dash {
		dash[i] = d * c.ratio
	}
	c.SetColor(s.Color)
	c.SetLineWidth(s.Width * c.ratio)
	c.SetDash(dash...)
	c.Stroke()
	c.SetDash()
}
