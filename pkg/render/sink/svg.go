package sink

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/matzehuels/orgchart/pkg/fonts"
	"github.com/matzehuels/orgchart/pkg/layout"
	"github.com/matzehuels/orgchart/pkg/render"
	"github.com/matzehuels/orgchart/pkg/render/styles"
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	theme styles.Theme
}

// WithTheme sets the color theme (default [styles.Gradient]).
func WithTheme(t styles.Theme) SVGOption { return func(r *svgRenderer) { r.theme = t } }

// RenderSVG paints l into a standalone SVG document.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{theme: styles.Gradient()}
	for _, opt := range opts {
		opt(&r)
	}
	s := NewSVG(l.Width, l.Height)
	render.Paint(s, l, r.theme)
	return s.Bytes()
}

// SVG is a [render.Surface] that records drawing calls as SVG elements.
type SVG struct {
	w, h      float64
	bg        color.NRGBA
	body      bytes.Buffer
	gradients int
}

// NewSVG returns an empty surface of the given logical size.
func NewSVG(w, h float64) *SVG {
	return &SVG{w: w, h: h}
}

func (s *SVG) Size() (float64, float64) { return s.w, s.h }

func (s *SVG) Clear(bg color.NRGBA) {
	s.body.Reset()
	s.gradients = 0
	s.bg = bg
}

func (s *SVG) FillRect(r render.Rect, f render.Fill) {
	fill := paintAttr(f.Color)
	if g := f.Gradient; g != nil {
		s.gradients++
		id := fmt.Sprintf("g%d", s.gradients)
		fmt.Fprintf(&s.body, `  <defs><linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f">`,
			id, g.X1, g.Y1, g.X2, g.Y2)
		fmt.Fprintf(&s.body, `<stop offset="0" stop-color="%s" stop-opacity="%.3g"/><stop offset="1" stop-color="%s" stop-opacity="%.3g"/></linearGradient></defs>`+"\n",
			styles.CSS(g.From), styles.Opacity(g.From), styles.CSS(g.To), styles.Opacity(g.To))
		fill = fmt.Sprintf(`fill="url(#%s)"`, id)
	}
	fmt.Fprintf(&s.body, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"%s %s/>`+"\n",
		r.X, r.Y, r.W, r.H, radiusAttr(r.Radius), fill)
}

func (s *SVG) StrokeRect(r render.Rect, st render.Stroke) {
	fmt.Fprintf(&s.body, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"%s fill="none" %s/>`+"\n",
		r.X, r.Y, r.W, r.H, radiusAttr(r.Radius), strokeAttrs(st))
}

func (s *SVG) Curve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64, st render.Stroke) {
	fmt.Fprintf(&s.body, `  <path d="M %.1f %.1f C %.1f %.1f, %.1f %.1f, %.1f %.1f" fill="none" %s/>`+"\n",
		x1, y1, c1x, c1y, c2x, c2y, x2, y2, strokeAttrs(st))
}

func (s *SVG) Line(x1, y1, x2, y2 float64, st render.Stroke) {
	fmt.Fprintf(&s.body, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" %s/>`+"\n",
		x1, y1, x2, y2, strokeAttrs(st))
}

func (s *SVG) Text(txt string, x, y float64, f render.Font, a render.Align, c color.NRGBA) {
	anchor := "start"
	if a == render.AlignCenter {
		anchor = "middle"
	}
	weight := ""
	if f.Bold {
		weight = ` font-weight="bold"`
	}
	fmt.Fprintf(&s.body, `  <text x="%.1f" y="%.1f" font-size="%.0f"%s text-anchor="%s" %s>%s</text>`+"\n",
		x, y, f.Size, weight, anchor, paintAttr(c), styles.EscapeXML(txt))
}

// Bytes returns the complete document.
func (s *SVG) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" font-family="%s">`+"\n",
		s.w, s.h, s.w, s.h, fonts.FallbackFontFamily)
	if s.bg.A > 0 {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" %s/>`+"\n", paintAttr(s.bg))
	}
	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func paintAttr(c color.NRGBA) string {
	if c.A == 255 {
		return fmt.Sprintf(`fill="%s"`, styles.CSS(c))
	}
	return fmt.Sprintf(`fill="%s" fill-opacity="%.3g"`, styles.CSS(c), styles.Opacity(c))
}

func strokeAttrs(st render.Stroke) string {
	attrs := fmt.Sprintf(`stroke="%s" stroke-width="%.1f"`, styles.CSS(st.Color), st.Width)
	if st.Color.A != 255 {
		attrs += fmt.Sprintf(` stroke-opacity="%.3g"`, styles.Opacity(st.Color))
	}
	if len(st.Dash) > 0 {
		parts := make([]string, len(st.Dash))
		for i, d := range st.Dash {
			parts[i] = fmt.Sprintf("%.0f", d)
		}
		attrs += fmt.Sprintf(` stroke-dasharray="%s"`, strings.Join(parts, ","))
	}
	return attrs
}

func radiusAttr(r float64) string {
	if r <= 0 {
		return ""
	}
	return fmt.Sprintf(` rx="%.1f"`, r)
}
