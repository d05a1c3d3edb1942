package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/orgchart/pkg/hierarchy"
	"github.com/matzehuels/orgchart/pkg/render"
	"github.com/matzehuels/orgchart/pkg/render/styles"
)

// Options configures node-link diagram generation.
type Options struct {
	// Theme supplies the per-level fill colors (default [styles.Gradient]).
	Theme styles.Theme
	// Detailed adds the record id to each label.
	Detailed bool
}

// ToDOT converts the reachable part of a forest to Graphviz DOT.
// Nodes are identified by company name; labels carry the equity.
func ToDOT(f *hierarchy.Forest, opts Options) string {
	theme := opts.Theme
	if len(theme.Chart) == 0 {
		theme = styles.Gradient()
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontname=\"Helvetica\", fontsize=13, margin=\"0.2,0.1\"];\n")
	fmt.Fprintf(&buf, "  edge [color=%q, arrowhead=none, penwidth=2];\n", styles.CSS(theme.Connection))
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	var edges [][2]string
	f.Walk(func(n *hierarchy.Node, depth int) bool {
		lvl := theme.ChartLevel(depth)
		attrs := fmt.Sprintf("label=%q, fillcolor=%q, color=%q, fontcolor=%q",
			label(n, opts.Detailed), fill(lvl), styles.CSS(lvl.Border), styles.CSS(lvl.Text))
		fmt.Fprintf(&buf, "  %q [%s];\n", n.Name, attrs)
		for _, c := range n.Children {
			edges = append(edges, [2]string{n.Name, c.Name})
		}
		return true
	})

	buf.WriteString("\n")
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e[0], e[1])
	}
	buf.WriteString("}\n")
	return buf.String()
}

func label(n *hierarchy.Node, detailed bool) string {
	l := n.Name + "\nEquity: " + n.Equity
	if detailed {
		l += fmt.Sprintf("\nid: %d", n.ID)
	}
	return l
}

// fill returns a Graphviz gradient fill ("a:b") or a single color.
func fill(l styles.Level) string {
	if !l.Gradient() {
		return styles.CSS(l.From)
	}
	return styles.CSS(l.From) + ":" + styles.CSS(l.To)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based <svg> header with a
// plain viewBox so the drawing scales like the built-in SVG output.
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

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion at the given scale.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
