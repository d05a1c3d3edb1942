package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/orgchart/pkg/company"
	"github.com/matzehuels/orgchart/pkg/hierarchy"
	"github.com/matzehuels/orgchart/pkg/layout"
	"github.com/matzehuels/orgchart/pkg/observability"
	"github.com/matzehuels/orgchart/pkg/render/nodelink"
	"github.com/matzehuels/orgchart/pkg/render/sink"
	"github.com/matzehuels/orgchart/pkg/render/styles"
)

// Input bundles what the render stage draws from.
type Input struct {
	Records []company.Record
	Forest  *hierarchy.Forest
	Layout  layout.Layout
}

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, in Input, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	theme, _ := styles.ByName(opts.Theme)

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, err := render(ctx, in, theme, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

func render(ctx context.Context, in Input, theme styles.Theme, opts Options) (map[string][]byte, error) {
	var dot string
	if in.Forest != nil {
		dot = nodelink.ToDOT(in.Forest, nodelink.Options{Theme: theme})
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch {
		case format == FormatDOT:
			if in.Forest == nil {
				return nil, fmt.Errorf("dot output needs the record hierarchy")
			}
			data = []byte(dot)
		case format == FormatJSON:
			data, err = sink.RenderJSON(in.Layout,
				sink.WithJSONTheme(theme.Name),
				sink.WithJSONStats(company.ComputeStats(in.Records)))
		case opts.IsGraphviz():
			if in.Forest == nil {
				return nil, fmt.Errorf("graphviz engine needs the record hierarchy")
			}
			data, err = renderGraphviz(ctx, dot, format, opts.PixelRatio)
		default:
			data, err = renderNative(ctx, in.Layout, format, theme, opts.PixelRatio)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderNative(ctx context.Context, l layout.Layout, format string, theme styles.Theme, ratio float64) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(l, sink.WithTheme(theme)), nil
	case FormatPNG:
		return sink.RenderPNG(l, sink.WithPNGTheme(theme), sink.WithPixelRatio(ratio))
	case FormatPDF:
		return sink.RenderPDF(ctx, l, sink.WithPDFSVGOptions(sink.WithTheme(theme)))
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func renderGraphviz(ctx context.Context, dot, format string, ratio float64) ([]byte, error) {
	switch format {
	case FormatSVG:
		return nodelink.RenderSVG(ctx, dot)
	case FormatPNG:
		return nodelink.RenderPNG(ctx, dot, ratio)
	case FormatPDF:
		return nodelink.RenderPDF(ctx, dot)
	default:
		return nil, fmt.Errorf("unsupported graphviz format: %s", format)
	}
}
