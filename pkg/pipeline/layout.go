package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/orgchart/pkg/hierarchy"
	"github.com/matzehuels/orgchart/pkg/layout"
	"github.com/matzehuels/orgchart/pkg/observability"
)

// GenerateLayout positions a forest in the requested mode.
func GenerateLayout(ctx context.Context, f *hierarchy.Forest, opts Options) (layout.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Layout{}, err
	}
	mode, _ := layout.ParseMode(opts.Mode)

	start := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, opts.Mode, f.Len())
	l, err := layout.Build(mode, f, layout.WithWidth(opts.Width))
	observability.Pipeline().OnLayoutComplete(ctx, opts.Mode, time.Since(start), err)
	return l, err
}
