package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/pkg/pipeline"
	"github.com/matzehuels/orgchart/pkg/render/styles"
)

// renderOpts holds the command-line flags for the render command that are
// not pipeline options.
type renderOpts struct {
	output    string // output file (single format) or base path
	formats   string // comma-separated output formats
	useSample bool   // render the sample data instead of a file
	noCache   bool   // bypass the local render cache
}

// renderCommand creates the render command for drawing records.
func (c *CLI) renderCommand() *cobra.Command {
	var ro renderOpts
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [records.json|csv|xlsx]",
		Short: "Render company records as a chart or tree",
		Long: `Render company records as a leveled chart or an indented tree.

Records are read from a JSON, CSV or XLSX file (see 'extract' and 'export').
Companies whose parent is not in the file are left out of the drawing and
reported as warnings.

Output formats: svg (default), png, pdf, json (layout), dot (Graphviz).
PDF output needs rsvg-convert on the PATH.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(ro.formats)
			c.setCLIDefaults(&opts)
			if err := opts.ValidateForRender(); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), inputArg(args), opts, ro)
		},
	}

	cmd.Flags().StringVarP(&ro.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&ro.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot (comma-separated)")
	cmd.Flags().BoolVar(&ro.useSample, "sample", false, "render the sample holding structure")
	cmd.Flags().BoolVar(&ro.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when cached")

	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", "", "layout mode: chart (default), tree")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "frame width (default from config, 1200)")
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "color theme: "+strings.Join(styles.Names(), ", "))
	cmd.Flags().Float64Var(&opts.PixelRatio, "ratio", 0, "device pixel ratio for PNG output (default from config, 2)")
	cmd.Flags().StringVar(&opts.Engine, "engine", "", "chart engine: native (default), graphviz")

	return cmd
}

// runRender loads the records and renders them in every requested format.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, ro renderOpts) error {
	records, err := loadRecords(input, ro.useSample)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ro.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := spin(ctx, fmt.Sprintf("Rendering %d companies...", len(records)), func(ctx context.Context) (*pipeline.Result, error) {
		return runner.Execute(ctx, records, opts)
	})
	if err != nil {
		printError("Render failed")
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	prog.done("rendered", "companies", result.Stats.Nodes, "mode", opts.Mode)

	base := ro.output
	if base == "" {
		base = sampleBase
		if input != "" {
			base = stem(input)
		}
		base = c.Config.outputPath(base)
	}

	paths, err := writeArtifacts(result.Artifacts, opts.Formats, base)
	if err != nil {
		return err
	}

	printSuccess("Rendered %s", opts.Mode)
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.Company, result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)
	for _, o := range result.Forest.Orphans {
		printWarning("%s left out: parent %q not found", o.Name, o.Parent)
	}
	return nil
}

// writeArtifacts writes one file per format, named base plus the format as
// extension. A format extension already on base is stripped first, so
// "-o chart.svg" writes chart.svg.
func writeArtifacts(artifacts map[string][]byte, formats []string, base string) ([]string, error) {
	if ext := filepath.Ext(base); pipeline.ValidateFormat(strings.TrimPrefix(ext, ".")) == nil {
		base = strings.TrimSuffix(base, ext)
	}

	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		data, ok := artifacts[f]
		if !ok {
			return paths, fmt.Errorf("no %s output produced", f)
		}
		path := base + "." + f
		if err := ensureDir(path); err != nil {
			return paths, err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
