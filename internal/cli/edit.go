package cli

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/pkg/extract"
	"github.com/matzehuels/orgchart/pkg/pipeline"
	"github.com/matzehuels/orgchart/pkg/render/styles"
	"github.com/matzehuels/orgchart/pkg/store"
)

// editCommand creates the edit command, which opens the interactive editor.
func (c *CLI) editCommand() *cobra.Command {
	var (
		endpoint  string
		save      string
		useSample bool
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "edit [records.json|csv|xlsx]",
		Short: "Open the interactive editor",
		Long: `Open the interactive editor.

The editor has four views: upload (send a document to the extraction
server), chart, tree and table (add, edit and delete companies). Charts are
redrawn shortly after every change. Press w in the chart or tree view to
write the drawing to files, x to export CSV.

Records are kept in memory only; pass --save to write them on exit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.New()
			if input := inputArg(args); input != "" || useSample {
				records, err := loadRecords(input, useSample)
				if err != nil {
					return err
				}
				if err := st.Load(records); err != nil {
					return err
				}
			}

			if endpoint == "" {
				endpoint = c.Config.Endpoint
			}
			client, err := extract.NewClient(endpoint)
			if err != nil {
				c.Logger.Warn("uploads disabled", "endpoint", endpoint, "err", err)
			}

			cache, err := newCache(noCache)
			if err != nil {
				return err
			}
			// The terminal belongs to the editor; pipeline warnings are shown in the views.
			runner := pipeline.NewRunner(cache, nil, log.New(io.Discard))
			defer runner.Close()

			opts := pipeline.Options{Formats: []string{pipeline.FormatSVG, pipeline.FormatPNG}}
			c.setCLIDefaults(&opts)
			opts.Logger = runner.Logger
			theme, err := styles.ByName(opts.Theme)
			if err != nil {
				return err
			}

			edits := 0
			unsubscribe := st.Subscribe(func(ev store.Event) {
				if ev.Kind == store.EventRecords {
					edits++
				}
			})
			defer unsubscribe()

			ctx := cmd.Context()
			m := newEditor(ctx, st, editorDeps{
				client: client,
				runner: runner,
				opts:   opts,
				theme:  theme,
				outDir: c.Config.OutputDir,
			})
			if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
				return err
			}

			if save != "" {
				records := st.Records()
				if err := writeRecords(records, save); err != nil {
					return err
				}
				printSuccess("Saved %d companies", len(records))
				printFile(save)
			} else if edits > 0 {
				printWarning("%d change(s) discarded; pass --save to keep them", edits)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&endpoint, "endpoint", "e", "", "extraction server URL (default from config)")
	cmd.Flags().StringVar(&save, "save", "", "write the records to this file on exit (.json, .csv or .xlsx)")
	cmd.Flags().BoolVar(&useSample, "sample", false, "start with the sample holding structure")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")

	return cmd
}
