package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/pkg/hierarchy"
)

// tableCommand creates the table command, which prints records and the
// statistics panel.
func (c *CLI) tableCommand() *cobra.Command {
	var useSample bool

	cmd := &cobra.Command{
		Use:   "table [records.json|csv|xlsx]",
		Short: "Print company records as a table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTable(cmd.Context(), inputArg(args), useSample)
		},
	}

	cmd.Flags().BoolVar(&useSample, "sample", false, "print the sample holding structure")

	return cmd
}

func (c *CLI) runTable(_ context.Context, input string, useSample bool) error {
	records, err := loadRecords(input, useSample)
	if err != nil {
		return err
	}
	printRecords(os.Stdout, records)

	f, err := hierarchy.Build(records)
	if err != nil {
		return err
	}
	for _, o := range f.Orphans {
		printWarning("%s: parent %q not found", o.Name, o.Parent)
	}
	if len(f.Detached) > 0 {
		printWarning("%d companies are not reachable from a root", len(f.Detached))
	}
	c.Logger.Debug("table", "records", len(records), "roots", len(f.Roots), "depth", f.Depth())
	fmt.Println()
	return nil
}
