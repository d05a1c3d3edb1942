package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/pkg/company"
	pio "github.com/matzehuels/orgchart/pkg/io"
)

// exportCommand creates the export command, which converts a records file
// to JSON, CSV or XLSX.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		output    string
		useSample bool
		stdout    bool
	)

	cmd := &cobra.Command{
		Use:   "export [records.json|csv|xlsx]",
		Short: "Export company records to CSV, JSON or XLSX",
		Long: `Export company records to CSV, JSON or XLSX.

The format follows the output extension. The default output is
` + pio.DefaultCSVName + ` with the header "Company Name,Parent Company,Equity".
Use --stdout to print the CSV instead of writing a file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadRecords(inputArg(args), useSample)
			if err != nil {
				return err
			}
			if stdout {
				return pio.WriteCSV(records, cmd.OutOrStdout())
			}
			if output == "" {
				output = c.Config.outputPath(pio.DefaultCSVName)
			}
			return c.runExport(records, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: "+pio.DefaultCSVName+")")
	cmd.Flags().BoolVar(&useSample, "sample", false, "export the sample holding structure")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "write CSV to standard output")

	return cmd
}

func (c *CLI) runExport(records []company.Record, output string) error {
	if _, err := pio.FormatOf(output); err != nil {
		return err
	}
	if err := writeRecords(records, output); err != nil {
		return err
	}
	info, err := os.Stat(output)
	if err != nil {
		return err
	}
	c.Logger.Debug("exported", "path", output, "bytes", info.Size())
	printSuccess("Exported %d companies", len(records))
	printFile(output)
	return nil
}

// sampleCommand creates the sample command, which writes the built-in
// sample record set.
func (c *CLI) sampleCommand() *cobra.Command {
	var (
		output   string
		fallback bool
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write the sample holding structure",
		Long: `Write the sample holding structure (10 companies, 3 levels).

With --fallback the set includes the Carbon Market Company, matching what
the extraction server returns when a document has no readable text.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records := company.Sample()
			if fallback {
				records = company.FallbackSample()
			}
			if output == "" {
				output = c.Config.outputPath(sampleBase + ".json")
			}
			if err := writeRecords(records, output); err != nil {
				return err
			}
			printSuccess("Wrote %d sample companies", len(records))
			printFile(output)
			printNewline()
			printNextStep("Render", fmt.Sprintf("%s render %s", appName, output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: sample.json)")
	cmd.Flags().BoolVar(&fallback, "fallback", false, "include the server fallback record")

	return cmd
}
