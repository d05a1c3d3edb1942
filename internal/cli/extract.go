package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/extract"
)

// extractCommand creates the extract command, which uploads a document to
// the extraction server and saves the returned records.
func (c *CLI) extractCommand() *cobra.Command {
	var (
		endpoint string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "extract [document.pdf|png|jpg|jpeg]",
		Short: "Extract company records from a document",
		Long: `Extract company records from an organizational-chart document.

The document is posted to the extraction server ('orgchart serve' or any
server with the same /upload endpoint). The records are saved as JSON by
default; use a .csv or .xlsx output name to pick another format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if endpoint == "" {
				endpoint = c.Config.Endpoint
			}
			return c.runExtract(cmd.Context(), args[0], endpoint, output)
		},
	}

	cmd.Flags().StringVarP(&endpoint, "endpoint", "e", "", "extraction server URL (default from config, "+extract.DefaultEndpoint+")")
	cmd.Flags().StringVarP(&output, "output", "o", "", "records file (default: <document>.json)")

	return cmd
}

func (c *CLI) runExtract(ctx context.Context, path, endpoint, output string) error {
	client, err := extract.NewClient(endpoint, extract.WithLogger(c.Logger))
	if err != nil {
		return err
	}

	res, err := spin(ctx, fmt.Sprintf("Processing %s...", filepath.Base(path)), func(ctx context.Context) (*extract.Result, error) {
		return uploadFile(ctx, client, path)
	})
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}

	if output == "" {
		output = c.Config.outputPath(stem(path) + ".json")
	}
	if err := writeRecords(res.Companies, output); err != nil {
		return err
	}

	printSuccess("Extracted %d companies", len(res.Companies))
	printFile(output)
	printNewline()
	printRecords(os.Stdout, res.Companies)
	if res.ExtractedText != "" {
		printNewline()
		fmt.Println(StyleTitle.Render("Extracted text"))
		printDetail("%s", res.ExtractedText)
	}
	printNewline()
	printNextStep("Render", appName+" render "+output)
	printNextStep("Edit", appName+" edit "+output)
	return nil
}

// uploadFile checks the document type and posts the file to the server.
// The type check happens here, at the point the user picks the file; the
// client itself sends whatever it is given.
func uploadFile(ctx context.Context, client *extract.Client, path string) (*extract.Result, error) {
	if err := errors.ValidateUploadExtension(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "cannot open %s", path)
	}
	defer f.Close()
	return client.Upload(ctx, filepath.Base(path), f)
}
