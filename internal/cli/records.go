package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/matzehuels/orgchart/pkg/company"
	pio "github.com/matzehuels/orgchart/pkg/io"
)

// sampleBase is the output base name used when rendering the sample data.
const sampleBase = "sample"

var errNoInput = errors.New("no records file given (pass a file or --sample)")

// loadRecords reads records from path, or returns the sample data when
// useSample is set. Exactly one of the two must be given.
func loadRecords(path string, useSample bool) ([]company.Record, error) {
	switch {
	case useSample && path != "":
		return nil, errors.New("pass either a records file or --sample, not both")
	case useSample:
		return company.Sample(), nil
	case path == "":
		return nil, errNoInput
	}
	records, err := pio.ImportFile(path)
	if err != nil {
		return nil, fmt.Errorf("load records %s: %w", path, err)
	}
	return records, nil
}

// inputArg returns the first positional argument or "".
func inputArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// stem returns path without directory and extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// writeRecords exports records to path, creating its directory.
func writeRecords(records []company.Record, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := pio.ExportFile(records, path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
