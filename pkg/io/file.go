package io

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/orgchart/pkg/company"
)

// ErrUnsupportedFormat is returned for file extensions other than .json, .csv and .xlsx.
var ErrUnsupportedFormat = errors.New("unsupported record file format")

// Record file formats, as file extensions.
const (
	ExtJSON = "json"
	ExtCSV  = "csv"
	ExtXLSX = "xlsx"
)

// FormatOf returns the record format implied by path's extension.
func FormatOf(path string) (string, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case ExtJSON, ExtCSV, ExtXLSX:
		return ext, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ImportFile reads records from path, choosing the format by extension.
func ImportFile(path string) ([]company.Record, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case ExtCSV:
		return ImportCSV(path)
	case ExtXLSX:
		return ImportXLSX(path)
	default:
		return ImportJSON(path)
	}
}

// ExportFile writes records to path, choosing the format by extension.
func ExportFile(records []company.Record, path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	switch format {
	case ExtCSV:
		return ExportCSV(records, path)
	case ExtXLSX:
		return ExportXLSX(records, path)
	default:
		return ExportJSON(records, path)
	}
}

// createFile creates path and passes it to write. A failed Close is
// reported when write itself succeeded.
func createFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return write(f)
}
