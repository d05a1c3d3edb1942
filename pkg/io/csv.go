package io

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/orgchart/pkg/company"
)

// DefaultCSVName is the suggested file name for CSV exports.
const DefaultCSVName = "company_structure.csv"

// CSV column headers.
const (
	HeaderName   = "Company Name"
	HeaderParent = "Parent Company"
	HeaderEquity = "Equity"
)

// Header is the CSV header row.
var Header = []string{HeaderName, HeaderParent, HeaderEquity}

// ErrMissingColumn is returned by [ReadCSV] when a header column is absent.
var ErrMissingColumn = errors.New("missing column")

// FormatCSV returns the CSV text for records without a trailing newline.
func FormatCSV(records []company.Record) (string, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(Header); err != nil {
		return "", err
	}
	for _, r := range records {
		if err := cw.Write([]string{r.Name, r.Parent, r.Equity}); err != nil {
			return "", err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("write csv: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// WriteCSV writes the CSV text for records to w.
func WriteCSV(records []company.Record, w io.Writer) error {
	s, err := FormatCSV(records)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// ExportCSV writes records to a CSV file at path.
func ExportCSV(records []company.Record, path string) error {
	return createFile(path, func(w io.Writer) error {
		return WriteCSV(records, w)
	})
}

// ReadCSV parses records written by [WriteCSV]. Extra columns are ignored
// and blank lines skipped. Records get ids 1..n in file order.
func ReadCSV(r io.Reader) ([]company.Record, error) {
	cr := csv.NewReader(stripBOM(bufio.NewReader(r)))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx, err := columns(header)
	if err != nil {
		return nil, err
	}

	var records []company.Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if isBlank(row) {
			continue
		}
		records = append(records, company.Record{
			ID:     len(records) + 1,
			Name:   field(row, idx[HeaderName]),
			Parent: field(row, idx[HeaderParent]),
			Equity: field(row, idx[HeaderEquity]),
		}.Normalize())
	}
	return company.AssignLevels(records), nil
}

// ImportCSV reads records from a CSV file at path.
func ImportCSV(path string) ([]company.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f)
}

func columns(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(Header))
	for i, h := range header {
		for _, want := range Header {
			if strings.EqualFold(strings.TrimSpace(h), want) {
				idx[want] = i
			}
		}
	}
	for _, want := range Header {
		if _, ok := idx[want]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, want)
		}
	}
	return idx, nil
}

func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func isBlank(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func stripBOM(r *bufio.Reader) *bufio.Reader {
	b, err := r.Peek(3)
	if err == nil && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = r.Discard(3)
	}
	return r
}
