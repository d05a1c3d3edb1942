package io

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/orgchart/pkg/company"
)

// SheetName is the worksheet written by [WriteXLSX].
const SheetName = "Companies"

const headerLevel = "Level"

// WriteXLSX writes records as an Excel workbook with a bold header row.
func WriteXLSX(records []company.Record, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	header := []any{HeaderName, HeaderParent, HeaderEquity, headerLevel}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "D1", bold); err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for i, r := range company.AssignLevels(records) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{r.Name, r.Parent, r.Equity, r.Level}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	_ = f.SetColWidth(SheetName, "A", "B", 36)
	_ = f.SetColWidth(SheetName, "C", "D", 10)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

// ReadXLSX reads the first worksheet of a workbook with the CSV column headers.
func ReadXLSX(r io.Reader) ([]company.Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty sheet", ErrMissingColumn)
	}
	idx, err := columns(rows[0])
	if err != nil {
		return nil, err
	}

	var records []company.Record
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		records = append(records, company.Record{
			ID:     len(records) + 1,
			Name:   field(row, idx[HeaderName]),
			Parent: field(row, idx[HeaderParent]),
			Equity: xlsxEquity(field(row, idx[HeaderEquity])),
		}.Normalize())
	}
	return company.AssignLevels(records), nil
}

// xlsxEquity restores the percent sign when a spreadsheet tool stored the
// equity as a bare number.
func xlsxEquity(s string) string {
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return s + "%"
	}
	return s
}

// ExportXLSX writes records to an .xlsx file at path.
func ExportXLSX(records []company.Record, path string) error {
	return createFile(path, func(w io.Writer) error {
		return WriteXLSX(records, w)
	})
}

// ImportXLSX reads records from an .xlsx file at path.
func ImportXLSX(path string) ([]company.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadXLSX(f)
}
