package io

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/orgchart/pkg/company"
)

func TestFormatCSVExact(t *testing.T) {
	records := []company.Record{
		{ID: 1, Name: "A", Equity: "100%"},
		{ID: 2, Name: "B", Parent: "A", Equity: "50%"},
	}
	got, err := FormatCSV(records)
	if err != nil {
		t.Fatal(err)
	}
	want := "Company Name,Parent Company,Equity\nA,,100%\nB,A,50%"
	if got != want {
		t.Errorf("FormatCSV() =\n%q\nwant\n%q", got, want)
	}
}

func TestFormatCSVEmpty(t *testing.T) {
	got, _ := FormatCSV(nil)
	if got != "Company Name,Parent Company,Equity" {
		t.Errorf("FormatCSV(nil) = %q", got)
	}
}

func TestFormatCSVQuoting(t *testing.T) {
	got, _ := FormatCSV([]company.Record{{Name: `Acme, "Intl"`, Equity: "10%"}})
	if want := "Company Name,Parent Company,Equity\n\"Acme, \"\"Intl\"\"\",,10%"; got != want {
		t.Errorf("FormatCSV() = %q, want %q", got, want)
	}
}

func TestReadCSV(t *testing.T) {
	in := "\xEF\xBB\xBFcompany name,Parent Company,EQUITY,Notes\n" +
		"Holding,,100%,root\n" +
		"\n" +
		"\"Bank, Ltd\", Holding ,51%\n"
	records, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	b := records[1]
	if b.ID != 2 || b.Name != "Bank, Ltd" || b.Parent != "Holding" || b.Equity != "51%" || b.Level != 1 {
		t.Errorf("record = %+v", b)
	}
}

func TestReadCSVMissingColumn(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("Company Name,Equity\nA,1%"))
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("err = %v, want ErrMissingColumn", err)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(company.Sample(), &buf); err != nil {
		t.Fatal(err)
	}
	got, err := ReadCSV(&buf)
	if err != nil {
		t.Fatal(err)
	}
	want := company.Sample()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestReadJSONShapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"array", `[{"id":1,"name":"A","parent":"","equity":"1%"}]`, 1},
		{"response", `{"success":true,"companies":[{"id":1,"name":"A"},{"id":2,"name":"B"}]}`, 2},
		{"empty", `[]`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadJSON(strings.NewReader(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
	if _, err := ReadJSON(strings.NewReader(`{"error":"x"}`)); err == nil {
		t.Error("object without companies should fail")
	}
}

func TestXLSXRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(company.Sample(), &buf); err != nil {
		t.Fatalf("WriteXLSX() error: %v", err)
	}
	got, err := ReadXLSX(&buf)
	if err != nil {
		t.Fatalf("ReadXLSX() error: %v", err)
	}
	want := company.Sample()
	if len(got) != len(want) {
		t.Fatalf("records = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestExportImportFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.json", "out.csv", "out.xlsx"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := ExportFile(company.Sample(), path); err != nil {
				t.Fatal(err)
			}
			got, err := ImportFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != 10 || got[5].Name != "Direct Financial Network" {
				t.Errorf("import = %v", got)
			}
		})
	}
	if err := ExportFile(nil, filepath.Join(dir, "out.txt")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestCreateFileReportsClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	// Closing inside write makes the deferred Close fail.
	err := createFile(path, func(w io.Writer) error {
		return w.(*os.File).Close()
	})
	if !errors.Is(err, os.ErrClosed) {
		t.Errorf("err = %v, want os.ErrClosed", err)
	}

	writeErr := errors.New("write failed")
	err = createFile(path, func(w io.Writer) error {
		w.(*os.File).Close()
		return writeErr
	})
	if !errors.Is(err, writeErr) {
		t.Errorf("err = %v, want the write error", err)
	}

	if err := createFile(path, func(w io.Writer) error { return WriteCSV(company.Sample(), w) }); err != nil {
		t.Fatal(err)
	}
	if got, err := ImportCSV(path); err != nil || len(got) != 10 {
		t.Errorf("ImportCSV() = %d records, %v", len(got), err)
	}
}
