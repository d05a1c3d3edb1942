package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/orgchart/pkg/company"
)

type envelope struct {
	Companies []company.Record `json:"companies"`
}

// WriteJSON encodes records as an indented JSON array.
func WriteJSON(records []company.Record, w io.Writer) error {
	if records == nil {
		records = []company.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes either a record array or an object with a "companies" array.
func ReadJSON(r io.Reader) ([]company.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		if env.Companies == nil {
			return nil, fmt.Errorf("decode: object has no \"companies\" array")
		}
		return env.Companies, nil
	}
	var records []company.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return records, nil
}

// ExportJSON writes records to a JSON file at path.
func ExportJSON(records []company.Record, path string) error {
	return createFile(path, func(w io.Writer) error {
		return WriteJSON(records, w)
	})
}

// ImportJSON reads records from a JSON file at path.
func ImportJSON(path string) ([]company.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
