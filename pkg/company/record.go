package company

import (
	"fmt"
	"strings"
)

// Record is one company entry of an organizational chart.
//
// The zero value is not a valid record: Name and Equity must be set.
type Record struct {
	ID     int    `json:"id"`
	Name   string `json:"name" validate:"required,max=256"`
	Parent string `json:"parent"`
	Equity string `json:"equity" validate:"required,max=32"`
	Level  int    `json:"level"`
}

// IsRoot reports whether the record declares no parent.
func (r Record) IsRoot() bool { return r.Parent == "" }

// String returns a compact human-readable form, e.g. "DFN Pakistan (99%) <- Direct Financial Network".
func (r Record) String() string {
	if r.IsRoot() {
		return fmt.Sprintf("%s (%s)", r.Name, r.Equity)
	}
	return fmt.Sprintf("%s (%s) <- %s", r.Name, r.Equity, r.Parent)
}

// Normalize trims surrounding whitespace from the text fields.
func (r Record) Normalize() Record {
	r.Name = strings.TrimSpace(r.Name)
	r.Parent = strings.TrimSpace(r.Parent)
	r.Equity = strings.TrimSpace(r.Equity)
	return r
}

// NextID returns one more than the largest id in records, or 1 for an empty set.
func NextID(records []Record) int {
	maxID := 0
	for _, r := range records {
		maxID = max(maxID, r.ID)
	}
	return maxID + 1
}

// Clone returns a copy of records that shares no backing array with the input.
func Clone(records []Record) []Record {
	if records == nil {
		return nil
	}
	out := make([]Record, len(records))
	copy(out, records)
	return out
}

// Index returns the position of the record with the given id, or -1.
func Index(records []Record, id int) int {
	for i, r := range records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// Duplicates returns the names that occur more than once in records, in the
// order their second occurrence appears.
func Duplicates(records []Record) []string {
	seen := make(map[string]int, len(records))
	var dups []string
	for _, r := range records {
		seen[r.Name]++
		if seen[r.Name] == 2 {
			dups = append(dups, r.Name)
		}
	}
	return dups
}

// ParentNames returns the distinct names usable as a parent for a record with
// the given id, in record order. The record itself is excluded.
func ParentNames(records []Record, exceptID int) []string {
	names := make([]string, 0, len(records))
	for _, r := range records {
		if r.ID != exceptID {
			names = append(names, r.Name)
		}
	}
	return names
}
