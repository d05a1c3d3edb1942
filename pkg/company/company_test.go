package company

import (
	"errors"
	"slices"
	"testing"
)

func TestNextID(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		want    int
	}{
		{"empty", nil, 1},
		{"single", []Record{{ID: 1}}, 2},
		{"gap", []Record{{ID: 3}, {ID: 9}, {ID: 4}}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextID(tt.records); got != tt.want {
				t.Errorf("NextID() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeStatsAverageEquity(t *testing.T) {
	records := []Record{
		{ID: 1, Name: "A", Equity: "100%"},
		{ID: 2, Name: "B", Parent: "A", Equity: "50%"},
		{ID: 3, Name: "C", Parent: "A", Equity: "0%"},
	}
	s := ComputeStats(records)
	if s.AvgEquity != "50.0%" {
		t.Errorf("AvgEquity = %q, want 50.0%%", s.AvgEquity)
	}
	if s.Subsidiaries != 2 {
		t.Errorf("Subsidiaries = %d, want 2", s.Subsidiaries)
	}
	if s.Levels != 2 {
		t.Errorf("Levels = %d, want 2", s.Levels)
	}
}

func TestComputeStatsToleratesBadEquity(t *testing.T) {
	records := []Record{
		{ID: 1, Name: "A", Equity: "100%"},
		{ID: 2, Name: "B", Parent: "A", Equity: ""},
		{ID: 3, Name: "C", Parent: "A", Equity: "about half"},
	}
	s := ComputeStats(records)
	if s.AvgEquity != "33.3%" {
		t.Errorf("AvgEquity = %q, want 33.3%%", s.AvgEquity)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	s := ComputeStats(nil)
	if s.TotalCompanies != 0 || s.Subsidiaries != 0 || s.Levels != 0 {
		t.Errorf("unexpected stats for empty set: %+v", s)
	}
	if s.AvgEquity != "0%" {
		t.Errorf("AvgEquity = %q, want 0%%", s.AvgEquity)
	}
}

func TestSampleStats(t *testing.T) {
	s := ComputeStats(Sample())
	if s.TotalCompanies != 10 {
		t.Errorf("TotalCompanies = %d, want 10", s.TotalCompanies)
	}
	if s.Subsidiaries != 9 {
		t.Errorf("Subsidiaries = %d, want 9", s.Subsidiaries)
	}
	if s.Levels != 3 {
		t.Errorf("Levels = %d, want 3", s.Levels)
	}
	if s.AvgEquity != "88.2%" {
		t.Errorf("AvgEquity = %q, want 88.2%%", s.AvgEquity)
	}
}

func TestFallbackSample(t *testing.T) {
	fb := FallbackSample()
	if len(fb) != 11 {
		t.Fatalf("len = %d, want 11", len(fb))
	}
	if last := fb[len(fb)-1]; last.Name != "Carbon Market Company" || last.ID != 11 {
		t.Errorf("last record = %+v", last)
	}
	// Sample must not be aliased by the fallback set.
	if len(Sample()) != 10 {
		t.Error("Sample() was modified")
	}
}

func TestAssignLevels(t *testing.T) {
	records := []Record{
		{ID: 1, Name: "root"},
		{ID: 2, Name: "mid", Parent: "root", Level: 7},
		{ID: 3, Name: "leaf", Parent: "mid"},
		{ID: 4, Name: "orphan", Parent: "missing"},
		{ID: 5, Name: "x", Parent: "y"},
		{ID: 6, Name: "y", Parent: "x"},
	}

	got := AssignLevels(records)
	want := map[string]int{"root": 0, "mid": 1, "leaf": 2, "orphan": 0, "x": 2, "y": 2}
	for _, r := range got {
		if r.Level != want[r.Name] {
			t.Errorf("level(%s) = %d, want %d", r.Name, r.Level, want[r.Name])
		}
	}
	if records[1].Level != 7 {
		t.Error("AssignLevels modified its input")
	}
}

func TestLevelUnder(t *testing.T) {
	recs := Sample()
	tests := []struct {
		parent string
		want   int
	}{
		{"", 0},
		{"Holding Company", 1},
		{"Direct Financial Network", 2},
		{"DFN Pakistan", 3},
		{"Unknown", 0},
	}
	for _, tt := range tests {
		if got := LevelUnder(recs, tt.parent); got != tt.want {
			t.Errorf("LevelUnder(%q) = %d, want %d", tt.parent, got, tt.want)
		}
	}
}

func TestParseEquity(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"100%", "100", false},
		{" 33.12 % ", "33.12", false},
		{"51", "51", false},
		{"", "0", true},
		{"%", "0", true},
		{"abc", "0", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEquity(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEquity(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidEquity) {
				t.Errorf("error %v does not wrap ErrInvalidEquity", err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseEquity(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeEquity(t *testing.T) {
	tests := map[string]string{
		"51":       "51%",
		"33.120 %": "33.12%",
		" n/a ":    "n/a",
	}
	for in, want := range tests {
		if got := NormalizeEquity(in); got != want {
			t.Errorf("NormalizeEquity(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		rec     Record
		wantErr bool
	}{
		{"valid root", Record{Name: "A", Equity: "100%"}, false},
		{"valid child", Record{Name: "B", Parent: "A", Equity: "50%"}, false},
		{"missing name", Record{Equity: "100%"}, true},
		{"blank name", Record{Name: "   ", Equity: "100%"}, true},
		{"missing equity", Record{Name: "A"}, true},
		{"self parent", Record{Name: "A", Parent: "A", Equity: "1%"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.rec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidRecord) {
				t.Errorf("error %v does not wrap ErrInvalidRecord", err)
			}
		})
	}
}

func TestDuplicates(t *testing.T) {
	records := []Record{{Name: "A"}, {Name: "B"}, {Name: "A"}, {Name: "A"}, {Name: "B"}}
	if got := Duplicates(records); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("Duplicates() = %v", got)
	}
}

func TestParentNames(t *testing.T) {
	got := ParentNames(Sample()[:3], 2)
	want := []string{"Holding Company", "Securities Clearing Center"}
	if !slices.Equal(got, want) {
		t.Errorf("ParentNames() = %v, want %v", got, want)
	}
}
