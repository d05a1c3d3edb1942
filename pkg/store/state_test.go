package store

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/matzehuels/orgchart/pkg/company"
)

func ptr(s string) *string { return &s }

func ids(recs []company.Record) []int {
	out := make([]int, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

func TestLoadSwitchesToChart(t *testing.T) {
	s := New()
	if s.View() != ViewUpload {
		t.Fatalf("initial view = %s", s.View())
	}
	if err := s.Load(company.Sample()); err != nil {
		t.Fatal(err)
	}
	if s.View() != ViewChart {
		t.Errorf("view = %s, want chart", s.View())
	}
	if s.Len() != 10 {
		t.Errorf("Len() = %d, want 10", s.Len())
	}
}

func TestLoadRejectsDuplicates(t *testing.T) {
	s := New()
	err := s.Load([]company.Record{{ID: 1, Name: "A", Equity: "1%"}, {ID: 2, Name: "A", Equity: "2%"}})
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("err = %v, want ErrDuplicateName", err)
	}
	if s.Len() != 0 || s.View() != ViewUpload {
		t.Error("failed load changed the state")
	}
}

func TestLoadAssignsMissingIDs(t *testing.T) {
	s := New()
	if err := s.Load([]company.Record{{Name: "A", Equity: "1%"}, {ID: 5, Name: "B", Parent: "A", Equity: "2%"}}); err != nil {
		t.Fatal(err)
	}
	recs := s.Records()
	if !slices.Equal(ids(recs), []int{6, 5}) {
		t.Errorf("ids = %v, want [6 5]", ids(recs))
	}
	if recs[1].Level != 1 {
		t.Errorf("B level = %d, want 1", recs[1].Level)
	}
}

func TestLoadReassignsRepeatedIDs(t *testing.T) {
	s := New()
	err := s.Load([]company.Record{
		{ID: 1, Name: "A", Equity: "100%"},
		{ID: 1, Name: "B", Parent: "A", Equity: "50%"},
		{ID: 3, Name: "C", Parent: "A", Equity: "10%"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := ids(s.Records()); !slices.Equal(got, []int{1, 4, 3}) {
		t.Fatalf("ids = %v, want [1 4 3]", got)
	}

	if err := s.Remove(1); err != nil {
		t.Fatal(err)
	}
	recs := s.Records()
	if len(recs) != 2 || recs[0].Name != "B" || recs[1].Name != "C" {
		t.Errorf("Remove(1) left %v", recs)
	}
}

func TestFinishUploadReassignsRepeatedIDs(t *testing.T) {
	s := New()
	s.BeginUpload("chart.pdf")
	s.FinishUpload([]company.Record{
		{ID: 2, Name: "A", Equity: "100%"},
		{ID: 2, Name: "B", Parent: "A", Equity: "50%"},
	}, "", nil)

	if got := ids(s.Records()); !slices.Equal(got, []int{2, 3}) {
		t.Errorf("ids = %v, want [2 3]", got)
	}
}

func TestAddAssignsNextID(t *testing.T) {
	s := New()
	r, err := s.Add(Draft{Name: "First", Equity: "100%"})
	if err != nil {
		t.Fatal(err)
	}
	if r.ID != 1 {
		t.Errorf("first id = %d, want 1", r.ID)
	}

	if err := s.Load(company.Sample()); err != nil {
		t.Fatal(err)
	}
	r, err = s.Add(Draft{Name: "New Co", Parent: "Holding Company", Equity: "10%"})
	if err != nil {
		t.Fatal(err)
	}
	if r.ID != 11 {
		t.Errorf("id = %d, want 11", r.ID)
	}
	if r.Level != 1 {
		t.Errorf("level = %d, want 1", r.Level)
	}
	recs := s.Records()
	if recs[len(recs)-1].Name != "New Co" {
		t.Error("Add should append")
	}
}

func TestAddValidation(t *testing.T) {
	s := New()
	s.Load(company.Sample())
	v := s.Version()

	tests := []struct {
		name  string
		draft Draft
		want  error
	}{
		{"no name", Draft{Equity: "5%"}, ErrInvalidRecord},
		{"no equity", Draft{Name: "X"}, ErrInvalidRecord},
		{"duplicate", Draft{Name: "DFN Pakistan", Equity: "5%"}, ErrDuplicateName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Add(tt.draft); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if s.Len() != 10 || s.Version() != v {
		t.Error("rejected adds changed the state")
	}
}

func TestUpdateMergesInPlace(t *testing.T) {
	s := New()
	s.Load(company.Sample())

	r, err := s.Update(8, Patch{Equity: ptr("95%")})
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != "DFN Sri Lanka" || r.Equity != "95%" || r.Parent != "Direct Financial Network" {
		t.Errorf("merged record = %+v", r)
	}
	if got := s.Records()[7]; got.ID != 8 || got.Equity != "95%" {
		t.Errorf("record 8 moved or not updated: %+v", got)
	}

	if _, err := s.Update(8, Patch{Name: ptr("DFN Pakistan")}); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("rename to existing name: err = %v", err)
	}
	if _, err := s.Update(8, Patch{Name: ptr("DFN Sri Lanka")}); err != nil {
		t.Errorf("keeping own name: err = %v", err)
	}
	if _, err := s.Update(99, Patch{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id: err = %v", err)
	}
	if _, err := s.Update(8, Patch{Equity: ptr(" ")}); !errors.Is(err, ErrInvalidRecord) {
		t.Errorf("blank equity: err = %v", err)
	}
}

func TestRemovePreservesOrder(t *testing.T) {
	s := New()
	s.Load(company.Sample())
	before := s.Records()

	if err := s.Remove(6); err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 3, 4, 5, 7, 8, 9, 10}
	after := s.Records()
	if got := ids(after); !slices.Equal(got, want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	kept := slices.Delete(slices.Clone(before), 5, 6)
	for i := range kept {
		if after[i] != kept[i] {
			t.Errorf("record %d changed: %+v, want %+v", kept[i].ID, after[i], kept[i])
		}
	}
	if err := s.Remove(6); !errors.Is(err, ErrNotFound) {
		t.Errorf("second remove: err = %v", err)
	}

	// The removed parent's children become orphans, not roots.
	f, err := s.Forest()
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Orphans) != 3 || len(f.Roots) != 1 {
		t.Errorf("orphans = %d, roots = %d", len(f.Orphans), len(f.Roots))
	}
}

func TestUpdateLeavesOtherRecords(t *testing.T) {
	s := New()
	s.Load(company.Sample())
	before := s.Records()

	r, err := s.Update(6, Patch{Parent: ptr("")})
	if err != nil {
		t.Fatal(err)
	}
	if r.Level != 0 {
		t.Errorf("updated level = %d, want 0", r.Level)
	}
	after := s.Records()
	for i := range before {
		if before[i].ID == 6 {
			continue
		}
		if after[i] != before[i] {
			t.Errorf("record %d changed: %+v, want %+v", before[i].ID, after[i], before[i])
		}
	}

	r, err = s.Update(10, Patch{Parent: ptr("DFN Pakistan")})
	if err != nil {
		t.Fatal(err)
	}
	if r.Level != 3 {
		t.Errorf("level under DFN Pakistan = %d, want 3", r.Level)
	}
}

func TestAddLeavesOtherRecords(t *testing.T) {
	s := New()
	s.Load(company.Sample())
	before := s.Records()

	if _, err := s.Add(Draft{Name: "Dangling", Parent: "Nowhere", Equity: "5%"}); err != nil {
		t.Fatal(err)
	}
	after := s.Records()
	if !slices.Equal(after[:len(before)], before) {
		t.Error("Add changed existing records")
	}
	if last := after[len(after)-1]; last.Level != 0 {
		t.Errorf("orphan level = %d, want 0", last.Level)
	}
}

func TestReset(t *testing.T) {
	s := New()
	s.BeginUpload("chart.pdf")
	s.FinishUpload(company.Sample(), "some text", nil)
	s.Reset()

	snap := s.Snapshot()
	if len(snap.Records) != 0 || snap.Extracted != "" || snap.Error != "" || snap.View != ViewUpload || snap.FileName != "" {
		t.Errorf("state after reset = %+v", snap)
	}
}

func TestUploadLifecycle(t *testing.T) {
	s := New()
	s.Load(company.Sample())

	if err := s.BeginUpload("a.pdf"); err != nil {
		t.Fatal(err)
	}
	if !s.Busy() || s.Len() != 0 {
		t.Error("BeginUpload should mark busy and clear records")
	}
	if err := s.BeginUpload("b.pdf"); !errors.Is(err, ErrBusy) {
		t.Errorf("second BeginUpload err = %v, want ErrBusy", err)
	}

	s.FinishUpload(nil, "", errors.New("Unsupported file type"))
	if s.Busy() {
		t.Error("still busy after failure")
	}
	if s.ErrorMessage() != "Unsupported file type" || s.Len() != 0 {
		t.Errorf("error = %q, records = %d", s.ErrorMessage(), s.Len())
	}

	s.BeginUpload("c.pdf")
	s.FinishUpload(company.FallbackSample(), "Professional sample data loaded", nil)
	if s.ErrorMessage() != "" || s.Len() != 11 || s.View() != ViewChart {
		t.Errorf("after success: err=%q len=%d view=%s", s.ErrorMessage(), s.Len(), s.View())
	}
	if s.ExtractedText() != "Professional sample data loaded" {
		t.Errorf("extracted = %q", s.ExtractedText())
	}
}

func TestStatsFollowEdits(t *testing.T) {
	s := New()
	s.Load([]company.Record{
		{ID: 1, Name: "A", Equity: "100%"},
		{ID: 2, Name: "B", Parent: "A", Equity: "50%"},
	})
	s.Add(Draft{Name: "C", Parent: "A", Equity: "0%"})
	if got := s.Stats(); got.AvgEquity != "50.0%" || got.Subsidiaries != 2 || got.Levels != 2 {
		t.Errorf("stats = %+v", got)
	}
}

func TestSetView(t *testing.T) {
	s := New()
	if err := s.SetView(ViewTable); err != nil {
		t.Fatal(err)
	}
	if err := s.SetView("radar"); !errors.Is(err, ErrUnknownView) {
		t.Errorf("err = %v, want ErrUnknownView", err)
	}
	if s.View() != ViewTable {
		t.Errorf("view = %s", s.View())
	}
}

func TestSubscribe(t *testing.T) {
	s := New()
	var mu sync.Mutex
	var got []EventKind
	unsub := s.Subscribe(func(e Event) {
		mu.Lock()
		got = append(got, e.Kind)
		mu.Unlock()
	})

	s.Load(company.Sample())
	s.SetView(ViewTree)
	s.SetView(ViewTree) // no change, no event
	s.BeginUpload("x.png")
	unsub()
	s.Reset()

	want := []EventKind{EventRecords, EventView, EventUpload}
	if !slices.Equal(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
	if s.Version() != 4 {
		t.Errorf("Version() = %d, want 4", s.Version())
	}
}

func TestParseView(t *testing.T) {
	for _, v := range Views {
		if got, err := ParseView(string(v)); err != nil || got != v {
			t.Errorf("ParseView(%q) = %q, %v", v, got, err)
		}
	}
}
