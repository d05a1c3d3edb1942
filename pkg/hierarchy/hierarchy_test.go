package hierarchy

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/orgchart/pkg/company"
)

func names(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}
	return out
}

func TestBuildRootsAndChildren(t *testing.T) {
	records := []company.Record{
		{ID: 1, Name: "A", Equity: "100%"},
		{ID: 2, Name: "B", Parent: "A", Equity: "50%"},
		{ID: 3, Name: "C", Parent: "A", Equity: "50%"},
		{ID: 4, Name: "D", Equity: "100%"},
		{ID: 5, Name: "E", Parent: "D", Equity: "10%"},
	}

	f, err := Build(records)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if got := f.RootNames(); !slices.Equal(got, []string{"A", "D"}) {
		t.Errorf("roots = %v", got)
	}
	a, ok := f.RootMap()["A"]
	if !ok {
		t.Fatal("A missing from RootMap")
	}
	if got := names(a.Children); !slices.Equal(got, []string{"B", "C"}) {
		t.Errorf("children of A = %v, want [B C]", got)
	}
	if f.Len() != 5 {
		t.Errorf("Len() = %d, want 5", f.Len())
	}
	if f.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", f.Depth())
	}
}

func TestBuildDanglingParent(t *testing.T) {
	records := []company.Record{
		{ID: 1, Name: "A", Equity: "100%"},
		{ID: 2, Name: "X", Parent: "Missing", Equity: "20%"},
		{ID: 3, Name: "Y", Parent: "X", Equity: "20%"},
	}

	f, err := Build(records)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	var seen []string
	f.Walk(func(n *Node, _ int) bool {
		seen = append(seen, n.Name)
		return true
	})
	if !slices.Equal(seen, []string{"A"}) {
		t.Errorf("reachable = %v, want [A]", seen)
	}
	if len(f.Orphans) != 1 || f.Orphans[0].Name != "X" {
		t.Errorf("Orphans = %v", f.Orphans)
	}
	if len(f.Detached) != 1 || f.Detached[0].Name != "Y" {
		t.Errorf("Detached = %v", f.Detached)
	}
}

func TestBuildCycle(t *testing.T) {
	records := []company.Record{
		{ID: 1, Name: "P", Parent: "Q", Equity: "1%"},
		{ID: 2, Name: "Q", Parent: "P", Equity: "1%"},
	}
	f, err := Build(records)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(f.Roots) != 0 || f.Len() != 0 {
		t.Errorf("cycle should have no reachable nodes, got %d", f.Len())
	}
	if len(f.Detached) != 2 {
		t.Errorf("Detached = %v, want both records", f.Detached)
	}
}

func TestBuildDuplicateName(t *testing.T) {
	records := []company.Record{
		{ID: 1, Name: "A", Equity: "100%"},
		{ID: 2, Name: "A", Equity: "100%"},
	}
	_, err := Build(records)
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("err = %v, want ErrDuplicateName", err)
	}
	if !strings.Contains(err.Error(), "A") {
		t.Errorf("error %q does not name the duplicate", err)
	}
}

func TestBuildEmpty(t *testing.T) {
	f, err := Build(nil)
	if err != nil {
		t.Fatalf("Build(nil) error: %v", err)
	}
	if f.Len() != 0 || f.Depth() != 0 || len(f.RootMap()) != 0 {
		t.Error("empty forest should have no nodes")
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	f, err := Build(company.Sample())
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	f.Walk(func(n *Node, depth int) bool {
		count++
		return n.Name != "Direct Financial Network"
	})
	if count != 7 {
		t.Errorf("visited %d nodes, want 7", count)
	}
}

func TestSampleForest(t *testing.T) {
	f, err := Build(company.Sample())
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Roots) != 1 {
		t.Errorf("roots = %d, want 1", len(f.Roots))
	}
	if f.Depth() != 3 {
		t.Errorf("Depth() = %d, want 3", f.Depth())
	}
	dfn, ok := f.Node("Direct Financial Network")
	if !ok || len(dfn.Children) != 3 {
		t.Errorf("Direct Financial Network children = %v", dfn)
	}
}
