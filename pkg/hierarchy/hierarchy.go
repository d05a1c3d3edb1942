package hierarchy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matzehuels/orgchart/pkg/company"
)

// ErrDuplicateName is returned by [Build] when two records share a name.
var ErrDuplicateName = errors.New("duplicate company name")

// Node is a record together with its ordered children.
type Node struct {
	company.Record
	Children []*Node
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Forest is the result of [Build].
type Forest struct {
	// Roots holds the records with an empty parent, in input order.
	Roots []*Node
	// Orphans holds records whose parent names no loaded record.
	Orphans []company.Record
	// Detached holds records linked to an existing parent that no root reaches.
	Detached []company.Record

	byName map[string]*Node
}

// =============================================================================
// Construction
// =============================================================================

// Build links records into a forest. The input is not modified.
func Build(records []company.Record) (*Forest, error) {
	if dups := company.Duplicates(records); len(dups) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateName, strings.Join(dups, ", "))
	}

	f := &Forest{byName: make(map[string]*Node, len(records))}
	nodes := make([]*Node, len(records))
	for i, r := range records {
		n := &Node{Record: r}
		nodes[i] = n
		f.byName[r.Name] = n
	}

	for _, n := range nodes {
		switch parent, ok := f.byName[n.Parent]; {
		case n.IsRoot():
			f.Roots = append(f.Roots, n)
		case ok:
			parent.Children = append(parent.Children, n)
		default:
			f.Orphans = append(f.Orphans, n.Record)
		}
	}

	reached := make(map[string]bool, len(nodes))
	f.Walk(func(n *Node, _ int) bool {
		reached[n.Name] = true
		return true
	})
	for _, n := range nodes {
		if !reached[n.Name] && !n.IsRoot() {
			if _, ok := f.byName[n.Parent]; ok {
				f.Detached = append(f.Detached, n.Record)
			}
		}
	}
	return f, nil
}

// =============================================================================
// Queries
// =============================================================================

// RootMap returns the mapping from root name to its tree.
func (f *Forest) RootMap() map[string]*Node {
	m := make(map[string]*Node, len(f.Roots))
	for _, r := range f.Roots {
		m[r.Name] = r
	}
	return m
}

// Root returns the tree rooted at name, if name is a root.
func (f *Forest) Root(name string) (*Node, bool) {
	for _, r := range f.Roots {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}

// RootNames returns the root names in input order.
func (f *Forest) RootNames() []string {
	names := make([]string, len(f.Roots))
	for i, r := range f.Roots {
		names[i] = r.Name
	}
	return names
}

// Node returns the node for name, whether or not it is reachable from a root.
func (f *Forest) Node(name string) (*Node, bool) {
	n, ok := f.byName[name]
	return n, ok
}

// Walk visits every node reachable from a root in pre-order, roots in input
// order, children in input order. depth is 0 for roots. Returning false from
// fn skips the node's children.
func (f *Forest) Walk(fn func(n *Node, depth int) bool) {
	visited := make(map[*Node]bool)
	var visit func(n *Node, depth int)
	visit = func(n *Node, depth int) {
		if visited[n] {
			return
		}
		visited[n] = true
		if !fn(n, depth) {
			return
		}
		for _, c := range n.Children {
			visit(c, depth+1)
		}
	}
	for _, r := range f.Roots {
		visit(r, 0)
	}
}

// Len returns the number of nodes reachable from a root.
func (f *Forest) Len() int {
	n := 0
	f.Walk(func(*Node, int) bool { n++; return true })
	return n
}

// Depth returns the number of levels in the reachable forest, 0 when empty.
func (f *Forest) Depth() int {
	d := 0
	f.Walk(func(_ *Node, depth int) bool {
		d = max(d, depth+1)
		return true
	})
	return d
}
