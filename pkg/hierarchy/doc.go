// Package hierarchy turns a flat list of company records into a forest of
// parent/child trees.
//
// Records refer to their parent by name. [Build] links them in two passes:
//
//  1. Index: every record becomes a [Node] keyed by its name.
//  2. Link: a record with an empty parent becomes a root; a record whose
//     parent exists is appended to that parent's children; a record whose
//     parent names no loaded record is an orphan.
//
// Children keep the order of the input, so re-building the same records
// always yields the same forest.
//
// # Orphans and Detached Records
//
// Orphans are not an error. They are collected in [Forest.Orphans] and never
// appear in any tree. Records that link to an existing parent but are still
// unreachable from a root (parent cycles, or descendants of an orphan) are
// collected in [Forest.Detached].
//
// # Duplicate Names
//
// Names are the join key, so [Build] rejects input with duplicated names and
// returns an error wrapping [ErrDuplicateName].
//
//	forest, err := hierarchy.Build(records)
//	if err != nil {
//	    return err
//	}
//	forest.Walk(func(n *hierarchy.Node, depth int) bool {
//	    fmt.Println(strings.Repeat("  ", depth) + n.Name)
//	    return true
//	})
package hierarchy
