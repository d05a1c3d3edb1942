// Package layout computes positions for the two diagram modes of an org
// chart. It is pure: it reads a [hierarchy.Forest] and returns a [Layout]
// of rectangles and connectors without touching any drawing surface.
//
// # Chart Mode
//
// [Chart] groups nodes by depth in depth-first encounter order and spaces
// each level evenly across the frame:
//
//	centerX = (index+1) * width/(count+1)
//	top     = baseline + depth*rowHeight
//
// There is no subtree centering: a child is not placed under its parent, it
// is placed at its slot in its level. Every non-root node gets a curved
// connector from the bottom-center of its parent to its own top-center.
//
// # Tree Mode
//
// [Tree] emits one row per node in pre-order. Row i starts at 40+i*40, is
// 30 units tall and is indented 40 units per depth. Each child row gets a
// dashed connector to its parent's row.
//
// # Serialization
//
// A [Layout] marshals to JSON for the "json" output format:
//
//	data, _ := layout.Marshal(l)
//	l, _ = layout.Unmarshal(data)
package layout
