package layout

import "github.com/matzehuels/orgchart/pkg/hierarchy"

// Tree lays the forest out as an indented list, one row per node.
//
// The frame height is sized for every record known to the forest, orphans
// included, so the frame does not shrink when a parent goes missing.
func Tree(f *hierarchy.Forest, opts ...Option) Layout {
	c := apply(opts)

	l := Layout{Mode: ModeTree, Width: c.width}
	row := 0
	var parents []Node
	f.Walk(func(n *hierarchy.Node, depth int) bool {
		x := treeLeft + float64(depth)*treeIndent
		node := Node{
			ID:     n.ID,
			Name:   n.Name,
			Parent: n.Parent,
			Equity: n.Equity,
			Depth:  depth,
			X:      x,
			Y:      treeTop + float64(row)*treeRowPitch,
			W:      c.width - x - treeRightInset,
			H:      treeRowHeight,
		}
		row++

		parents = append(parents[:depth], node)
		if depth > 0 {
			p := parents[depth-1]
			x1, y1 := p.X+15, p.Y+15
			x2, y2 := node.X-10, node.Y+15
			l.Edges = append(l.Edges, Edge{
				From: p.Name, To: node.Name, Kind: EdgeDashed,
				X1: x1, Y1: y1, C1X: x1, C1Y: y1,
				C2X: x2, C2Y: y2, X2: x2, Y2: y2,
			})
		}
		l.Nodes = append(l.Nodes, node)
		return true
	})

	total := f.Len() + len(f.Orphans) + len(f.Detached)
	l.Height = max(treeMinHeight, float64(total)*45+100)
	return l
}
