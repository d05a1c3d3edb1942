package layout

import (
	"fmt"

	"github.com/matzehuels/orgchart/pkg/hierarchy"
)

// Build dispatches to [Chart] or [Tree].
func Build(mode Mode, f *hierarchy.Forest, opts ...Option) (Layout, error) {
	switch mode {
	case ModeChart:
		return Chart(f, opts...), nil
	case ModeTree:
		return Tree(f, opts...), nil
	}
	return Layout{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}

// Chart lays the forest out as leveled rows of boxes.
func Chart(f *hierarchy.Forest, opts ...Option) Layout {
	c := apply(opts)

	var levels [][]*hierarchy.Node
	f.Walk(func(n *hierarchy.Node, depth int) bool {
		if depth == len(levels) {
			levels = append(levels, nil)
		}
		levels[depth] = append(levels[depth], n)
		return true
	})

	l := Layout{Mode: ModeChart, Width: c.width, Height: c.minHeight}
	for depth, row := range levels {
		spacing := c.width / float64(len(row)+1)
		top := c.baseline + float64(depth)*c.rowHeight
		for i, n := range row {
			cx := float64(i+1) * spacing
			l.Nodes = append(l.Nodes, Node{
				ID:     n.ID,
				Name:   n.Name,
				Parent: n.Parent,
				Equity: n.Equity,
				Depth:  depth,
				X:      cx - c.nodeW/2,
				Y:      top,
				W:      c.nodeW,
				H:      c.nodeH,
			})
		}
	}
	if len(levels) > 0 {
		bottom := c.baseline + float64(len(levels)-1)*c.rowHeight + c.nodeH + c.baseline
		l.Height = max(c.minHeight, bottom)
	}

	pos := make(map[string]Node, len(l.Nodes))
	for _, n := range l.Nodes {
		pos[n.Name] = n
	}
	for _, child := range l.Nodes {
		if child.Depth == 0 {
			continue
		}
		parent, ok := pos[child.Parent]
		if !ok {
			continue
		}
		l.Edges = append(l.Edges, curve(parent, child))
	}
	return l
}

func curve(parent, child Node) Edge {
	x1, y1 := parent.CenterX(), parent.Bottom()
	x2, y2 := child.CenterX(), child.Y
	midY := y1 + (y2-y1)/2
	return Edge{
		From: parent.Name, To: child.Name, Kind: EdgeCurve,
		X1: x1, Y1: y1,
		C1X: x1, C1Y: midY,
		C2X: x2, C2Y: midY,
		X2: x2, Y2: y2,
	}
}
