package render

import (
	"github.com/matzehuels/orgchart/pkg/layout"
	"github.com/matzehuels/orgchart/pkg/render/styles"
)

// Chart box decoration, relative to the box origin.
const (
	chartRadius      = 8.0
	chartShadow      = 4.0
	chartBorder      = 2.0
	chartNameY       = 45.0
	chartNameSize    = 13.0
	chartBandInset   = 10.0
	chartBandY       = 55.0
	chartBandHeight  = 18.0
	chartEquityY     = 67.0
	chartEquitySize  = 11.0
	chartConnector   = 2.0
	treeRadius       = 6.0
	treeBorder       = 1.0
	treeMarker       = 10.0
	treeNameX        = 30.0
	treeNameY        = 20.0
	treeBadgeRight   = 80.0
	treeBadgeW       = 60.0
	treeBadgeH       = 20.0
	treeBadgeY       = 5.0
	treeBadgeTextY   = 17.0
	treeBadgeSize    = 10.0
	treeConnector    = 2.0
	treeRootNameSize = 14.0
	treeNameSize     = 13.0
)

var treeDash = []float64{5, 5}

// Paint clears s and draws l with theme t. It keeps no state between calls.
func Paint(s Surface, l layout.Layout, t styles.Theme) {
	s.Clear(t.Background)
	switch l.Mode {
	case layout.ModeTree:
		paintTree(s, l, t)
	default:
		paintChart(s, l, t)
	}
}

// =============================================================================
// Chart Mode
// =============================================================================

func paintChart(s Surface, l layout.Layout, t styles.Theme) {
	for _, n := range l.Nodes {
		paintChartNode(s, n, t)
	}
	conn := Stroke{Color: t.Connection, Width: chartConnector}
	for _, e := range l.Edges {
		s.Curve(e.X1, e.Y1, e.C1X, e.C1Y, e.C2X, e.C2Y, e.X2, e.Y2, conn)
	}
}

func paintChartNode(s Surface, n layout.Node, t styles.Theme) {
	lvl := t.ChartLevel(n.Depth)
	box := Rect{X: n.X, Y: n.Y, W: n.W, H: n.H, Radius: chartRadius}

	if t.Shadow.A > 0 {
		shadow := box
		shadow.X += chartShadow
		shadow.Y += chartShadow
		s.FillRect(shadow, Solid(t.Shadow))
	}
	s.FillRect(box, levelFill(lvl, box))
	s.StrokeRect(box, Stroke{Color: lvl.Border, Width: chartBorder})

	cx := n.CenterX()
	s.Text(styles.ChartLabel(n.Name), cx, n.Y+chartNameY, Font{Size: chartNameSize, Bold: true}, AlignCenter, lvl.Text)

	band := Rect{X: n.X + chartBandInset, Y: n.Y + chartBandY, W: n.W - 2*chartBandInset, H: chartBandHeight, Radius: 4}
	s.FillRect(band, Solid(t.Band))
	s.Text("Equity: "+n.Equity, cx, n.Y+chartEquityY, Font{Size: chartEquitySize, Bold: true}, AlignCenter, lvl.Text)
}

func levelFill(lvl styles.Level, box Rect) Fill {
	if !lvl.Gradient() {
		return Solid(lvl.From)
	}
	return Fill{Color: lvl.From, Gradient: &Gradient{
		X1: box.X, Y1: box.Y, X2: box.X + box.W, Y2: box.Y + box.H,
		From: lvl.From, To: lvl.To,
	}}
}

// =============================================================================
// Tree Mode
// =============================================================================

func paintTree(s Surface, l layout.Layout, t styles.Theme) {
	conn := Stroke{Color: t.TreeConnector, Width: treeConnector, Dash: treeDash}
	for _, e := range l.Edges {
		s.Line(e.X1, e.Y1, e.X2, e.Y2, conn)
	}
	for _, n := range l.Nodes {
		paintTreeRow(s, n, l.Width, t)
	}
}

func paintTreeRow(s Surface, n layout.Node, width float64, t styles.Theme) {
	c := t.TreeColor(n.Depth)
	row := Rect{X: n.X, Y: n.Y, W: n.W, H: n.H, Radius: treeRadius}

	from, to := styles.WithAlpha(c, t.TreeFromAlpha), styles.WithAlpha(c, t.TreeToAlpha)
	fill := Solid(from)
	if from != to {
		fill.Gradient = &Gradient{X1: row.X, Y1: row.Y, X2: row.X + row.W, Y2: row.Y + row.H, From: from, To: to}
	}
	s.FillRect(row, fill)
	s.StrokeRect(row, Stroke{Color: c, Width: treeBorder})

	marker := Rect{X: n.X + 10, Y: n.Y + (n.H-treeMarker)/2, W: treeMarker, H: treeMarker, Radius: markerRadius(n.Depth)}
	s.FillRect(marker, Solid(c))

	font := Font{Size: treeNameSize}
	if n.Depth == 0 {
		font = Font{Size: treeRootNameSize, Bold: true}
	}
	s.Text(styles.TreeLabel(n.Name), n.X+treeNameX, n.Y+treeNameY, font, AlignStart, t.TreeText)

	badge := Rect{X: width - treeBadgeRight, Y: n.Y + treeBadgeY, W: treeBadgeW, H: treeBadgeH, Radius: 10}
	s.FillRect(badge, Solid(c))
	s.Text(n.Equity, badge.X+badge.W/2, n.Y+treeBadgeTextY, Font{Size: treeBadgeSize, Bold: true}, AlignCenter, t.BadgeText)
}

// markerRadius distinguishes roots (square), first-level subsidiaries
// (rounded) and deeper rows (circle).
func markerRadius(depth int) float64 {
	switch depth {
	case 0:
		return 0
	case 1:
		return 3
	}
	return treeMarker / 2
}

