package render

import "image/color"

// Surface is a 2D drawing target in logical coordinates. Implementations
// may scale internally (see the PNG sink's pixel ratio) but callers never
// see device pixels.
type Surface interface {
	// Size returns the logical width and height.
	Size() (w, h float64)
	// Clear erases everything and fills the surface with bg.
	Clear(bg color.NRGBA)
	FillRect(r Rect, f Fill)
	StrokeRect(r Rect, s Stroke)
	// Curve strokes a cubic Bézier from (x1,y1) to (x2,y2).
	Curve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64, s Stroke)
	Line(x1, y1, x2, y2 float64, s Stroke)
	// Text draws s with its baseline at y. Align decides whether x is the
	// start or the center of the text.
	Text(s string, x, y float64, f Font, a Align, c color.NRGBA)
}

// Rect is an axis-aligned rectangle with optional rounded corners.
type Rect struct {
	X, Y, W, H float64
	Radius     float64
}

// Fill is a solid color or, when Gradient is set, a linear gradient.
type Fill struct {
	Color    color.NRGBA
	Gradient *Gradient
}

// Gradient is a two-stop linear gradient in logical coordinates.
type Gradient struct {
	X1, Y1, X2, Y2 float64
	From, To       color.NRGBA
}

// Stroke describes a line. An empty Dash draws a solid line.
type Stroke struct {
	Color color.NRGBA
	Width float64
	Dash  []float64
}

// Font selects a text face.
type Font struct {
	Size float64
	Bold bool
}

// Align is horizontal text alignment.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
)

// Solid returns a single-color fill.
func Solid(c color.NRGBA) Fill { return Fill{Color: c} }
