package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrUnknownMode is returned for a mode other than [ModeChart] or [ModeTree].
var ErrUnknownMode = errors.New("unknown layout mode")

// Mode selects the diagram kind.
type Mode string

// Diagram modes.
const (
	ModeChart Mode = "chart"
	ModeTree  Mode = "tree"
)

// ParseMode converts a mode name to a [Mode].
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeChart, ModeTree:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// EdgeKind selects how a connector is stroked.
type EdgeKind string

// Connector kinds.
const (
	EdgeCurve  EdgeKind = "curve"
	EdgeDashed EdgeKind = "dashed"
)

// =============================================================================
// Types
// =============================================================================

// Layout is the positioned form of a forest.
type Layout struct {
	Mode   Mode    `json:"mode"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Nodes  []Node  `json:"nodes"`
	Edges  []Edge  `json:"edges"`
}

// Node is a positioned company box. X and Y are the top-left corner.
type Node struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Parent string  `json:"parent,omitempty"`
	Equity string  `json:"equity"`
	Depth  int     `json:"depth"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
}

// CenterX returns the horizontal center of the box.
func (n Node) CenterX() float64 { return n.X + n.W/2 }

// CenterY returns the vertical center of the box.
func (n Node) CenterY() float64 { return n.Y + n.H/2 }

// Bottom returns the y coordinate of the lower edge.
func (n Node) Bottom() float64 { return n.Y + n.H }

// Edge is a connector from a parent to a child. For [EdgeDashed] the
// control points coincide with the end points.
type Edge struct {
	From string   `json:"from"`
	To   string   `json:"to"`
	Kind EdgeKind `json:"kind"`
	X1   float64  `json:"x1"`
	Y1   float64  `json:"y1"`
	C1X  float64  `json:"c1x"`
	C1Y  float64  `json:"c1y"`
	C2X  float64  `json:"c2x"`
	C2Y  float64  `json:"c2y"`
	X2   float64  `json:"x2"`
	Y2   float64  `json:"y2"`
}

// Position returns the node for name.
func (l *Layout) Position(name string) (Node, bool) {
	for _, n := range l.Nodes {
		if n.Name == name {
			return n, true
		}
	}
	return Node{}, false
}

// Rows groups node names by depth. Only chart layouts have more than one
// node per depth in a meaningful order.
func (l *Layout) Rows() map[int][]string {
	rows := make(map[int][]string)
	for _, n := range l.Nodes {
		rows[n.Depth] = append(rows[n.Depth], n.Name)
	}
	return rows
}

// =============================================================================
// Serialization
// =============================================================================

// Marshal serializes a Layout to indented JSON.
func Marshal(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// Unmarshal parses a Layout and checks its mode.
func Unmarshal(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if _, err := ParseMode(string(l.Mode)); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// WriteFile writes a Layout as JSON.
func WriteFile(l Layout, path string) error {
	data, err := Marshal(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadFile reads a Layout from a JSON file.
func ReadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data)
}
