package styles

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
)

// ErrUnknownTheme is returned by [ByName] for an unregistered theme.
var ErrUnknownTheme = errors.New("unknown theme")

// Theme names.
const (
	ThemeGradient = "gradient"
	ThemeFlat     = "flat"
)

// Level holds the colors of one chart level.
type Level struct {
	From   color.NRGBA // gradient start (top-left)
	To     color.NRGBA // gradient end (bottom-right)
	Border color.NRGBA
	Text   color.NRGBA
}

// Gradient reports whether the level fill varies across the box.
func (l Level) Gradient() bool { return l.From != l.To }

// Theme is a complete color scheme.
type Theme struct {
	Name       string
	Background color.NRGBA

	Chart      []Level
	Connection color.NRGBA
	Shadow     color.NRGBA
	Band       color.NRGBA // equity band behind the chart label

	Tree          []color.NRGBA
	TreeFromAlpha uint8
	TreeToAlpha   uint8
	TreeConnector color.NRGBA
	TreeText      color.NRGBA
	BadgeText     color.NRGBA
}

// ChartLevel returns the colors for depth, clamping to the last entry.
func (t Theme) ChartLevel(depth int) Level {
	if len(t.Chart) == 0 {
		return Level{}
	}
	return t.Chart[min(max(depth, 0), len(t.Chart)-1)]
}

// TreeColor returns the row color for depth, cycling through the palette.
func (t Theme) TreeColor(depth int) color.NRGBA {
	if len(t.Tree) == 0 {
		return color.NRGBA{}
	}
	return t.Tree[max(depth, 0)%len(t.Tree)]
}

var white = Hex("#ffffff")

// Gradient returns the default theme.
func Gradient() Theme {
	return Theme{
		Name:       ThemeGradient,
		Background: color.NRGBA{},
		Chart: []Level{
			{From: Hex("#667eea"), To: Hex("#764ba2"), Border: Hex("#5a67d8"), Text: white},
			{From: Hex("#f093fb"), To: Hex("#f5576c"), Border: Hex("#e53e3e"), Text: white},
			{From: Hex("#4facfe"), To: Hex("#00f2fe"), Border: Hex("#3182ce"), Text: white},
			{From: Hex("#43e97b"), To: Hex("#38f9d7"), Border: Hex("#38a169"), Text: white},
		},
		Connection: Hex("#cbd5e0"),
		Shadow:     color.NRGBA{A: 26},
		Band:       color.NRGBA{R: 255, G: 255, B: 255, A: 51},

		Tree:          []color.NRGBA{Hex("#667eea"), Hex("#f093fb"), Hex("#4facfe"), Hex("#43e97b"), Hex("#feca57")},
		TreeFromAlpha: 0x20,
		TreeToAlpha:   0x05,
		TreeConnector: Hex("#e2e8f0"),
		TreeText:      Hex("#2d3748"),
		BadgeText:     white,
	}
}

// Flat returns a theme with solid fills on a white background.
func Flat() Theme {
	t := Gradient()
	t.Name = ThemeFlat
	t.Background = white
	t.Shadow = color.NRGBA{}
	for i, l := range t.Chart {
		t.Chart[i].To = l.From
	}
	t.TreeToAlpha = t.TreeFromAlpha
	t.Connection = Hex("#a0aec0")
	t.TreeConnector = Hex("#cbd5e0")
	return t
}

var registry = map[string]func() Theme{
	ThemeGradient: Gradient,
	ThemeFlat:     Flat,
}

// ByName returns the theme registered under name.
func ByName(name string) (Theme, error) {
	fn, ok := registry[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownTheme, name, Names())
	}
	return fn(), nil
}

// Names returns the registered theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
