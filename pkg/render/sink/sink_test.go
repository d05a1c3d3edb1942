package sink

import (
	"bytes"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/orgchart/pkg/company"
	"github.com/matzehuels/orgchart/pkg/hierarchy"
	"github.com/matzehuels/orgchart/pkg/layout"
	"github.com/matzehuels/orgchart/pkg/render/styles"
)

func sample(t *testing.T, mode layout.Mode) layout.Layout {
	t.Helper()
	f, err := hierarchy.Build(company.Sample())
	if err != nil {
		t.Fatal(err)
	}
	l, err := layout.Build(mode, f, layout.WithWidth(800))
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(sample(t, layout.ModeChart)))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.0 700.0"`) {
		t.Errorf("unexpected header: %.120s", svg)
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("document not closed")
	}
	for _, want := range []string{"Holding Company", "Equity: 51%", "linearGradient", "<path d=\"M "} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
}

func TestRenderSVGTreeIsDashed(t *testing.T) {
	svg := string(RenderSVG(sample(t, layout.ModeTree), WithTheme(styles.Flat())))
	if got := strings.Count(svg, `stroke-dasharray="5,5"`); got != 9 {
		t.Errorf("dashed connectors = %d, want 9", got)
	}
	if strings.Contains(svg, "linearGradient") {
		t.Error("flat theme should not emit gradients")
	}
}

func TestRenderSVGEscapesNames(t *testing.T) {
	f, _ := hierarchy.Build([]company.Record{{ID: 1, Name: "R&D <Labs>", Equity: "100%"}})
	svg := string(RenderSVG(layout.Chart(f)))
	if !strings.Contains(svg, "R&amp;D &lt;Labs&gt;") {
		t.Error("name not escaped")
	}
}

func TestSVGClearResets(t *testing.T) {
	l := sample(t, layout.ModeChart)
	a := RenderSVG(l)
	b := RenderSVG(l)
	if !bytes.Equal(a, b) {
		t.Error("rendering the same layout twice differs")
	}
}

func TestRenderPNGPixelRatio(t *testing.T) {
	l := sample(t, layout.ModeTree)
	for _, ratio := range []float64{1, 2} {
		data, err := RenderPNG(l, WithPixelRatio(ratio))
		if err != nil {
			t.Fatalf("RenderPNG() error: %v", err)
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		b := img.Bounds()
		if b.Dx() != int(l.Width*ratio) || b.Dy() != int(l.Height*ratio) {
			t.Errorf("ratio %v: size = %dx%d, want %vx%v", ratio, b.Dx(), b.Dy(), l.Width*ratio, l.Height*ratio)
		}
	}
}

func TestRenderPNGDrawsBoxes(t *testing.T) {
	l := sample(t, layout.ModeChart)
	data, err := RenderPNG(l, WithPixelRatio(1))
	if err != nil {
		t.Fatal(err)
	}
	img, _ := png.Decode(bytes.NewReader(data))
	root, _ := l.Position("Holding Company")

	// A point inside the root box, above the label, is opaque.
	_, _, _, a := img.At(int(root.X+5), int(root.Y+5)).RGBA()
	if a == 0 {
		t.Error("root box is transparent")
	}
	_, _, _, a = img.At(1, 1).RGBA()
	if a != 0 {
		t.Error("gradient theme background should be transparent")
	}
}

func TestRenderJSON(t *testing.T) {
	l := sample(t, layout.ModeChart)
	data, err := RenderJSON(l, WithJSONTheme("flat"), WithJSONStats(company.ComputeStats(company.Sample())))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.Mode != layout.ModeChart || len(out.Nodes) != 10 {
		t.Errorf("unexpected layout: mode=%s nodes=%d", out.Mode, len(out.Nodes))
	}
	if out.Theme != "flat" || out.Stats == nil || out.Stats.Levels != 3 {
		t.Errorf("metadata = %q %+v", out.Theme, out.Stats)
	}
}
