package styles

import (
	"errors"
	"image/color"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		fn   func(string) string
		want string
	}{
		{"chart short", "Holding Company", ChartLabel, "Holding Company"},
		{"chart exact", "12345678901234567890", ChartLabel, "12345678901234567890"},
		{"chart long", "Securities Depository Center", ChartLabel, "Securities Deposit..."},
		{"tree short", "Securities Depository Center", TreeLabel, "Securities Depository Center"},
		{"tree long", "The Very Long Name Of A Subsidiary Company Ltd", TreeLabel, "The Very Long Name Of A Subsidia..."},
		{"multibyte", "شركة السوق المالية السعودية تداول", ChartLabel, "شركة السوق المالية..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEscapeXML(t *testing.T) {
	if got := EscapeXML(`A & B <"Co">`); got != "A &amp; B &lt;&#34;Co&#34;&gt;" {
		t.Errorf("EscapeXML() = %q", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#667eea", color.NRGBA{0x66, 0x7e, 0xea, 0xff}, false},
		{"fff", color.NRGBA{0xff, 0xff, 0xff, 0xff}, false},
		{"#667eea20", color.NRGBA{0x66, 0x7e, 0xea, 0x20}, false},
		{"#12", color.NRGBA{}, true},
		{"#zzzzzz", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestThemeLevels(t *testing.T) {
	th := Gradient()
	if th.ChartLevel(7) != th.Chart[3] {
		t.Error("deep levels should clamp to the last chart entry")
	}
	if th.ChartLevel(0).From != Hex("#667eea") {
		t.Error("root level should start at #667eea")
	}
	if th.TreeColor(5) != th.Tree[0] || th.TreeColor(6) != th.Tree[1] {
		t.Error("tree palette should cycle")
	}
}

func TestFlatHasNoGradients(t *testing.T) {
	for i, l := range Flat().Chart {
		if l.Gradient() {
			t.Errorf("flat level %d has a gradient", i)
		}
	}
	if !Gradient().ChartLevel(0).Gradient() {
		t.Error("default theme should use gradients")
	}
}

func TestByName(t *testing.T) {
	if _, err := ByName("gradient"); err != nil {
		t.Errorf("ByName(gradient) error: %v", err)
	}
	if _, err := ByName("neon"); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("ByName(neon) error = %v, want ErrUnknownTheme", err)
	}
}
