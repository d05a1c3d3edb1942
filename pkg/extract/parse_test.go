package extract

import (
	"errors"
	"strings"
	"testing"
)

func TestParseCompanies(t *testing.T) {
	reply := "Here is the structure:\n```json\n" + `[
  {"id": 1, "name": " Holding ", "parent": "", "equity": "100%"},
  {"name": "Bank", "parent": "Holding"},
  {"id": "7", "equity": 51}
]` + "\n```\nLet me know if you need more."

	got, err := ParseCompanies(reply)
	if err != nil {
		t.Fatalf("ParseCompanies() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}

	if got[0].Name != "Holding" || got[0].ID != 1 {
		t.Errorf("record 0 = %+v", got[0])
	}
	if got[1].ID != 2 || got[1].Equity != "100%" || got[1].Parent != "Holding" {
		t.Errorf("record 1 defaults = %+v", got[1])
	}
	if got[2].ID != 7 || got[2].Name != "Company 3" || got[2].Equity != "51" {
		t.Errorf("record 2 = %+v", got[2])
	}
}

func TestParseCompaniesErrors(t *testing.T) {
	tests := map[string]string{
		"prose":       "I could not find any companies.",
		"broken json": `[{"name": "A",]`,
		"object":      `{"name": "A"}`,
	}
	for name, reply := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseCompanies(reply); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := ParseCompanies("[]"); !errors.Is(err, ErrNoCompanies) {
		t.Errorf("empty array error = %v, want ErrNoCompanies", err)
	}
}

func TestPreview(t *testing.T) {
	if got := Preview(""); got != SampleLoadedText {
		t.Errorf("Preview(\"\") = %q", got)
	}
	if got := Preview("short text"); got != "short text" {
		t.Errorf("Preview(short) = %q", got)
	}

	long := strings.Repeat("ä", PreviewLimit+20)
	got := Preview(long)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("long preview missing ellipsis")
	}
	if n := len([]rune(strings.TrimSuffix(got, "..."))); n != PreviewLimit {
		t.Errorf("preview runes = %d, want %d", n, PreviewLimit)
	}
}
