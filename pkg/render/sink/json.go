package sink

import (
	"encoding/json"

	"github.com/matzehuels/orgchart/pkg/company"
	"github.com/matzehuels/orgchart/pkg/layout"
)

// JSONOption configures [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	theme string
	stats *company.Stats
}

// WithJSONTheme records the theme name in the output.
func WithJSONTheme(name string) JSONOption { return func(r *jsonRenderer) { r.theme = name } }

// WithJSONStats embeds record statistics in the output.
func WithJSONStats(s company.Stats) JSONOption { return func(r *jsonRenderer) { r.stats = &s } }

type jsonOutput struct {
	layout.Layout
	Theme string         `json:"theme,omitempty"`
	Stats *company.Stats `json:"stats,omitempty"`
}

// RenderJSON serializes the layout, plus optional metadata, as indented JSON.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	return json.MarshalIndent(jsonOutput{Layout: l, Theme: r.theme, Stats: r.stats}, "", "  ")
}
