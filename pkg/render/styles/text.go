package styles

import (
	"bytes"
	"encoding/xml"
)

// Label budgets: a label longer than the limit keeps the first keep runes
// followed by "...".
const (
	ChartLabelLimit = 20
	ChartLabelKeep  = 18
	TreeLabelLimit  = 35
	TreeLabelKeep   = 32
)

// Truncate shortens s to keep runes plus "..." when it has more than limit runes.
func Truncate(s string, limit, keep int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:keep]) + "..."
}

// ChartLabel truncates a company name for a chart box.
func ChartLabel(name string) string { return Truncate(name, ChartLabelLimit, ChartLabelKeep) }

// TreeLabel truncates a company name for a tree row.
func TreeLabel(name string) string { return Truncate(name, TreeLabelLimit, TreeLabelKeep) }

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
