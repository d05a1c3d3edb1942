package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/orgchart/pkg/company"
)

// ErrNoCompanies is returned when a model reply holds no company entries.
var ErrNoCompanies = errors.New("no companies in model reply")

var jsonArray = regexp.MustCompile(`(?s)\[.*\]`)

// ParseCompanies reads the JSON array of companies out of a model reply.
// Text around the outermost brackets is ignored. Missing fields get
// defaults: name "Company N" (1-based), parent "" and equity "100%"; a
// missing id becomes the entry's position.
func ParseCompanies(reply string) ([]company.Record, error) {
	raw := strings.TrimSpace(reply)
	if m := jsonArray.FindString(raw); m != "" {
		raw = m
	}

	var entries []map[string]any
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("decode model reply: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrNoCompanies
	}

	records := make([]company.Record, 0, len(entries))
	for i, e := range entries {
		records = append(records, company.Record{
			ID:     intField(e["id"], i+1),
			Name:   textField(e["name"], fmt.Sprintf("Company %d", i+1)),
			Parent: textField(e["parent"], ""),
			Equity: textField(e["equity"], "100%"),
		})
	}
	return records, nil
}

func textField(v any, def string) string {
	switch v := v.(type) {
	case nil:
		return def
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func intField(v any, def int) int {
	switch v := v.(type) {
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}
