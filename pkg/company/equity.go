package company

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidEquity is returned by [ParseEquity] for text that is not a percentage.
var ErrInvalidEquity = errors.New("invalid equity")

// ParseEquity converts equity text such as "51%", " 33.12 % " or "100" to a
// decimal percentage. The percent sign is optional.
func ParseEquity(s string) (decimal.Decimal, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimSpace(strings.TrimSuffix(v, "%"))
	if v == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", ErrInvalidEquity)
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidEquity, s)
	}
	return d, nil
}

// EquityOrZero parses s like [ParseEquity] and returns zero when it cannot be parsed.
func EquityOrZero(s string) decimal.Decimal {
	d, err := ParseEquity(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatEquity renders a percentage with the given number of decimal places
// and a trailing percent sign, e.g. FormatEquity(d, 1) == "50.0%".
func FormatEquity(d decimal.Decimal, places int32) string {
	return d.StringFixed(places) + "%"
}

// NormalizeEquity rewrites parseable equity text in canonical form: trimmed,
// no trailing zeros, percent sign appended ("51" → "51%", "33.120 %" →
// "33.12%"). Unparseable text is returned trimmed and otherwise unchanged.
func NormalizeEquity(s string) string {
	d, err := ParseEquity(s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return d.String() + "%"
}
