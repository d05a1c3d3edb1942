package company

import "github.com/shopspring/decimal"

// Stats summarizes a record set for the statistics panel.
type Stats struct {
	TotalCompanies int    `json:"total_companies"`
	Subsidiaries   int    `json:"subsidiaries"`
	AvgEquity      string `json:"avg_equity"` // e.g. "88.2%"
	Levels         int    `json:"levels"`     // depth of the deepest record plus one
}

// ComputeStats derives the statistics for records.
//
// Subsidiaries counts records with a non-empty parent, whether or not the
// parent exists. AvgEquity is the mean of all equity values with one decimal
// place; values that cannot be parsed contribute zero. Levels is computed
// from the parent chain, so stale Level fields do not affect it. An empty set
// yields AvgEquity "0%" and Levels 0.
func ComputeStats(records []Record) Stats {
	s := Stats{TotalCompanies: len(records), AvgEquity: "0%"}
	if len(records) == 0 {
		return s
	}

	sum := decimal.Zero
	for _, r := range records {
		if !r.IsRoot() {
			s.Subsidiaries++
		}
		sum = sum.Add(EquityOrZero(r.Equity))
	}
	avg := sum.Div(decimal.NewFromInt(int64(len(records))))
	s.AvgEquity = FormatEquity(avg, 1)
	s.Levels = MaxLevel(AssignLevels(records)) + 1
	return s
}
