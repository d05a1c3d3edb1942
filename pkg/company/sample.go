package company

// Sample returns the ten-record holding structure loaded by the "sample data"
// action: one holding company, six direct subsidiaries and three
// second-level subsidiaries under Direct Financial Network.
func Sample() []Record {
	return []Record{
		{ID: 1, Name: "Holding Company", Parent: "", Equity: "100%", Level: 0},
		{ID: 2, Name: "Securities Depository Center", Parent: "Holding Company", Equity: "100%", Level: 1},
		{ID: 3, Name: "Securities Clearing Center", Parent: "Holding Company", Equity: "100%", Level: 1},
		{ID: 4, Name: "Saudi Exchange Company", Parent: "Holding Company", Equity: "100%", Level: 1},
		{ID: 5, Name: "Tadawul Advance Solution", Parent: "Holding Company", Equity: "100%", Level: 1},
		{ID: 6, Name: "Direct Financial Network", Parent: "Holding Company", Equity: "51%", Level: 1},
		{ID: 7, Name: "DFN ME Dubai Center", Parent: "Direct Financial Network", Equity: "100%", Level: 2},
		{ID: 8, Name: "DFN Sri Lanka", Parent: "Direct Financial Network", Equity: "99%", Level: 2},
		{ID: 9, Name: "DFN Pakistan", Parent: "Direct Financial Network", Equity: "99%", Level: 2},
		{ID: 10, Name: "Real Estate Company", Parent: "Holding Company", Equity: "33.12%", Level: 1},
	}
}

// FallbackSample returns the record set the extraction server answers with
// when a document yields no usable text. It extends [Sample] with the
// Carbon Market Company.
func FallbackSample() []Record {
	return append(Sample(), Record{ID: 11, Name: "Carbon Market Company", Parent: "Holding Company", Equity: "20%", Level: 1})
}
