// Package company defines the flat company record that every other orgchart
// package works on, together with the small amount of arithmetic the
// application needs over a record set.
//
// # Records
//
// A [Record] is one row of an organizational chart: a company name, the name
// of its parent company (empty for a root), and the parent's equity stake as
// display text such as "51%" or "33.12%". Names are the join key between
// records, so they must be unique within a loaded set. IDs are assigned by
// the caller; [NextID] computes the id for a newly added record.
//
// The Level field is advisory. [AssignLevels] recomputes it from the parent
// chain, stopping at records whose parent cannot be resolved and guarding
// against parent cycles.
//
// # Equity
//
// Equity values are kept as text so that they round-trip exactly through the
// extraction service, CSV export and the editor. [ParseEquity] converts them
// to [decimal.Decimal] for statistics; unparsable values are reported as an
// error and treated as zero by [ComputeStats].
//
// # Sample Data
//
// [Sample] returns the ten-record holding structure used by the "load sample"
// action. [FallbackSample] returns the eleven-record variant the extraction
// server answers with when no meaningful text could be read from a document.
//
// [decimal.Decimal]: github.com/shopspring/decimal.Decimal
package company
