// Package io reads and writes company record sets as JSON, CSV and XLSX.
//
// # Overview
//
// Record state lives only in memory; this package is how a set leaves the
// process and comes back in a later session. Formats are chosen by file
// extension in [ImportFile] and [ExportFile]:
//
//   - .json: an array of records, or an object with a "companies" array
//     (the extraction server's response body is accepted as is)
//   - .csv: "Company Name,Parent Company,Equity" with one row per record
//   - .xlsx: a "Companies" sheet with the same columns plus Level
//
// # CSV Format
//
// [WriteCSV] produces exactly the header line followed by one line per
// record, joined by "\n" with no trailing newline:
//
//	Company Name,Parent Company,Equity
//	Holding Company,,100%
//	Securities Depository Center,Holding Company,100%
//
// Fields that contain a comma, a quote or a line break are quoted per
// RFC 4180. [ReadCSV] accepts the same layout, ignores a UTF-8 byte order
// mark, matches header names case-insensitively and numbers the records
// from 1 in file order.
//
// # JSON Format
//
//	[
//	  {"id": 1, "name": "Holding Company", "parent": "", "equity": "100%", "level": 0}
//	]
//
// Missing ids are left at zero; [store.State.Load] assigns them.
//
// [store.State.Load]: github.com/matzehuels/orgchart/pkg/store
package io
