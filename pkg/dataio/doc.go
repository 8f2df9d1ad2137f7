// Package dataio reads and writes numeric tables for the jetplot CLI.
//
// A [Table] is a dense matrix of observations (rows) by variables
// (columns) with optional column names. Three encodings are supported and
// chosen by file extension in [Import] and [Export]:
//
//   - .csv: comma separated, optional header row
//   - .tsv: tab separated, optional header row
//   - .json: {"columns": [...], "data": [[...], ...]}
//
// A header row is detected when any field of the first record does not
// parse as a number. Lines starting with '#' are comments. Empty fields
// and "nan" read as NaN, which the chart package draws as a gap.
package dataio
