// Package match resolves raw spreadsheet headers against a keyword
// dictionary.
//
// Key functions:
//   - NormalizeHeader: canonical form used on both sides of a comparison
//   - Columns: dictionary-ordered, first-match-wins column matcher
//   - Suggest: near-miss hints for fields Columns left unmapped
//
// Columns matches exactly after normalization. Suggest scores headers by
// edit distance, but its candidates are only ever shown to a person; they
// never enter a Mapping.
package match
