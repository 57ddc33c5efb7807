// Package table provides the in-memory raw table the reconciliation engine
// works on, together with the generic, order-preserving table operations it
// needs.
//
// A [Table] is an ordered sequence of named columns. Column order is
// significant: keyword tie-breaks, fallback identifier selection and
// composite ID detection all pick "the first column" by this order, so
// tables are never keyed by an unordered map.
//
// Cells are [Value]s: a tagged union of missing, text and decimal number.
// Missing is an explicit marker and is distinct from the empty string.
//
// Generic operations:
//   - [Melt]: wide to long reshape (unpivot), row-major, O(rows × columns)
//   - [DedupFirst]: first-occurrence deduplication, O(rows)
package table
