// Package diagnostic provides the ordered notification log produced by a
// reconciliation run.
//
// Key capabilities:
//   - Unmapped field warnings
//   - Structural detection reports (installment columns, composite IDs)
//   - Cleaning and deduplication summaries
//
// Every entry carries an explicit severity. For consumers that only see
// strings, warnings render with a "Warning: " prefix.
package diagnostic
