// Package reconcile runs the schema-reconciliation pipeline that turns a
// raw school export into canonical Parent, Student and Payment tables.
//
// Pipeline:
//  1. Installment extraction: wide fee columns → Payment rows; the fee
//     columns leave the main table
//  2. Column matching, per entity, over the remaining columns
//  3. Composite ID splitting when the Student mapping has no IDs
//  4. Row projection per entity (Payment is skipped when step 1 produced rows)
//  5. Cleaning and deduplication per entity
//  6. One warning per canonical field left unmapped
//
// The engine is synchronous and performs no I/O. Data-quality problems are
// reported as notifications, never as errors.
package reconcile
