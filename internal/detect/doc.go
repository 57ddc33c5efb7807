// Package detect implements the structural pattern detectors that run
// before ordinary column projection:
//
//   - Installments: wide-format fee columns ("Term 1", "Installment 2",
//     "Q3") are unpivoted into long-format Payment rows.
//   - CompositeID: a single "Parent/Student" style identifier column is
//     split into separate parent and student ID columns.
//
// Both detectors are no-ops when their signal is absent and never fail.
package detect
