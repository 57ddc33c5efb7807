package schema

import (
	"fmt"
	"slices"

	"school-onboarder/internal/table"
)

// Table is a canonical table: exactly one column per schema field, in schema
// order, all of equal length.
type Table struct {
	schema  Schema
	columns [][]table.Value
	rows    int
}

// NewTable returns a table with the schema's columns and rows rows of
// missing values.
func NewTable(s Schema, rows int) *Table {
	columns := make([][]table.Value, len(s.Fields))
	for i := range columns {
		columns[i] = make([]table.Value, rows)
	}

	return &Table{schema: s, columns: columns, rows: rows}
}

// Schema returns the table's schema.
func (t *Table) Schema() Schema {
	return t.schema
}

// Fields returns the field names in schema order.
func (t *Table) Fields() []string {
	return slices.Clone(t.schema.Fields)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.rows
}

// Column returns the values of field. It panics if field is not part of the
// schema: asking for a non-canonical field is a programming error.
func (t *Table) Column(field string) []table.Value {
	return t.columns[t.mustIndex(field)]
}

// SetColumn replaces the values of field. values must have Len() entries.
func (t *Table) SetColumn(field string, values []table.Value) {
	if len(values) != t.rows {
		panic(fmt.Sprintf("schema: column %q has %d values, table has %d rows", field, len(values), t.rows))
	}

	t.columns[t.mustIndex(field)] = values
}

// Set stores v at (row, field).
func (t *Table) Set(row int, field string, v table.Value) {
	t.columns[t.mustIndex(field)][row] = v
}

// Get returns the value at (row, field).
func (t *Table) Get(row int, field string) table.Value {
	return t.columns[t.mustIndex(field)][row]
}

// Row returns row i in schema field order.
func (t *Table) Row(i int) []table.Value {
	out := make([]table.Value, len(t.columns))
	for c := range t.columns {
		out[c] = t.columns[c][i]
	}

	return out
}

// Keep retains only the given rows, in the given order.
func (t *Table) Keep(rows []int) {
	for c, col := range t.columns {
		kept := make([]table.Value, len(rows))
		for i, r := range rows {
			kept[i] = col[r]
		}

		t.columns[c] = kept
	}

	t.rows = len(rows)
}

// appendRow adds one row; values are in schema field order.
func (t *Table) appendRow(values []table.Value) {
	for c := range t.columns {
		t.columns[c] = append(t.columns[c], values[c])
	}

	t.rows++
}

func (t *Table) mustIndex(field string) int {
	i := t.schema.Index(field)
	if i < 0 {
		panic(fmt.Sprintf("schema: %q is not a %s field", field, t.schema.Entity))
	}

	return i
}
