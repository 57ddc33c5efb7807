package table

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Column is a named, ordered sequence of cells.
type Column struct {
	Name   string
	Values []Value
}

// Table is an ordered sequence of equally long columns. Column names are
// unique; constructors rename clashes with UniqueNames.
// Tables are treated as immutable: operations that change the column set
// return a new Table sharing the untouched columns.
type Table struct {
	columns []Column
	rows    int
}

// New builds a table from columns, keeping their order.
// Columns shorter than the longest one are padded with missing values.
// Repeated or blank names are renamed as UniqueNames describes.
func New(columns ...Column) *Table {
	rows := 0
	names := make([]string, len(columns))

	for i, c := range columns {
		rows = max(rows, len(c.Values))
		names[i] = c.Name
	}

	names = UniqueNames(names)

	out := make([]Column, len(columns))
	for i, c := range columns {
		values := make([]Value, rows)
		copy(values, c.Values)
		out[i] = Column{Name: names[i], Values: values}
	}

	return &Table{columns: out, rows: rows}
}

// FromRows builds a table from a header and row-major data.
// Short rows are padded with missing values; cells beyond the header are dropped.
// Header names go through UniqueNames.
func FromRows(header []string, rows [][]Value) *Table {
	header = UniqueNames(header)
	columns := make([]Column, len(header))
	for i, name := range header {
		values := make([]Value, len(rows))
		for r, row := range rows {
			if i < len(row) {
				values[r] = row[i]
			}
		}

		columns[i] = Column{Name: name, Values: values}
	}

	return &Table{columns: columns, rows: len(rows)}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return t.rows
}

// Width returns the number of columns.
func (t *Table) Width() int {
	if t == nil {
		return 0
	}

	return len(t.columns)
}

// Names returns the column names in table order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}

	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}

	return names
}

// Columns returns the columns in table order.
func (t *Table) Columns() []Column {
	if t == nil {
		return nil
	}

	return slices.Clone(t.columns)
}

// Column returns the first column with the given name.
func (t *Table) Column(name string) (Column, bool) {
	if t == nil {
		return Column{}, false
	}

	for _, c := range t.columns {
		if c.Name == name {
			return c, true
		}
	}

	return Column{}, false
}

// Has reports whether a column with the given name exists.
func (t *Table) Has(name string) bool {
	_, ok := t.Column(name)
	return ok
}

// Row returns the cells of row i in column order.
func (t *Table) Row(i int) []Value {
	row := make([]Value, len(t.columns))
	for c := range t.columns {
		row[c] = t.columns[c].Values[i]
	}

	return row
}

// Drop returns a table without the named columns.
func (t *Table) Drop(names ...string) *Table {
	if t == nil {
		return New()
	}

	kept := make([]Column, 0, len(t.columns))
	for _, c := range t.columns {
		if !slices.Contains(names, c.Name) {
			kept = append(kept, c)
		}
	}

	return &Table{columns: kept, rows: t.rows}
}

// With returns a table with col appended as the last column.
// The column is padded or truncated to the table's row count, and renamed
// like UniqueNames would if its name is already taken.
func (t *Table) With(col Column) *Table {
	if t == nil {
		return New(col)
	}

	values := make([]Value, t.rows)
	copy(values, col.Values)

	names := UniqueNames(append(t.Names(), col.Name))
	columns := append(slices.Clone(t.columns), Column{Name: names[len(names)-1], Values: values})

	return &Table{columns: columns, rows: t.rows}
}

// UniqueName returns base if no column uses it yet, otherwise the first
// free "base_N" variant.
func (t *Table) UniqueName(base string) string {
	if !t.Has(base) {
		return base
	}

	for i := 1; ; i++ {
		name := fmt.Sprintf("%s_%d", base, i)
		if !t.Has(name) {
			return name
		}
	}
}

// UniqueNames renames repeated names to "name.1", "name.2", ... and blank
// ones to "Unnamed: i", where i is the zero-based position. Names already
// unique and non-blank are returned unchanged.
func UniqueNames(names []string) []string {
	out := make([]string, len(names))
	used := make(map[string]bool, len(names))

	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}

		candidate := name
		for n := 1; used[candidate]; n++ {
			candidate = name + "." + strconv.Itoa(n)
		}

		used[candidate] = true
		out[i] = candidate
	}

	return out
}
