// Package project applies a resolved column mapping to a raw table,
// producing a canonical table with every schema field present.
package project

import (
	"slices"

	"school-onboarder/internal/match"
	"school-onboarder/internal/schema"
	"school-onboarder/internal/table"
)

// Rows projects t onto s through m: one output row per raw row, mapped
// fields copied from their source column, unmapped fields (and fields whose
// mapped column is absent from t) filled with missing values.
func Rows(t *table.Table, m *match.Mapping, s schema.Schema) *schema.Table {
	out := schema.NewTable(s, t.Len())

	for _, field := range s.Fields {
		name, ok := m.Column(field)
		if !ok {
			continue
		}

		col, ok := t.Column(name)
		if !ok {
			continue
		}

		out.SetColumn(field, slices.Clone(col.Values))
	}

	return out
}
