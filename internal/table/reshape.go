package table

// LongRow is one (row, variable) pair produced by Melt.
type LongRow struct {
	// Row is the index of the source row.
	Row int
	// IDs holds the identifier cells of the source row, in idVars order.
	IDs []Value
	// Variable is the name of the melted column.
	Variable string
	// Value is the cell found at (Row, Variable).
	Value Value
}

// Melt unpivots valueVars into long format, keeping idVars as identifiers.
// Output is row-major: every value column of row 0, then row 1, and so on.
// Names that do not exist in the table are ignored.
func Melt(t *Table, idVars, valueVars []string) []LongRow {
	ids := lookup(t, idVars)
	vals := lookup(t, valueVars)

	out := make([]LongRow, 0, t.Len()*len(vals))
	for r := 0; r < t.Len(); r++ {
		idCells := make([]Value, len(ids))
		for i, c := range ids {
			idCells[i] = c.Values[r]
		}

		for _, c := range vals {
			out = append(out, LongRow{
				Row:      r,
				IDs:      idCells,
				Variable: c.Name,
				Value:    c.Values[r],
			})
		}
	}

	return out
}

// DedupFirst returns the indices of the rows to keep when deduplicating on
// keys: the first occurrence of every key survives, in original order.
// Rows with a missing key are always kept.
func DedupFirst(keys []Value) []int {
	seen := make(map[string]struct{}, len(keys))
	kept := make([]int, 0, len(keys))

	for i, k := range keys {
		if k.IsMissing() {
			kept = append(kept, i)
			continue
		}

		key := k.Key()
		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}
		kept = append(kept, i)
	}

	return kept
}

// AllMissing reports whether every value is missing. An empty slice counts
// as all missing.
func AllMissing(values []Value) bool {
	for _, v := range values {
		if !v.IsMissing() {
			return false
		}
	}

	return true
}

func lookup(t *Table, names []string) []Column {
	out := make([]Column, 0, len(names))
	for _, name := range names {
		if c, ok := t.Column(name); ok {
			out = append(out, c)
		}
	}

	return out
}
