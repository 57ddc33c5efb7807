package match

import (
	"slices"

	"school-onboarder/internal/keywords"
)

// Columns matches raw column names against dict.
//
// Fields are visited in dictionary order and their synonyms in declared
// order. For each synonym the current pool is scanned in column order; the
// first column whose normalized name equals the normalized synonym is
// assigned and leaves the pool, so no other field of this call can take it.
// Fields without a match stay unmapped.
//
// It returns the mapping and the columns left in the pool, in column order.
func Columns(columns []string, dict keywords.Dictionary) (*Mapping, []string) {
	m := NewMapping(dict.Entity)

	pool := slices.Clone(columns)
	normalized := make([]string, len(pool))
	for i, c := range pool {
		normalized[i] = NormalizeHeader(c)
	}

	for _, entry := range dict.Entries {
		idx := firstMatch(normalized, entry.Synonyms)
		if idx < 0 {
			continue
		}

		m.Set(entry.Field, pool[idx])

		pool = slices.Delete(pool, idx, idx+1)
		normalized = slices.Delete(normalized, idx, idx+1)
	}

	return m, pool
}

// firstMatch returns the pool index claimed by the first synonym that
// matches any pool entry, or -1.
func firstMatch(normalizedPool, synonyms []string) int {
	for _, syn := range synonyms {
		want := NormalizeHeader(syn)
		if want == "" {
			continue
		}

		if i := slices.Index(normalizedPool, want); i >= 0 {
			return i
		}
	}

	return -1
}
