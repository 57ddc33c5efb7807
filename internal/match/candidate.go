package match

import (
	"slices"

	"school-onboarder/internal/keywords"
)

// DefaultSuggestionScore is the similarity a column needs before it is
// offered as a near miss for an unmapped field.
const DefaultSuggestionScore = 0.7

// Candidate is a raw column that nearly matches one of a field's synonyms.
// Candidates are advisory: the matcher itself only accepts exact matches
// after normalization.
type Candidate struct {
	Column string
	// Synonym is the synonym the column came closest to.
	Synonym string
	// Score is the Similarity between Column and Synonym.
	Score float64
}

// CandidateList is a list of candidates, best first.
type CandidateList []Candidate

// RankCandidates scores every column against synonyms and returns them
// sorted by score, descending. Ties keep column order.
func RankCandidates(columns, synonyms []string) CandidateList {
	candidates := make(CandidateList, 0, len(columns))

	for _, col := range columns {
		best := Candidate{Column: col}

		for _, syn := range synonyms {
			if score := Similarity(col, syn); score > best.Score {
				best.Score = score
				best.Synonym = syn
			}
		}

		candidates = append(candidates, best)
	}

	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	return candidates
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if there is none.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns the candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// IsAmbiguous reports whether the top two candidates score within
// threshold of each other.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	return c[0].Score-c[1].Score < threshold
}

// Suggest proposes, for every field of dict that m leaves unmapped, the
// closest column scoring at least minScore. Columns already claimed by m
// are not considered. Fields without a candidate are absent from the
// result.
//
// The reconciliation engine never calls Suggest; its candidates are hints
// for a person and never become part of a Mapping.
func Suggest(m *Mapping, dict keywords.Dictionary, columns []string, minScore float64) map[string]Candidate {
	claimed := make(map[string]bool, m.Len())
	for _, f := range m.Fields() {
		col, _ := m.Column(f)
		claimed[col] = true
	}

	free := slices.DeleteFunc(slices.Clone(columns), func(c string) bool { return claimed[c] })

	out := make(map[string]Candidate)

	for _, entry := range dict.Entries {
		if m.Has(entry.Field) {
			continue
		}

		if best := RankCandidates(free, entry.Synonyms).AboveThreshold(minScore).Best(); best != nil {
			out[entry.Field] = *best
		}
	}

	return out
}
