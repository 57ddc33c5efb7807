package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-onboarder/internal/keywords"
	"school-onboarder/internal/schema"
)

func TestRankCandidates(t *testing.T) {
	columns := []string{"Notes", "Passwd", "Pass word"}

	got := RankCandidates(columns, []string{"password"})
	require.Len(t, got, 3)

	assert.Equal(t, "Pass word", got[0].Column)
	assert.InDelta(t, 1.0, got[0].Score, 1e-9)
	assert.Equal(t, "Passwd", got[1].Column)
	assert.Equal(t, "password", got[1].Synonym)
	assert.Equal(t, "Notes", got[2].Column)

	assert.Equal(t, "Pass word", got.Best().Column)
	assert.Len(t, got.Top(2), 2)
	assert.Len(t, got.Top(10), 3)
	assert.Len(t, got.AboveThreshold(0.7), 2)
	assert.False(t, got.IsAmbiguous(0.1))
}

func TestRankCandidatesTiesKeepColumnOrder(t *testing.T) {
	got := RankCandidates([]string{"gradx", "grady"}, []string{"grade"})

	require.Len(t, got, 2)
	assert.Equal(t, "gradx", got[0].Column)
	assert.True(t, got.IsAmbiguous(0.01))
}

func TestCandidateListEmpty(t *testing.T) {
	var c CandidateList

	assert.Nil(t, c.Best())
	assert.Empty(t, c.Top(3))
	assert.False(t, c.IsAmbiguous(1))
}

func TestSuggest(t *testing.T) {
	columns := []string{"Parent ID", "Passwd", "E-mails", "Remarks"}
	dict := keywords.Default().Parent

	m, _ := Columns(columns, dict)
	require.True(t, m.Has(schema.ParentID))

	got := Suggest(m, dict, columns, DefaultSuggestionScore)

	require.Contains(t, got, schema.ParentPassword)
	assert.Equal(t, "Passwd", got[schema.ParentPassword].Column)

	require.Contains(t, got, schema.ParentEmail)
	assert.Equal(t, "E-mails", got[schema.ParentEmail].Column)
	assert.Equal(t, "e-mail", got[schema.ParentEmail].Synonym)

	assert.NotContains(t, got, schema.ParentID)
	assert.NotContains(t, got, schema.ParentPhone)
}
