package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-onboarder/internal/keywords"
	"school-onboarder/internal/schema"
)

func dict(e schema.Entity, entries ...keywords.Entry) keywords.Dictionary {
	return keywords.Dictionary{Entity: e, Entries: entries}
}

func TestColumnsDefaultParent(t *testing.T) {
	columns := []string{"Student Name", "parent_id", "Father Name", "Mobile", "E-mail", "Notes"}

	m, rest := Columns(columns, keywords.Default().Parent)

	assert.Equal(t, schema.EntityParent, m.Entity)
	assert.Equal(t, []string{"Parent ID", "First Name", "Phone", "Email"}, m.Fields())

	col, ok := m.Column("Parent ID")
	require.True(t, ok)
	assert.Equal(t, "parent_id", col)

	assert.Equal(t, []string{"Student Name", "Notes"}, rest)
	assert.Equal(t, []string{"Last Name", "Password"}, m.Unmapped(schema.For(schema.EntityParent)))
}

func TestColumnsSynonymOrderBeatsColumnOrder(t *testing.T) {
	d := dict(schema.EntityStudent,
		keywords.Entry{Field: "Name", Synonyms: []string{"student name", "name"}})

	m, _ := Columns([]string{"Name", "Student Name"}, d)

	col, _ := m.Column("Name")
	assert.Equal(t, "Student Name", col, "earlier synonym wins even though its column comes later")
}

func TestColumnsColumnOrderBreaksTies(t *testing.T) {
	d := dict(schema.EntityParent,
		keywords.Entry{Field: "Phone", Synonyms: []string{"phone"}})

	m, rest := Columns([]string{"PHONE", "phone", "Phone"}, d)

	col, _ := m.Column("Phone")
	assert.Equal(t, "PHONE", col)
	assert.Equal(t, []string{"phone", "Phone"}, rest)
}

func TestColumnsMatchedColumnLeavesPool(t *testing.T) {
	d := dict(schema.EntityPayment,
		keywords.Entry{Field: "Payment Name", Synonyms: []string{"name"}},
		keywords.Entry{Field: "ID", Synonyms: []string{"name", "id"}},
	)

	m, rest := Columns([]string{"Name", "Id"}, d)

	name, _ := m.Column("Payment Name")
	id, _ := m.Column("ID")
	assert.Equal(t, "Name", name)
	assert.Equal(t, "Id", id, "a column taken by an earlier field cannot be reused")
	assert.Empty(t, rest)
}

func TestColumnsNoPartialMatches(t *testing.T) {
	d := dict(schema.EntityPayment,
		keywords.Entry{Field: "Amount", Synonyms: []string{"amount"}})

	m, rest := Columns([]string{"Amount Paid", "amounts", "Total amount"}, d)

	assert.Equal(t, 0, m.Len())
	assert.Len(t, rest, 3)
}

func TestColumnsSameColumnAcrossEntities(t *testing.T) {
	columns := []string{"Name", "Amount"}

	students, _ := Columns(columns, keywords.Default().Student)
	payments, _ := Columns(columns, keywords.Default().Payment)

	s, _ := students.Column("Name")
	p, _ := payments.Column("Payment Name")
	assert.Equal(t, "Name", s)
	assert.Equal(t, "Name", p, "pools are scoped to one entity")
}

func TestColumnsDeterministic(t *testing.T) {
	columns := []string{"id", "Name", "Payment Name", "Year", "Deadline", "due date"}

	first, _ := Columns(columns, keywords.Default().Payment)
	for range 10 {
		again, _ := Columns(columns, keywords.Default().Payment)
		assert.Equal(t, first.String(), again.String())
	}
}

func TestColumnsIgnoresBlankSynonyms(t *testing.T) {
	d := dict(schema.EntityParent,
		keywords.Entry{Field: "Email", Synonyms: []string{" ", "email"}})

	m, rest := Columns([]string{"", "Email"}, d)

	col, _ := m.Column("Email")
	assert.Equal(t, "Email", col)
	assert.Equal(t, []string{""}, rest)
}

func TestMappingString(t *testing.T) {
	m := NewMapping(schema.EntityStudent)
	m.Set("parentid", "generated_parent_id")
	m.Set("StudentID", "generated_student_id")
	m.Set("parentid", "other")

	assert.Equal(t, "{'parentid': 'other', 'StudentID': 'generated_student_id'}", m.String())
	assert.Equal(t, 2, m.Len())

	var nilMapping *Mapping
	assert.False(t, nilMapping.Has("x"))
}

func TestColumnsFoldFullWidthHeaders(t *testing.T) {
	tests := []struct {
		column string
		field  string
	}{
		{"ＥＭＡＩＬ", schema.ParentEmail},
		{"Ｐａｒｅｎｔ　ＩＤ", schema.ParentID},
		{"Ｐｈｏｎｅ", schema.ParentPhone},
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			m, rest := Columns([]string{tt.column}, keywords.Default().Parent)

			col, ok := m.Column(tt.field)
			require.True(t, ok)
			assert.Equal(t, tt.column, col, "the raw name is kept in the mapping")
			assert.Empty(t, rest)
		})
	}
}
