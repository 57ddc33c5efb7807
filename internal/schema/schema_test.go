package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-onboarder/internal/table"
)

func TestCanonicalFieldSets(t *testing.T) {
	assert.Equal(t,
		[]string{"Parent ID", "First Name", "Last Name", "Phone", "Email", "Password"},
		For(EntityParent).Fields)
	assert.Equal(t,
		[]string{"parentid", "StudentID", "grade", "Name", "Payments", "Discount Name", "Discount Payment", "Deadline"},
		For(EntityStudent).Fields)
	assert.Equal(t,
		[]string{"ID", "Payment Name", "Amount", "AcademicYear", "dueDate"},
		For(EntityPayment).Fields)
}

func TestForReturnsCopy(t *testing.T) {
	s := For(EntityParent)
	s.Fields[0] = "mutated"

	assert.Equal(t, ParentID, For(EntityParent).Fields[0])
}

func TestNewTableIsMissingFilled(t *testing.T) {
	tbl := NewTable(For(EntityStudent), 3)

	require.Equal(t, 3, tbl.Len())
	for _, f := range tbl.Fields() {
		assert.True(t, table.AllMissing(tbl.Column(f)), f)
	}
}

func TestTableKeep(t *testing.T) {
	tbl := NewTable(For(EntityPayment), 3)
	tbl.SetColumn(PaymentID, []table.Value{table.Int(0), table.Int(1), table.Int(2)})

	tbl.Keep([]int{2, 0})

	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, "2", tbl.Get(0, PaymentID).Text())
	assert.Equal(t, "0", tbl.Get(1, PaymentID).Text())
}

func TestUnknownFieldPanics(t *testing.T) {
	tbl := NewTable(For(EntityParent), 1)

	assert.Panics(t, func() { tbl.Column(StudentID) })
	assert.Panics(t, func() { tbl.SetColumn(ParentID, nil) })
}

func TestBuilderAndRecords(t *testing.T) {
	b := NewBuilder(For(EntityPayment))

	require.NoError(t, b.Append(Payment{ID: table.Int(0), Name: table.Text("Term 1"), Amount: table.Int(100)}))
	require.NoError(t, b.Append(Payment{ID: table.Int(1), Name: table.Text("Term 2"), Amount: table.Int(50)}))
	assert.Error(t, b.Append(Student{}))
	assert.Equal(t, 2, b.Len())

	records := Payments(b.Table())
	require.Len(t, records, 2)
	assert.Equal(t, "Term 2", records[1].Name.Text())
	assert.True(t, records[0].AcademicYear.IsMissing())
	assert.True(t, records[0].DueDate.IsMissing())
}

func TestRecordValuesFollowSchemaOrder(t *testing.T) {
	p := Parent{ParentID: table.Text("P1"), Password: table.Text("pw")}
	vals := p.Values()

	require.Len(t, vals, len(For(EntityParent).Fields))
	assert.Equal(t, "P1", vals[For(EntityParent).Index(ParentID)].Text())
	assert.Equal(t, "pw", vals[For(EntityParent).Index(ParentPassword)].Text())

	s := Student{Name: table.Text("Alice")}
	assert.Equal(t, "Alice", s.Values()[For(EntityStudent).Index(StudentName)].Text())
}

func TestRecordsPanicOnWrongEntity(t *testing.T) {
	assert.Panics(t, func() { Parents(NewTable(For(EntityStudent), 0)) })
}
