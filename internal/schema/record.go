package schema

import (
	"fmt"

	"school-onboarder/internal/table"
)

// Record is a typed row of one canonical entity.
type Record interface {
	Entity() Entity
	// Values returns the record's cells in schema field order.
	Values() []table.Value
}

// Parent is a typed Parent row.
type Parent struct {
	ParentID  table.Value
	FirstName table.Value
	LastName  table.Value
	Phone     table.Value
	Email     table.Value
	Password  table.Value
}

// Entity implements Record.
func (Parent) Entity() Entity { return EntityParent }

// Values implements Record.
func (p Parent) Values() []table.Value {
	return []table.Value{p.ParentID, p.FirstName, p.LastName, p.Phone, p.Email, p.Password}
}

// Student is a typed Student row.
type Student struct {
	ParentID        table.Value
	StudentID       table.Value
	Grade           table.Value
	Name            table.Value
	Payments        table.Value
	DiscountName    table.Value
	DiscountPayment table.Value
	Deadline        table.Value
}

// Entity implements Record.
func (Student) Entity() Entity { return EntityStudent }

// Values implements Record.
func (s Student) Values() []table.Value {
	return []table.Value{
		s.ParentID, s.StudentID, s.Grade, s.Name,
		s.Payments, s.DiscountName, s.DiscountPayment, s.Deadline,
	}
}

// Payment is a typed Payment row.
type Payment struct {
	ID           table.Value
	Name         table.Value
	Amount       table.Value
	AcademicYear table.Value
	DueDate      table.Value
}

// Entity implements Record.
func (Payment) Entity() Entity { return EntityPayment }

// Values implements Record.
func (p Payment) Values() []table.Value {
	return []table.Value{p.ID, p.Name, p.Amount, p.AcademicYear, p.DueDate}
}

// Parents reads a Parent table as typed records.
func Parents(t *Table) []Parent {
	mustEntity(t, EntityParent)

	out := make([]Parent, t.Len())
	for i := range out {
		r := t.Row(i)
		out[i] = Parent{r[0], r[1], r[2], r[3], r[4], r[5]}
	}

	return out
}

// Students reads a Student table as typed records.
func Students(t *Table) []Student {
	mustEntity(t, EntityStudent)

	out := make([]Student, t.Len())
	for i := range out {
		r := t.Row(i)
		out[i] = Student{r[0], r[1], r[2], r[3], r[4], r[5], r[6], r[7]}
	}

	return out
}

// Payments reads a Payment table as typed records.
func Payments(t *Table) []Payment {
	mustEntity(t, EntityPayment)

	out := make([]Payment, t.Len())
	for i := range out {
		r := t.Row(i)
		out[i] = Payment{r[0], r[1], r[2], r[3], r[4]}
	}

	return out
}

func mustEntity(t *Table, e Entity) {
	if t.schema.Entity != e {
		panic(fmt.Sprintf("schema: expected a %s table, got %s", e, t.schema.Entity))
	}
}

// Builder accumulates typed records into a canonical table.
type Builder struct {
	t *Table
}

// NewBuilder returns an empty builder for s.
func NewBuilder(s Schema) *Builder {
	return &Builder{t: NewTable(s, 0)}
}

// Len returns the number of rows appended so far.
func (b *Builder) Len() int {
	return b.t.Len()
}

// Append adds r as a new row. It returns an error when r belongs to a
// different entity than the builder.
func (b *Builder) Append(r Record) error {
	if r.Entity() != b.t.schema.Entity {
		return fmt.Errorf("cannot append %s record to %s table", r.Entity(), b.t.schema.Entity)
	}

	b.t.appendRow(r.Values())

	return nil
}

// MustAppend is like Append but panics on an entity mismatch.
func (b *Builder) MustAppend(r Record) {
	if err := b.Append(r); err != nil {
		panic("schema: " + err.Error())
	}
}

// Table returns the accumulated table. The builder must not be used afterwards.
func (b *Builder) Table() *Table {
	return b.t
}
