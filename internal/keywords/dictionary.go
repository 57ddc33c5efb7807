package keywords

import (
	"slices"

	"school-onboarder/internal/schema"
)

// Entry lists the acceptable raw header synonyms of one canonical field.
type Entry struct {
	Field    string
	Synonyms []string
}

// Dictionary is the ordered keyword table of one entity.
type Dictionary struct {
	Entity  schema.Entity
	Entries []Entry
}

// Set groups the dictionaries of all three entities.
type Set struct {
	Version string
	Parent  Dictionary
	Student Dictionary
	Payment Dictionary
}

// Fields returns the dictionary's fields in declared order.
func (d Dictionary) Fields() []string {
	out := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		out[i] = e.Field
	}

	return out
}

// Synonyms returns the synonyms declared for field, or nil.
func (d Dictionary) Synonyms(field string) []string {
	for _, e := range d.Entries {
		if e.Field == field {
			return slices.Clone(e.Synonyms)
		}
	}

	return nil
}

// Clone returns a deep copy of d.
func (d Dictionary) Clone() Dictionary {
	entries := make([]Entry, len(d.Entries))
	for i, e := range d.Entries {
		entries[i] = Entry{Field: e.Field, Synonyms: slices.Clone(e.Synonyms)}
	}

	return Dictionary{Entity: d.Entity, Entries: entries}
}

// For returns the dictionary of entity e.
func (s Set) For(e schema.Entity) Dictionary {
	switch e {
	case schema.EntityParent:
		return s.Parent
	case schema.EntityStudent:
		return s.Student
	case schema.EntityPayment:
		return s.Payment
	default:
		return Dictionary{Entity: e}
	}
}

// Default returns the built-in keyword dictionaries.
func Default() Set {
	return Set{
		Version: currentVersion,
		Parent: Dictionary{
			Entity: schema.EntityParent,
			Entries: []Entry{
				{schema.ParentID, []string{"parent id", "parentid", "parent_id"}},
				{schema.ParentFirstName, []string{"first name", "fname", "parent first name", "father name"}},
				{schema.ParentLastName, []string{"last name", "lname", "parent last name", "family name"}},
				{schema.ParentPhone, []string{"phone", "mobile", "contact", "phone number"}},
				{schema.ParentEmail, []string{"email", "e-mail"}},
				{schema.ParentPassword, []string{"password"}},
			},
		},
		Student: Dictionary{
			Entity: schema.EntityStudent,
			Entries: []Entry{
				{schema.StudentParentID, []string{"parent id", "parentid"}},
				{schema.StudentID, []string{"student id", "studentid", "student_id"}},
				{schema.StudentGrade, []string{"grade", "class"}},
				{schema.StudentName, []string{"student name", "studentname", "name", "full name"}},
				{schema.StudentPayments, []string{"payments", "fees", "installments"}},
				{schema.StudentDiscountName, []string{"discount name", "discount"}},
				{schema.StudentDiscountPayment, []string{"discount payment"}},
				{schema.StudentDeadline, []string{"deadline", "due date"}},
			},
		},
		Payment: Dictionary{
			Entity: schema.EntityPayment,
			Entries: []Entry{
				{schema.PaymentID, []string{"payment id", "fee id", "id"}},
				{schema.PaymentName, []string{"payment name", "fee name", "installment name", "name"}},
				{schema.PaymentAmount, []string{"amount", "price", "cost"}},
				{schema.PaymentAcademicYear, []string{"academic year", "year"}},
				{schema.PaymentDueDate, []string{"due date", "deadline"}},
			},
		},
	}
}
