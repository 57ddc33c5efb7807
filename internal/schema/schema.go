// Package schema defines the three canonical entities (Parent, Student,
// Payment), their fixed field sets, and the canonical tables the engine
// produces for them.
package schema

import "slices"

// Entity identifies one of the canonical target entities.
type Entity int

const (
	EntityParent Entity = iota
	EntityStudent
	EntityPayment
)

// Entities lists every entity in output order.
var Entities = []Entity{EntityParent, EntityStudent, EntityPayment}

// String returns the entity name used in notifications and sheet names.
func (e Entity) String() string {
	switch e {
	case EntityParent:
		return "Parent"
	case EntityStudent:
		return "Student"
	case EntityPayment:
		return "Payment"
	default:
		return "unknown"
	}
}

// Parent fields.
const (
	ParentID        = "Parent ID"
	ParentFirstName = "First Name"
	ParentLastName  = "Last Name"
	ParentPhone     = "Phone"
	ParentEmail     = "Email"
	ParentPassword  = "Password"
)

// Student fields.
const (
	StudentParentID        = "parentid"
	StudentID              = "StudentID"
	StudentGrade           = "grade"
	StudentName            = "Name"
	StudentPayments        = "Payments"
	StudentDiscountName    = "Discount Name"
	StudentDiscountPayment = "Discount Payment"
	StudentDeadline        = "Deadline"
)

// Payment fields.
const (
	PaymentID           = "ID"
	PaymentName         = "Payment Name"
	PaymentAmount       = "Amount"
	PaymentAcademicYear = "AcademicYear"
	PaymentDueDate      = "dueDate"
)

// Schema is the ordered field set of one entity.
type Schema struct {
	Entity Entity
	Fields []string
}

var (
	parentSchema = Schema{
		Entity: EntityParent,
		Fields: []string{ParentID, ParentFirstName, ParentLastName, ParentPhone, ParentEmail, ParentPassword},
	}
	studentSchema = Schema{
		Entity: EntityStudent,
		Fields: []string{
			StudentParentID, StudentID, StudentGrade, StudentName,
			StudentPayments, StudentDiscountName, StudentDiscountPayment, StudentDeadline,
		},
	}
	paymentSchema = Schema{
		Entity: EntityPayment,
		Fields: []string{PaymentID, PaymentName, PaymentAmount, PaymentAcademicYear, PaymentDueDate},
	}
)

// For returns the canonical schema of e. The returned value is a copy.
func For(e Entity) Schema {
	var s Schema

	switch e {
	case EntityParent:
		s = parentSchema
	case EntityStudent:
		s = studentSchema
	case EntityPayment:
		s = paymentSchema
	default:
		return Schema{Entity: e}
	}

	return Schema{Entity: s.Entity, Fields: slices.Clone(s.Fields)}
}

// Has reports whether field belongs to the schema.
func (s Schema) Has(field string) bool {
	return slices.Contains(s.Fields, field)
}

// Index returns the position of field, or -1.
func (s Schema) Index(field string) int {
	return slices.Index(s.Fields, field)
}
