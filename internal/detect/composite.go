package detect

import (
	"strings"

	"school-onboarder/internal/diagnostic"
	"school-onboarder/internal/match"
	"school-onboarder/internal/schema"
	"school-onboarder/internal/table"
)

const (
	compositeSeparator = "/"

	// GeneratedParentColumn and GeneratedStudentColumn name the columns
	// added by CompositeID. A numeric suffix is appended on collision.
	GeneratedParentColumn  = "generated_parent_id"
	GeneratedStudentColumn = "generated_student_id"
)

// CompositeID splits a combined parent/student identifier column.
//
// It only runs when students maps neither parentid nor StudentID. The first
// column (in table order) whose name mentions "id" and which holds at least
// one value containing "/" is split at the first "/" into two new columns,
// and students is pointed at them. Without such a column the table is
// returned unchanged and nothing is logged.
func CompositeID(t *table.Table, students *match.Mapping, log *diagnostic.Log) *table.Table {
	if students.Has(schema.StudentParentID) || students.Has(schema.StudentID) {
		return t
	}

	for _, col := range t.Columns() {
		if !mentionsID(col.Name) || !anyContains(col.Values, compositeSeparator) {
			continue
		}

		log.Info(diagnostic.CodeCompositeID,
			"Found a combined ID column: '%s'. Splitting into Parent and Student IDs.", col.Name)

		parents, children := splitValues(col.Values)

		parentName := t.UniqueName(GeneratedParentColumn)
		out := t.With(table.Column{Name: parentName, Values: parents})

		studentName := out.UniqueName(GeneratedStudentColumn)
		out = out.With(table.Column{Name: studentName, Values: children})

		students.Set(schema.StudentParentID, parentName)
		students.Set(schema.StudentID, studentName)

		return out
	}

	return t
}

func anyContains(values []table.Value, sep string) bool {
	for _, v := range values {
		if v.Kind() == table.KindText && strings.Contains(v.Text(), sep) {
			return true
		}
	}

	return false
}

// splitValues splits every value at the first separator. Missing stays
// missing on both sides; a value without separator keeps its text on the
// left and is missing on the right.
func splitValues(values []table.Value) (left, right []table.Value) {
	left = make([]table.Value, len(values))
	right = make([]table.Value, len(values))

	for i, v := range values {
		if v.IsMissing() {
			continue
		}

		before, after, found := strings.Cut(v.Text(), compositeSeparator)

		left[i] = table.Text(before)
		if found {
			right[i] = table.Text(after)
		}
	}

	return left, right
}
