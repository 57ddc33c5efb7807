// Package clean post-processes projected canonical tables: credential
// backfill for parents, list normalization for students, and primary-key
// deduplication for all three entities.
package clean

import (
	"strings"

	"school-onboarder/internal/diagnostic"
	"school-onboarder/internal/schema"
	"school-onboarder/internal/table"
)

// paymentListSeparator joins the entries of a student's Payments cell.
const paymentListSeparator = ", "

// Cleaner applies the per-entity cleaning rules.
type Cleaner struct {
	passwords PasswordGenerator
}

// New returns a Cleaner. A nil generator falls back to a randomly seeded
// FakerPasswords.
func New(passwords PasswordGenerator) *Cleaner {
	if passwords == nil {
		passwords = NewFakerPasswords(0)
	}

	return &Cleaner{passwords: passwords}
}

// Parents fills blank passwords with generated ones, then keeps the first
// row of every Parent ID when any Parent ID is known.
func (c *Cleaner) Parents(t *schema.Table, log *diagnostic.Log) {
	if t.Schema().Has(schema.ParentPassword) {
		generated := 0

		for i, v := range t.Column(schema.ParentPassword) {
			if !v.IsBlank() {
				continue
			}

			t.Set(i, schema.ParentPassword, table.Text(c.passwords.Generate()))
			generated++
		}

		if generated > 0 {
			log.Info(diagnostic.CodePasswords, "Generated random passwords for %d parents.", generated)
		}
	}

	if hasKeys(t, schema.ParentID) {
		removed := dedup(t, schema.ParentID)
		log.Info(diagnostic.CodeDuplicateRemoved,
			"Removed %d duplicate parents based on '%s'.", removed, schema.ParentID)
	}
}

// Students canonicalizes comma-separated Payments lists, then keeps the
// first row of every StudentID when any StudentID is known.
func (c *Cleaner) Students(t *schema.Table, log *diagnostic.Log) {
	if t.Schema().Has(schema.StudentPayments) {
		if normalizePaymentLists(t) {
			log.Info(diagnostic.CodePaymentsList, "Processed comma-separated payment assignments for students.")
		}
	}

	if hasKeys(t, schema.StudentID) {
		removed := dedup(t, schema.StudentID)
		log.Info(diagnostic.CodeDuplicateRemoved,
			"Removed %d duplicate students based on '%s'.", removed, schema.StudentID)
	}
}

// Payments keeps the first row of every payment ID when any ID is known.
func (c *Cleaner) Payments(t *schema.Table, log *diagnostic.Log) {
	if hasKeys(t, schema.PaymentID) {
		removed := dedup(t, schema.PaymentID)
		log.Info(diagnostic.CodeDuplicateRemoved,
			"Removed %d duplicate payments based on '%s'.", removed, schema.PaymentID)
	}
}

// NormalizePaymentList splits s on commas, trims every entry and rejoins
// them with ", ".
func NormalizePaymentList(s string) string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	return strings.Join(parts, paymentListSeparator)
}

// normalizePaymentLists rewrites every text cell of the Payments column and
// reports whether there was any.
func normalizePaymentLists(t *schema.Table) bool {
	touched := false

	for i, v := range t.Column(schema.StudentPayments) {
		if v.Kind() != table.KindText {
			continue
		}

		t.Set(i, schema.StudentPayments, table.Text(NormalizePaymentList(v.Text())))
		touched = true
	}

	return touched
}

func hasKeys(t *schema.Table, field string) bool {
	return t.Schema().Has(field) && !table.AllMissing(t.Column(field))
}

// dedup keeps the first row of every key of field and returns how many rows
// were dropped.
func dedup(t *schema.Table, field string) int {
	before := t.Len()

	t.Keep(table.DedupFirst(t.Column(field)))

	return before - t.Len()
}
