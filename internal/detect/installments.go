package detect

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"school-onboarder/internal/diagnostic"
	"school-onboarder/internal/schema"
	"school-onboarder/internal/table"
)

var feeColumnPattern = regexp.MustCompile(`(?i)^(installment|term|q)\s*\d+`)

// Extraction is the outcome of Installments.
type Extraction struct {
	// Consumed lists every detected fee column, in table order. The caller
	// removes them from the main table.
	Consumed []string
	// References lists the identifier columns the reshape was keyed on.
	References []string
	// Rows is the number of Payment rows appended.
	Rows int
}

// IsFeeColumn reports whether name looks like a wide-format installment
// column such as "Term 1", "installment2" or "Q 3".
func IsFeeColumn(name string) bool {
	return feeColumnPattern.MatchString(name)
}

// FeeColumns returns the fee columns of t in table order.
func FeeColumns(t *table.Table) []string {
	var out []string

	for _, name := range t.Names() {
		if IsFeeColumn(name) {
			out = append(out, name)
		}
	}

	return out
}

// Installments detects wide-format fee columns and unpivots them into
// payments. Every (row, fee column) pair with a positive numeric amount
// becomes one Payment row named after the column, with sequential IDs that
// continue from payments.Len(). Missing, non-numeric and non-positive
// amounts are dropped.
func Installments(t *table.Table, payments *schema.Builder, log *diagnostic.Log) Extraction {
	fees := FeeColumns(t)
	if len(fees) == 0 {
		return Extraction{}
	}

	log.Info(diagnostic.CodeInstallments,
		"Found installment-like columns: %s. Unpivoting them into payment records.", quoteList(fees))

	refs := referenceColumns(t, fees)
	if len(refs) == 0 {
		refs = []string{t.Names()[0]}
		log.Warn(diagnostic.CodeFallbackID,
			"No clear ID column found for payments. Using '%s' as a reference ID.", refs[0])
	}

	next := payments.Len()
	added := 0

	for _, lr := range table.Melt(t, refs, fees) {
		amount, ok := lr.Value.Decimal()
		if !ok || !amount.IsPositive() {
			continue
		}

		payments.MustAppend(schema.Payment{
			ID:           table.Int(int64(next + added)),
			Name:         table.Text(lr.Variable),
			Amount:       table.Number(amount),
			AcademicYear: table.Missing(),
			DueDate:      table.Missing(),
		})

		added++
	}

	return Extraction{Consumed: fees, References: refs, Rows: added}
}

// referenceColumns returns the non-fee columns whose name mentions "id".
func referenceColumns(t *table.Table, fees []string) []string {
	var out []string

	for _, name := range t.Names() {
		if mentionsID(name) && !slices.Contains(fees, name) {
			out = append(out, name)
		}
	}

	return out
}

func mentionsID(name string) bool {
	return strings.Contains(strings.ToLower(name), "id")
}

func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("'%s'", n)
	}

	return "[" + strings.Join(quoted, ", ") + "]"
}
