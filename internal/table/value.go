package table

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Kind identifies what a Value holds.
type Kind int

const (
	KindMissing Kind = iota
	KindText
	KindNumber
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	default:
		return "unknown"
	}
}

// Value is a single table cell. The zero Value is missing.
type Value struct {
	kind Kind
	text string
	num  decimal.Decimal
}

// Missing returns the explicit missing-value marker.
func Missing() Value {
	return Value{}
}

// Text returns a text cell. The empty string is a valid, non-missing value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Number returns a numeric cell.
func Number(d decimal.Decimal) Value {
	return Value{kind: KindNumber, num: d}
}

// Int returns a numeric cell holding i.
func Int(i int64) Value {
	return Number(decimal.NewFromInt(i))
}

// Float returns a numeric cell holding f.
func Float(f float64) Value {
	return Number(decimal.NewFromFloat(f))
}

// ParseCell converts a decoded spreadsheet cell into a Value.
// Blank cells become missing, cells that parse as decimals become numbers
// and everything else is kept verbatim as text.
func ParseCell(s string) Value {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Missing()
	}

	if d, err := decimal.NewFromString(trimmed); err == nil {
		return Number(d)
	}

	return Text(s)
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsMissing reports whether v is the missing marker.
func (v Value) IsMissing() bool {
	return v.kind == KindMissing
}

// IsBlank reports whether v is missing or an empty text.
func (v Value) IsBlank() bool {
	return v.kind == KindMissing || (v.kind == KindText && v.text == "")
}

// Text renders the value as a string. Missing renders as "".
func (v Value) Text() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return v.num.String()
	default:
		return ""
	}
}

// Decimal returns the numeric interpretation of v.
// Numeric text such as " 150.5 " is accepted; missing and non-numeric text are not.
func (v Value) Decimal() (decimal.Decimal, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindText:
		d, err := decimal.NewFromString(strings.TrimSpace(v.text))
		if err != nil {
			return decimal.Zero, false
		}

		return d, true
	default:
		return decimal.Zero, false
	}
}

// Key returns the identity of v used for deduplication.
// Keys are kind-tagged: the number 1 and the text "1" are different keys.
// Numbers are compared by value, so 1 and 1.0 share a key.
func (v Value) Key() string {
	switch v.kind {
	case KindText:
		return "t:" + v.text
	case KindNumber:
		return "n:" + v.num.String()
	default:
		return ""
	}
}

// Equal reports whether v and o hold the same kind and value.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}

	if v.kind == KindNumber {
		return v.num.Equal(o.num)
	}

	return v.text == o.text
}

// String implements fmt.Stringer.
func (v Value) String() string {
	if v.kind == KindMissing {
		return "<missing>"
	}

	return v.Text()
}
