package keywords

import (
	"errors"
	"fmt"
	"strings"

	"school-onboarder/internal/schema"
)

// ErrInvalidDictionary is matched by every dictionary contract violation.
var ErrInvalidDictionary = errors.New("invalid keyword dictionary")

// ContractError reports a dictionary entry that does not fit its entity's
// canonical schema. It is a configuration error, never a data error.
type ContractError struct {
	Entity schema.Entity
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	return fmt.Sprintf("%s dictionary: field %q: %s", e.Entity, e.Field, e.Reason)
}

// Is implements errors.Is support.
func (e *ContractError) Is(target error) bool {
	return target == ErrInvalidDictionary
}

// Validate checks every dictionary of s against its canonical schema.
// All violations are reported, joined.
func Validate(s Set) error {
	var errs []error

	for _, e := range schema.Entities {
		errs = append(errs, ValidateDictionary(s.For(e))...)
	}

	return errors.Join(errs...)
}

// ValidateDictionary returns one error per contract violation in d.
func ValidateDictionary(d Dictionary) []error {
	var errs []error

	canonical := schema.For(d.Entity)
	seen := make(map[string]struct{}, len(d.Entries))

	for _, entry := range d.Entries {
		if !canonical.Has(entry.Field) {
			errs = append(errs, &ContractError{
				Entity: d.Entity,
				Field:  entry.Field,
				Reason: fmt.Sprintf("not a %s field (want one of %s)", d.Entity, strings.Join(canonical.Fields, ", ")),
			})

			continue
		}

		if _, dup := seen[entry.Field]; dup {
			errs = append(errs, &ContractError{Entity: d.Entity, Field: entry.Field, Reason: "declared more than once"})
			continue
		}

		seen[entry.Field] = struct{}{}
	}

	return errs
}
