package validation

import "unicode/utf8"

type MinLengthValidation struct {
	field     string
	minLength int
}

func MinLength(field string, minLength int) *MinLengthValidation {
	return &MinLengthValidation{field: field, minLength: minLength}
}

func (v *MinLengthValidation) Field() string { return v.field }

// Validate counts runes, so multi-byte characters count once.
func (v *MinLengthValidation) Validate(value string) error {
	if utf8.RuneCountInString(value) < v.minLength {
		return ErrInvalidField
	}
	return nil
}
