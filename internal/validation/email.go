package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// EmailValidation leaves empty values to Required.
type EmailValidation struct {
	field string
}

func Email(field string) *EmailValidation {
	return &EmailValidation{field: field}
}

func (v *EmailValidation) Field() string { return v.field }

func (v *EmailValidation) Validate(value string) error {
	if value == "" {
		return nil
	}
	if err := validate.Var(value, "email"); err != nil {
		return ErrInvalidField
	}
	return nil
}

type PatternValidation struct {
	field   string
	pattern *regexp.Regexp
}

func Pattern(field string, pattern *regexp.Regexp) *PatternValidation {
	return &PatternValidation{field: field, pattern: pattern}
}

func (v *PatternValidation) Field() string { return v.field }

func (v *PatternValidation) Validate(value string) error {
	if value == "" || v.pattern.MatchString(value) {
		return nil
	}
	return ErrInvalidField
}
