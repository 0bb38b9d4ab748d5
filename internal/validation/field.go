// Package validation holds the field rules of the login form and the
// composite that chains them.
package validation

// FieldValidation is a single rule bound to one form field.
type FieldValidation interface {
	Field() string
	Validate(value string) error
}
