package domain

// Validation returns the error message for a field value, or "" when valid.
type Validation interface {
	Validate(fieldName, fieldValue string) string
}
