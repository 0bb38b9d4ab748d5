package validation

import "errors"

var (
	ErrRequiredField = errors.New("required field")
	ErrInvalidField  = errors.New("invalid field")
)
