package validation

type RequiredFieldValidation struct {
	field string
}

func Required(field string) *RequiredFieldValidation {
	return &RequiredFieldValidation{field: field}
}

func (v *RequiredFieldValidation) Field() string { return v.field }

func (v *RequiredFieldValidation) Validate(value string) error {
	if value == "" {
		return ErrRequiredField
	}
	return nil
}
