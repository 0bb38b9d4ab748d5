package validation

import "enquete/internal/domain"

var _ domain.Validation = (*Composite)(nil)

// Composite consults the validators registered for a field in registration
// order. The first failure wins.
type Composite struct {
	validators []FieldValidation
}

func NewComposite(validators ...FieldValidation) *Composite {
	return &Composite{validators: validators}
}

func (c *Composite) Validate(fieldName, fieldValue string) string {
	for _, v := range c.validators {
		if v.Field() != fieldName {
			continue
		}
		if err := v.Validate(fieldValue); err != nil {
			return err.Error()
		}
	}
	return ""
}

// ValidateAll reports every failing rule for the field instead of stopping at
// the first one.
func (c *Composite) ValidateAll(fieldName, fieldValue string) []string {
	var messages []string
	for _, v := range c.validators {
		if v.Field() != fieldName {
			continue
		}
		if err := v.Validate(fieldValue); err != nil {
			messages = append(messages, err.Error())
		}
	}
	return messages
}
