package validation

import "regexp"

// Builder collects rules for one field in the order they are chained.
//
//	validation.Field("email").Required().Email().Build()
type Builder struct {
	field       string
	validations []FieldValidation
}

func Field(name string) *Builder {
	return &Builder{field: name}
}

func (b *Builder) Required() *Builder {
	b.validations = append(b.validations, Required(b.field))
	return b
}

func (b *Builder) Email() *Builder {
	b.validations = append(b.validations, Email(b.field))
	return b
}

func (b *Builder) Min(length int) *Builder {
	b.validations = append(b.validations, MinLength(b.field, length))
	return b
}

func (b *Builder) Pattern(pattern *regexp.Regexp) *Builder {
	b.validations = append(b.validations, Pattern(b.field, pattern))
	return b
}

func (b *Builder) Build() []FieldValidation {
	out := make([]FieldValidation, len(b.validations))
	copy(out, b.validations)
	return out
}
