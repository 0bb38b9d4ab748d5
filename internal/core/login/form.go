// Package login holds the state of the login form: field values, their
// validation errors and the submit lifecycle.
package login

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"enquete/internal/domain"
	"enquete/internal/validation"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

var (
	ErrUnknownField     = errors.New("unknown form field")
	ErrInvalidForm      = errors.New("form has validation errors")
	ErrSubmitInProgress = errors.New("submit already in progress")
)

// NewLoginValidation is the rule set of the login page.
func NewLoginValidation() *validation.Composite {
	validators := append(
		validation.Field(FieldEmail).Required().Email().Build(),
		validation.Field(FieldPassword).Required().Min(5).Build()...,
	)
	return validation.NewComposite(validators...)
}

type State struct {
	IsLoading     bool   `json:"isLoading"`
	Email         string `json:"email"`
	EmailError    string `json:"emailError"`
	Password      string `json:"-"`
	PasswordError string `json:"passwordError"`
	MainError     string `json:"mainError"`
}

type Form struct {
	validation     domain.Validation
	authentication domain.Authentication
	storage        domain.Storage

	mu    sync.Mutex
	state State
}

func NewForm(v domain.Validation, a domain.Authentication, s domain.Storage) *Form {
	f := &Form{
		validation:     v,
		authentication: a,
		storage:        s,
	}
	f.state.EmailError = v.Validate(FieldEmail, "")
	f.state.PasswordError = v.Validate(FieldPassword, "")
	return f
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// SetField stores the value and recomputes that field's error.
func (f *Form) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch name {
	case FieldEmail:
		f.state.Email = value
		f.state.EmailError = f.validation.Validate(FieldEmail, value)
	case FieldPassword:
		f.state.Password = value
		f.state.PasswordError = f.validation.Validate(FieldPassword, value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

func (f *Form) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.canSubmit()
}

func (f *Form) canSubmit() bool {
	return !f.state.IsLoading && f.state.EmailError == "" && f.state.PasswordError == ""
}

// Submit authenticates once with the current values. A call made while a
// previous one is still in flight is rejected without reaching the
// authentication collaborator.
func (f *Form) Submit(ctx context.Context) (*domain.AccountModel, error) {
	f.mu.Lock()
	if f.state.IsLoading {
		f.mu.Unlock()
		return nil, ErrSubmitInProgress
	}
	if !f.canSubmit() {
		f.mu.Unlock()
		return nil, ErrInvalidForm
	}
	f.state.IsLoading = true
	f.state.MainError = ""
	params := domain.AuthenticationParams{
		Email:    f.state.Email,
		Password: f.state.Password,
	}
	f.mu.Unlock()

	account, err := f.authentication.Auth(ctx, params)
	if err == nil && account == nil {
		err = fmt.Errorf("%w: empty account payload", domain.ErrUnexpected)
	}
	if err == nil {
		err = f.storage.SetItem(ctx, domain.AccessTokenKey, account.AccessToken)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.IsLoading = false

	if err != nil {
		f.state.MainError = MainErrorMessage(err)
		return nil, err
	}
	return account, nil
}

// MainErrorMessage is the text shown above the form for a failed submit.
func MainErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrUnexpected):
		return domain.ErrUnexpected.Error()
	default:
		return err.Error()
	}
}
