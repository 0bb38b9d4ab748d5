package login

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"enquete/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validationSpy struct {
	mu           sync.Mutex
	errorMessage string
	fieldName    string
	fieldValue   string
}

func (s *validationSpy) Validate(fieldName, fieldValue string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fieldName = fieldName
	s.fieldValue = fieldValue
	return s.errorMessage
}

type authenticationSpy struct {
	mu      sync.Mutex
	account *domain.AccountModel
	params  domain.AuthenticationParams
	calls   int
	err     error
	release chan struct{}
}

func (s *authenticationSpy) Auth(_ context.Context, params domain.AuthenticationParams) (*domain.AccountModel, error) {
	s.mu.Lock()
	s.params = params
	s.calls++
	s.mu.Unlock()

	if s.release != nil {
		<-s.release
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.account, nil
}

func (s *authenticationSpy) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type storageSpy struct {
	items map[string]string
	err   error
}

func (s *storageSpy) SetItem(_ context.Context, key, value string) error {
	if s.err != nil {
		return s.err
	}
	if s.items == nil {
		s.items = map[string]string{}
	}
	s.items[key] = value
	return nil
}

type sut struct {
	form           *Form
	validation     *validationSpy
	authentication *authenticationSpy
	storage        *storageSpy
}

func makeSut(validationError string) sut {
	v := &validationSpy{errorMessage: validationError}
	a := &authenticationSpy{account: &domain.AccountModel{AccessToken: "any_token", Name: "John"}}
	s := &storageSpy{}
	return sut{form: NewForm(v, a, s), validation: v, authentication: a, storage: s}
}

func populateValid(t *testing.T, f *Form) {
	t.Helper()
	require.NoError(t, f.SetField(FieldEmail, "john@example.com"))
	require.NoError(t, f.SetField(FieldPassword, "secret123"))
}

func TestNewFormInitialState(t *testing.T) {
	s := makeSut("required field")

	state := s.form.State()
	assert.False(t, state.IsLoading)
	assert.Equal(t, "required field", state.EmailError)
	assert.Equal(t, "required field", state.PasswordError)
	assert.Empty(t, state.MainError)
	assert.False(t, s.form.CanSubmit())
}

func TestSetFieldCallsValidation(t *testing.T) {
	s := makeSut("")

	require.NoError(t, s.form.SetField(FieldEmail, "john@example.com"))
	assert.Equal(t, FieldEmail, s.validation.fieldName)
	assert.Equal(t, "john@example.com", s.validation.fieldValue)

	require.NoError(t, s.form.SetField(FieldPassword, "secret123"))
	assert.Equal(t, FieldPassword, s.validation.fieldName)
	assert.Equal(t, "secret123", s.validation.fieldValue)
}

func TestSetFieldUnknown(t *testing.T) {
	s := makeSut("")

	assert.ErrorIs(t, s.form.SetField("name", "x"), ErrUnknownField)
}

func TestSetFieldShowsValidationError(t *testing.T) {
	s := makeSut("invalid field")

	require.NoError(t, s.form.SetField(FieldEmail, "lorem"))
	assert.Equal(t, "invalid field", s.form.State().EmailError)
}

func TestCanSubmitWhenValid(t *testing.T) {
	s := makeSut("")
	populateValid(t, s.form)

	assert.True(t, s.form.CanSubmit())
}

func TestSubmitCallsAuthenticationWithValues(t *testing.T) {
	s := makeSut("")
	populateValid(t, s.form)

	account, err := s.form.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "any_token", account.AccessToken)
	assert.Equal(t, domain.AuthenticationParams{Email: "john@example.com", Password: "secret123"}, s.authentication.params)
	assert.Equal(t, "any_token", s.storage.items[domain.AccessTokenKey])
	assert.False(t, s.form.State().IsLoading)
}

func TestSubmitRejectedWhenInvalid(t *testing.T) {
	s := makeSut("invalid field")
	populateValid(t, s.form)

	_, err := s.form.Submit(context.Background())

	assert.ErrorIs(t, err, ErrInvalidForm)
	assert.Equal(t, 0, s.authentication.callCount())
}

func TestSubmitOnlyOnceWhileInFlight(t *testing.T) {
	s := makeSut("")
	s.authentication.release = make(chan struct{})
	populateValid(t, s.form)

	done := make(chan error, 1)
	go func() {
		_, err := s.form.Submit(context.Background())
		done <- err
	}()

	require.Eventually(t, func() bool { return s.form.State().IsLoading }, time.Second, time.Millisecond)
	assert.False(t, s.form.CanSubmit())

	_, err := s.form.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInProgress)

	close(s.authentication.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, s.authentication.callCount())
}

func TestSubmitFailurePresentsError(t *testing.T) {
	s := makeSut("")
	s.authentication.err = domain.ErrInvalidCredentials
	populateValid(t, s.form)

	_, err := s.form.Submit(context.Background())

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	state := s.form.State()
	assert.Equal(t, domain.ErrInvalidCredentials.Error(), state.MainError)
	assert.False(t, state.IsLoading)
	assert.Empty(t, s.storage.items)
}

func TestSubmitStorageFailure(t *testing.T) {
	s := makeSut("")
	s.storage.err = errors.New("storage down")
	populateValid(t, s.form)

	_, err := s.form.Submit(context.Background())

	assert.EqualError(t, err, "storage down")
	assert.Equal(t, "storage down", s.form.State().MainError)
}

func TestSubmitEmptyAccount(t *testing.T) {
	s := makeSut("")
	s.authentication.account = nil
	populateValid(t, s.form)

	_, err := s.form.Submit(context.Background())

	assert.ErrorIs(t, err, domain.ErrUnexpected)
	assert.Equal(t, domain.ErrUnexpected.Error(), s.form.State().MainError)
}

func TestMainErrorMessage(t *testing.T) {
	wrapped := errors.Join(domain.ErrUnexpected, errors.New("dial tcp: refused"))

	assert.Equal(t, domain.ErrUnexpected.Error(), MainErrorMessage(wrapped))
	assert.Equal(t, domain.ErrInvalidCredentials.Error(), MainErrorMessage(domain.ErrInvalidCredentials))
}

func TestNewLoginValidation(t *testing.T) {
	v := NewLoginValidation()

	assert.NotEmpty(t, v.Validate(FieldEmail, ""))
	assert.NotEmpty(t, v.Validate(FieldEmail, "lorem"))
	assert.Empty(t, v.Validate(FieldEmail, "john@example.com"))
	assert.NotEmpty(t, v.Validate(FieldPassword, "1234"))
	assert.Empty(t, v.Validate(FieldPassword, "12345"))
}
