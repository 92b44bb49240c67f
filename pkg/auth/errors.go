package auth

import (
	"errors"
	"fmt"
)

// Categories of sign-in failure a provider may report.
const (
	CredentialsSignin  = "CredentialsSignin"
	CallbackRouteError = "CallbackRouteError"
	InvalidProvider    = "InvalidProvider"
	Configuration      = "Configuration"
)

// Error is a sign-in failure of a known category. Anything else a provider
// returns is outside the taxonomy.
type Error struct {
	Type string
	Err  error
}

func NewError(typ string, err error) *Error {
	return &Error{Type: typ, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Type
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsError extracts an *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var authErr *Error
	if errors.As(err, &authErr) {
		return authErr, true
	}
	return nil, false
}
