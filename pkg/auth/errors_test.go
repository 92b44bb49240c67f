package auth

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsError(t *testing.T) {
	cause := errors.New("boom")

	authErr, ok := AsError(fmt.Errorf("sign in: %w", NewError(CallbackRouteError, cause)))
	assert.True(t, ok)
	assert.Equal(t, CallbackRouteError, authErr.Type)
	assert.ErrorIs(t, authErr, cause)
	assert.Equal(t, "CallbackRouteError: boom", authErr.Error())

	_, ok = AsError(cause)
	assert.False(t, ok)

	assert.Equal(t, CredentialsSignin, NewError(CredentialsSignin, nil).Error())
}
