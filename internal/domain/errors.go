package domain

import "errors"

// ErrEmailTaken is returned when a user with the same email is already stored.
var ErrEmailTaken = errors.New("email already taken")
