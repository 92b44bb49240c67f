package authservice

import (
	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/GlebRadaev/invoicedash/pkg/validate"
)

const (
	MsgName     = "Please enter your name."
	MsgEmail    = "Please enter a valid email address."
	MsgPassword = "Password must be at least 6 characters."
)

var registrationSchema = validate.NewSchema(
	validate.Field[domain.RegistrationInput]{
		Name:    "name",
		Tag:     "required",
		Message: MsgName,
		Set:     func(dst *domain.RegistrationInput, v any) { dst.Name = v.(string) },
	},
	validate.Field[domain.RegistrationInput]{
		Name:    "email",
		Tag:     "required,email",
		Message: MsgEmail,
		Set:     func(dst *domain.RegistrationInput, v any) { dst.Email = v.(string) },
	},
	validate.Field[domain.RegistrationInput]{
		Name:    "password",
		Tag:     "min=6",
		Message: MsgPassword,
		Set:     func(dst *domain.RegistrationInput, v any) { dst.Password = v.(string) },
	},
)

var loginSchema = validate.NewSchema(
	validate.Field[domain.Credentials]{
		Name:    "email",
		Tag:     "required,email",
		Message: MsgEmail,
		Set:     func(dst *domain.Credentials, v any) { dst.Email = v.(string) },
	},
	validate.Field[domain.Credentials]{
		Name:    "password",
		Tag:     "min=6",
		Message: MsgPassword,
		Set:     func(dst *domain.Credentials, v any) { dst.Password = v.(string) },
	},
)
