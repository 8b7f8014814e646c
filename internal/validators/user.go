// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-route-handler/models"
)

const (
	// FieldLogin targets the user login.
	FieldLogin = "login"

	// FieldPassword targets the plain-text password.
	FieldPassword = "password"

	// FieldPasswordPresent only requires a non-empty password. Used on login,
	// where length rules of registration must not leak.
	FieldPasswordPresent = "password_present"
)

const (
	MaxLoginLength    = 64
	MinPasswordLength = 8

	// MaxPasswordLength is the input limit of bcrypt.
	MaxPasswordLength = 72
)

// UserValidator implements [Validator] for models.User.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate checks login and password by default.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if err := validateLogin(user.Login); err != nil {
				return err
			}
		case FieldPassword:
			switch {
			case user.Password == "":
				return ErrEmptyPassword
			case len(user.Password) < MinPasswordLength:
				return ErrPasswordTooShort
			case len(user.Password) > MaxPasswordLength:
				return ErrPasswordTooLong
			}
		case FieldPasswordPresent:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateLogin(login string) error {
	if login == "" {
		return ErrEmptyLogin
	}
	if len(login) > MaxLoginLength {
		return ErrLoginTooLong
	}
	if strings.IndexFunc(login, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}) >= 0 {
		return ErrInvalidLogin
	}
	return nil
}
