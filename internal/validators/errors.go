package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidNoteID    = errors.New("invalid note ID")
	ErrEmptyTitle       = errors.New("title is required")
	ErrTitleTooLong     = errors.New("title is too long")
	ErrBodyTooLong      = errors.New("body is too long")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")

	ErrEmptyLogin       = errors.New("login is required")
	ErrLoginTooLong     = errors.New("login is too long")
	ErrInvalidLogin     = errors.New("login contains invalid characters")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password is too short")
	ErrPasswordTooLong  = errors.New("password is too long")
)
