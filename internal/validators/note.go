package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-route-handler/models"
)

// Field name constants used to restrict note validation to a subset of
// fields.
const (
	// FieldNoteID targets the identifier of an existing note.
	FieldNoteID = "id"

	// FieldUserID targets the owner of a note.
	FieldUserID = "user_id"

	// FieldTitle targets the note title.
	FieldTitle = "title"

	// FieldBody targets the note body.
	FieldBody = "body"

	// FieldUpdateNotEmpty requires a NoteUpdate to change at least one field.
	FieldUpdateNotEmpty = "update_not_empty"
)

// Limits enforced on notes.
const (
	MaxTitleLength = 200       // runes
	MaxBodyLength  = 64 * 1024 // bytes
)

// NoteValidator implements [Validator] for models.Note and
// models.NoteUpdate, in both value and pointer form.
type NoteValidator struct {
}

// NewNoteValidator constructs a new NoteValidator
// and returns it as the Validator interface.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate dispatches on the dynamic type of obj. Without fields a default
// set is checked:
//   - Note:       user_id, title, body
//   - NoteUpdate: id, user_id, update_not_empty, title, body
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(value, fields...)
	case *models.Note:
		return v.validateNote(*value, fields...)

	case models.NoteUpdate:
		return v.validateNoteUpdate(value, fields...)
	case *models.NoteUpdate:
		return v.validateNoteUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle, FieldBody}
	}

	for _, f := range fields {
		switch f {
		case FieldNoteID:
			if note.ID <= 0 {
				return ErrInvalidNoteID
			}
		case FieldUserID:
			if note.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if err := validateTitle(note.Title); err != nil {
				return err
			}
		case FieldBody:
			if len(note.Body) > MaxBodyLength {
				return ErrBodyTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateNoteUpdate(update models.NoteUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNoteID, FieldUserID, FieldUpdateNotEmpty, FieldTitle, FieldBody}
	}

	for _, f := range fields {
		switch f {
		case FieldNoteID:
			if update.ID <= 0 {
				return ErrInvalidNoteID
			}
		case FieldUserID:
			if update.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldUpdateNotEmpty:
			if update.Empty() {
				return ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if update.Title == nil {
				continue
			}
			if err := validateTitle(*update.Title); err != nil {
				return err
			}
		case FieldBody:
			if update.Body != nil && len(*update.Body) > MaxBodyLength {
				return ErrBodyTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
