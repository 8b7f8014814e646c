package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-route-handler/internal/validators"
	"github.com/MKhiriev/go-route-handler/models"
)

// noteValidationService checks input with a NoteValidator before calling
// the wrapped NoteService. Validation failures wrap ErrInvalidDataProvided.
type noteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &noteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

// Wrap returns a copy of the wrapper decorating inner.
func (v *noteValidationService) Wrap(inner NoteService) NoteService {
	return &noteValidationService{
		inner:     inner,
		validator: v.validator,
	}
}

func (v *noteValidationService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if err := v.validator.Validate(ctx, note); err != nil {
		return models.Note{}, invalid(err)
	}
	return v.inner.CreateNote(ctx, note)
}

func (v *noteValidationService) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	if err := v.validator.Validate(ctx, models.Note{UserID: userID}, validators.FieldUserID); err != nil {
		return nil, invalid(err)
	}
	return v.inner.ListNotes(ctx, userID)
}

func (v *noteValidationService) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	if err := v.validateIDs(ctx, userID, noteID); err != nil {
		return models.Note{}, err
	}
	return v.inner.GetNote(ctx, userID, noteID)
}

func (v *noteValidationService) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Note{}, invalid(err)
	}
	return v.inner.UpdateNote(ctx, update)
}

func (v *noteValidationService) DeleteNote(ctx context.Context, userID, noteID int64) error {
	if err := v.validateIDs(ctx, userID, noteID); err != nil {
		return err
	}
	return v.inner.DeleteNote(ctx, userID, noteID)
}

func (v *noteValidationService) validateIDs(ctx context.Context, userID, noteID int64) error {
	note := models.Note{ID: noteID, UserID: userID}
	if err := v.validator.Validate(ctx, note, validators.FieldUserID, validators.FieldNoteID); err != nil {
		return invalid(err)
	}
	return nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
