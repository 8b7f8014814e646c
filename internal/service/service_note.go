// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-route-handler/internal/logger"
	"github.com/MKhiriev/go-route-handler/internal/store"
	"github.com/MKhiriev/go-route-handler/models"
)

// noteService delegates to the NoteRepository. Input is expected to be
// validated by the wrapping noteValidationService.
type noteService struct {
	noteRepository store.NoteRepository
	logger         *logger.Logger
}

// NewNoteService builds a NoteService with validation applied before every
// repository call.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	inner := &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
	return NewNoteValidationService().Wrap(inner)
}

func (s *noteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	created, err := s.noteRepository.CreateNote(ctx, note)
	if err != nil {
		return models.Note{}, fmt.Errorf("error creating note: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("note_id", created.ID).Msg("note created")
	return created, nil
}

func (s *noteService) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	notes, err := s.noteRepository.ListNotes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	return notes, nil
}

func (s *noteService) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	note, err := s.noteRepository.GetNote(ctx, userID, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("error getting note %d: %w", noteID, err)
	}
	return note, nil
}

func (s *noteService) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	note, err := s.noteRepository.UpdateNote(ctx, update)
	if err != nil {
		return models.Note{}, fmt.Errorf("error updating note %d: %w", update.ID, err)
	}
	return note, nil
}

func (s *noteService) DeleteNote(ctx context.Context, userID, noteID int64) error {
	if err := s.noteRepository.DeleteNote(ctx, userID, noteID); err != nil {
		return fmt.Errorf("error deleting note %d: %w", noteID, err)
	}

	logger.FromContext(ctx).Debug().Int64("note_id", noteID).Msg("note deleted")
	return nil
}
