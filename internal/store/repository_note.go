// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-route-handler/internal/logger"
	"github.com/MKhiriev/go-route-handler/models"
)

type noteRepository struct {
	logger *logger.Logger
	db     *DB

	// now stamps created_at and updated_at.
	now func() time.Time
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	note.CreatedAt = r.now()
	note.UpdatedAt = note.CreatedAt

	query, args, err := buildCreateNoteQuery(note)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error building query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&note.ID)
	})
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error creating note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

func (r *noteRepository) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = r.db.withRetry(ctx, func() error {
		rows, err = r.db.QueryContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*noteRepository.ListNotes").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

func (r *noteRepository) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetNoteQuery(userID, noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNote").Msg("error building query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	err = r.db.withRetry(ctx, func() error {
		note, err = scanNote(r.db.QueryRowContext(ctx, query, args...))
		return err
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Note{}, ErrNoteNotFound
	case err != nil:
		log.Err(err).Str("func", "*noteRepository.GetNote").Msg("error getting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// UpdateNote applies the non-nil fields of update to a note owned by
// update.UserID and returns the stored result.
func (r *noteRepository) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(update, r.now())
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error building query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	err = r.db.withRetry(ctx, func() error {
		note, err = scanNote(r.db.QueryRowContext(ctx, query, args...))
		return err
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Note{}, ErrNoteNotFound
	case err != nil:
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error updating note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

func (r *noteRepository) DeleteNote(ctx context.Context, userID, noteID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(userID, noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.db.withRetry(ctx, func() error {
		result, err = r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error deleting note")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	err := row.Scan(&note.ID, &note.UserID, &note.Title, &note.Body, &note.CreatedAt, &note.UpdatedAt)
	return note, err
}
