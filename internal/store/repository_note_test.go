// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-route-handler/models"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestNoteRepo(t *testing.T) (*noteRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t, NewPostgresErrorClassifier())
	return &noteRepository{
		db:     db,
		logger: db.logger,
		now:    func() time.Time { return fixedNow },
	}, mock
}

func noteRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "title", "body", "created_at", "updated_at"})
}

func TestCreateNote(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery("INSERT INTO notes").
		WithArgs(int64(1), "title", "body", fixedNow, fixedNow).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

	note, err := repo.CreateNote(context.Background(), models.Note{UserID: 1, Title: "title", Body: "body"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), note.ID)
	assert.Equal(t, fixedNow, note.CreatedAt)
	assert.Equal(t, fixedNow, note.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateNote_Error(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery("INSERT INTO notes").WillReturnError(errors.New("boom"))

	_, err := repo.CreateNote(context.Background(), models.Note{UserID: 1, Title: "t"})
	require.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListNotes(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM notes WHERE user_id = (.+) ORDER BY id").
		WithArgs(int64(1)).
		WillReturnRows(noteRows().
			AddRow(1, 1, "a", "x", fixedNow, fixedNow).
			AddRow(2, 1, "b", "y", fixedNow, fixedNow))

	notes, err := repo.ListNotes(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "a", notes[0].Title)
	assert.Equal(t, "y", notes[1].Body)
}

func TestListNotes_EmptyIsNotNil(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM notes").WillReturnRows(noteRows())

	notes, err := repo.ListNotes(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestListNotes_RowError(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM notes").
		WillReturnRows(noteRows().
			AddRow(1, 1, "a", "x", fixedNow, fixedNow).
			RowError(0, errors.New("broken row")))

	_, err := repo.ListNotes(context.Background(), 1)
	require.ErrorIs(t, err, ErrScanningRows)
}

func TestGetNote(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM notes WHERE id = (.+) AND user_id = (.+)").
					WithArgs(int64(5), int64(1)).
					WillReturnRows(noteRows().AddRow(5, 1, "a", "x", fixedNow, fixedNow))
			},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM notes").WillReturnError(sql.ErrNoRows)
			},
			wantErr: ErrNoteNotFound,
		},
		{
			name: "db error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM notes").WillReturnError(errors.New("boom"))
			},
			wantErr: ErrScanningRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestNoteRepo(t)
			tt.setup(mock)

			note, err := repo.GetNote(context.Background(), 1, 5)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(5), note.ID)
			assert.Equal(t, int64(1), note.UserID)
		})
	}
}

func TestUpdateNote(t *testing.T) {
	repo, mock := newTestNoteRepo(t)
	title := "new title"

	mock.ExpectQuery("UPDATE notes SET updated_at = (.+), title = (.+) WHERE id = (.+) AND user_id = (.+) RETURNING").
		WithArgs(fixedNow, title, int64(5), int64(1)).
		WillReturnRows(noteRows().AddRow(5, 1, title, "x", fixedNow, fixedNow))

	note, err := repo.UpdateNote(context.Background(), models.NoteUpdate{ID: 5, UserID: 1, Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, note.Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNote_NotFound(t *testing.T) {
	repo, mock := newTestNoteRepo(t)
	body := "b"

	mock.ExpectQuery("UPDATE notes").WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateNote(context.Background(), models.NoteUpdate{ID: 5, UserID: 2, Body: &body})
	require.ErrorIs(t, err, ErrNoteNotFound)
}

func TestDeleteNote(t *testing.T) {
	tests := []struct {
		name    string
		result  sql.Result
		err     error
		wantErr error
	}{
		{name: "deleted", result: sqlmock.NewResult(0, 1)},
		{name: "not found", result: sqlmock.NewResult(0, 0), wantErr: ErrNoteNotFound},
		{name: "db error", err: errors.New("boom"), wantErr: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestNoteRepo(t)

			exp := mock.ExpectExec("DELETE FROM notes WHERE id = (.+) AND user_id = (.+)").
				WithArgs(int64(5), int64(1))
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.DeleteNote(context.Background(), 1, 5)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
