// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-route-handler/models"
)

// psql renders $N placeholders; both pgx and go-sqlite3 accept them.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{"user_id", "login", "password_hash", "created_at"}
	noteColumns = []string{"id", "user_id", "title", "body", "created_at", "updated_at"}
)

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.
		Insert(user.TableName()).
		Columns("login", "password_hash").
		Values(user.Login, user.PasswordHash).
		Suffix("RETURNING user_id, created_at").
		ToSql()
}

func buildFindUserByLoginQuery(login string) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"login": login}).
		ToSql()
}

func buildCreateNoteQuery(note models.Note) (string, []any, error) {
	return psql.
		Insert(note.TableName()).
		Columns("user_id", "title", "body", "created_at", "updated_at").
		Values(note.UserID, note.Title, note.Body, note.CreatedAt, note.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildListNotesQuery(userID int64) (string, []any, error) {
	return psql.
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
}

func buildGetNoteQuery(userID, noteID int64) (string, []any, error) {
	return psql.
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
}

// buildUpdateNoteQuery sets only the non-nil fields of update and always
// bumps updated_at.
func buildUpdateNoteQuery(update models.NoteUpdate, now time.Time) (string, []any, error) {
	builder := psql.
		Update(models.Note{}.TableName()).
		Set("updated_at", now)

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Body != nil {
		builder = builder.Set("body", *update.Body)
	}

	return builder.
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		Suffix("RETURNING id, user_id, title, body, created_at, updated_at").
		ToSql()
}

func buildDeleteNoteQuery(userID, noteID int64) (string, []any, error) {
	return psql.
		Delete(models.Note{}.TableName()).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
}
