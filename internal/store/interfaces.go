// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-route-handler/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser stores user and returns it with UserID and CreatedAt set.
	// A taken login yields [ErrLoginAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns the user with the given login or
	// [ErrNoUserWasFound].
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// NoteRepository persists notes. Every method is scoped to one owner: notes
// of other users behave as if they did not exist.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)
	GetNote(ctx context.Context, userID, noteID int64) (models.Note, error)
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID int64) error
}

// ErrorClassification tells how a failed database operation should be
// handled.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures (lost connection, deadlock, busy
	// database) that may succeed if attempted again.
	Retryable

	// Conflict marks unique constraint violations.
	Conflict
)

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
