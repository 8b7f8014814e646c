// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the notes HTTP API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-route-handler/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the notes server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, empty if none was set.
	Token() string

	// Register creates an account and stores the token issued for it.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates and stores the token issued for the user.
	Login(ctx context.Context, user models.User) (models.User, error)

	Version(ctx context.Context) (models.VersionResponse, error)

	ListNotes(ctx context.Context) ([]models.Note, error)
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, noteID int64) (models.Note, error)
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, noteID int64) error
}
