// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Note is a single text note owned by a user.
type Note struct {
	// ID is the identifier assigned by the database.
	ID int64 `json:"id"`

	// UserID is the owner of the note. Taken from the session, never from
	// the request body.
	UserID int64 `json:"-"`

	// Title is a short, required headline.
	Title string `json:"title"`

	// Body is the free-form note content.
	Body string `json:"body"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteUpdate is a partial update of a note. Nil fields are left untouched.
type NoteUpdate struct {
	ID     int64   `json:"-"`
	UserID int64   `json:"-"`
	Title  *string `json:"title,omitempty"`
	Body   *string `json:"body,omitempty"`
}

// Empty reports whether the update changes nothing.
func (u NoteUpdate) Empty() bool {
	return u.Title == nil && u.Body == nil
}
