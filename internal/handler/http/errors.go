// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is logged when a gated request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoSession is returned by a note handler that runs without an
	// authenticated session.
	ErrNoSession = errors.New("no session for request")

	// ErrInvalidNoteID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidNoteID = errors.New("invalid note id")

	// ErrRouteNotFound is reported for paths no route matches.
	ErrRouteNotFound = errors.New("route not found")
)
