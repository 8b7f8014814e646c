// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package routehandler

import (
	"net/http"

	"github.com/rs/zerolog"
)

// MethodNotAllowed returns the default OnUnmatchedMethod fallback: a 405
// response with message as its plain-text body.
func MethodNotAllowed(message string) FallbackFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeText(w, r, http.StatusMethodNotAllowed, message)
	}
}

// Unauthorized returns the default OnUnauthorized fallback: a 401 response
// with message as its plain-text body.
func Unauthorized(message string) FallbackFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeText(w, r, http.StatusUnauthorized, message)
	}
}

// InternalServerError returns the default OnError fallback. It logs err with
// the request-scoped zerolog logger and writes a 500 response with message as
// its plain-text body.
func InternalServerError(message string) ErrorFunc {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Msg("route handler failed")

		writeText(w, r, http.StatusInternalServerError, message)
	}
}

// writeText answers with a plain-text body unless the handler already
// committed a response.
func writeText(w http.ResponseWriter, r *http.Request, status int, message string) {
	if Committed(w) {
		zerolog.Ctx(r.Context()).Warn().
			Int("status", status).
			Msg("response already committed, fallback body dropped")
		return
	}
	http.Error(w, message, status)
}
