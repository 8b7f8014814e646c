// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON body written for every failed API request.
type ErrorResponse struct {
	// Error is a human-readable description of the failure.
	Error string `json:"error"`

	// Status repeats the HTTP status code of the response.
	Status int `json:"status"`

	// TraceID identifies the request in the server logs.
	TraceID string `json:"trace_id,omitempty"`
}

// NotesResponse is the body of the note listing endpoint.
type NotesResponse struct {
	Notes  []Note `json:"notes"`
	Length int    `json:"length"`
}

// VersionResponse is the body of the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}
