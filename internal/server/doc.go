// Package server runs the HTTP transport of the notes service.
//
// It owns the listener lifecycle: startup, request timeouts and graceful
// shutdown once the run context is cancelled.
package server
