// Package http implements the HTTP transport layer of the notes service.
//
// Every endpoint is a [routehandler] dispatch function created from one
// [routehandler.Factory] and mounted on a chi router. The factory supplies
// bearer-token authentication, JSON fallbacks for unsupported methods and
// unauthorized requests, and the mapping of handler errors to status codes.
// Request tracing, access logging, panic recovery and gzip compression are
// chi middleware.
package http
