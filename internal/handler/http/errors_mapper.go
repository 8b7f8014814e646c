package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-route-handler/internal/logger"
	"github.com/MKhiriev/go-route-handler/internal/service"
	"github.com/MKhiriev/go-route-handler/internal/store"
	"github.com/MKhiriev/go-route-handler/internal/utils"
	"github.com/MKhiriev/go-route-handler/models"
	"github.com/MKhiriev/go-route-handler/routehandler"
)

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []struct {
	err    error
	status int
}{
	{utils.ErrInvalidJSONBody, http.StatusBadRequest},
	{ErrInvalidNoteID, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},

	{ErrNoSession, http.StatusUnauthorized},
	{service.ErrWrongCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{ErrRouteNotFound, http.StatusNotFound},
	{store.ErrNoteNotFound, http.StatusNotFound},
	{store.ErrNoUserWasFound, http.StatusNotFound},

	{store.ErrLoginAlreadyExists, http.StatusConflict},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError is the OnError fallback of every route. Client errors expose
// the error text, server errors the configured generic message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	var panicErr *routehandler.PanicError
	switch {
	case errors.As(err, &panicErr):
		log.Error().Err(err).Bytes("stack", panicErr.Stack).Msg("handler panicked")
	case status >= http.StatusInternalServerError:
		log.Err(err).Str("method", r.Method).Str("uri", r.RequestURI).Msg("request failed")
	default:
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = h.messages.InternalServerErrorMessage
	}
	h.writeErrorResponse(w, r, status, message)
}

func (h *Handler) unauthorized(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="notes"`)
	h.writeErrorResponse(w, r, http.StatusUnauthorized, h.messages.UnauthorizedMessage)
}

// methodNotAllowed runs after the dispatch function has set the Allow header.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.writeErrorResponse(w, r, http.StatusMethodNotAllowed, h.messages.MethodNotAllowedMessage)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeErrorResponse(w, r, http.StatusNotFound, ErrRouteNotFound.Error())
}

func (h *Handler) writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	if routehandler.Committed(w) {
		logger.FromRequest(r).Warn().
			Int("status", status).
			Int("committed_status", routehandler.Status(w)).
			Msg("response already committed, error body dropped")
		return
	}

	traceID, _ := utils.GetTraceIDFromContext(r.Context())
	_, _ = utils.WriteJSON(w, models.ErrorResponse{
		Error:   message,
		Status:  status,
		TraceID: traceID,
	}, status)
}
