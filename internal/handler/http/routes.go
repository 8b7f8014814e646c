// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, withLogging, middleware.Recoverer, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Handle("/api/user/register", h.routes.Create().
			Post(h.register).
			Build())
		r.Handle("/api/user/login", h.routes.Create().
			Post(h.login).
			Build())
		r.Handle("/api/version", h.routes.Create().
			Get(h.getServerVersion).
			Head(h.getServerVersion).
			Build())
	})

	// notes, every method requires a bearer token
	router.Group(func(r chi.Router) {
		r.Handle("/api/notes", h.routes.Create(authenticated()).
			Get(h.listNotes).
			Post(h.createNote).
			Build())
		r.Handle("/api/notes/{id}", h.routes.Create(authenticated()).
			Get(h.getNote).
			Put(h.updateNote).
			Patch(h.updateNote).
			Delete(h.deleteNote).
			Build())
	})

	router.NotFound(h.notFound)

	return router
}
