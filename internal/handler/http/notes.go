// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-route-handler/internal/utils"
	"github.com/MKhiriev/go-route-handler/models"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request, session *models.Session) error {
	owner, err := userID(session)
	if err != nil {
		return err
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), owner)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, models.NotesResponse{Notes: notes, Length: len(notes)}, http.StatusOK)
	return err
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request, session *models.Session) error {
	owner, err := userID(session)
	if err != nil {
		return err
	}

	var note models.Note
	if err = utils.ReadJSON(r, &note); err != nil {
		return err
	}
	note.ID = 0
	note.UserID = owner

	created, err := h.services.NoteService.CreateNote(r.Context(), note)
	if err != nil {
		return err
	}

	w.Header().Set("Location", fmt.Sprintf("/api/notes/%d", created.ID))
	_, err = utils.WriteJSON(w, created, http.StatusCreated)
	return err
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request, session *models.Session) error {
	owner, err := userID(session)
	if err != nil {
		return err
	}
	noteID, err := noteIDFromRequest(r)
	if err != nil {
		return err
	}

	note, err := h.services.NoteService.GetNote(r.Context(), owner, noteID)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, note, http.StatusOK)
	return err
}

// updateNote serves both PUT and PATCH: fields missing from the body are
// left unchanged.
func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request, session *models.Session) error {
	owner, err := userID(session)
	if err != nil {
		return err
	}
	noteID, err := noteIDFromRequest(r)
	if err != nil {
		return err
	}

	var update models.NoteUpdate
	if err = utils.ReadJSON(r, &update); err != nil {
		return err
	}
	update.ID = noteID
	update.UserID = owner

	note, err := h.services.NoteService.UpdateNote(r.Context(), update)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, note, http.StatusOK)
	return err
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request, session *models.Session) error {
	owner, err := userID(session)
	if err != nil {
		return err
	}
	noteID, err := noteIDFromRequest(r)
	if err != nil {
		return err
	}

	if err = h.services.NoteService.DeleteNote(r.Context(), owner, noteID); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func noteIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNoteID, raw)
	}
	return id, nil
}
