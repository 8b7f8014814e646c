package http

import (
	"net/http"

	"github.com/MKhiriev/go-route-handler/internal/logger"
	"github.com/MKhiriev/go-route-handler/internal/utils"
	"github.com/MKhiriev/go-route-handler/models"
)

// register creates an account and answers with the user and a bearer token
// in the Authorization header.
func (h *Handler) register(w http.ResponseWriter, r *http.Request, _ *models.Session) error {
	var user models.User
	if err := utils.ReadJSON(r, &user); err != nil {
		return err
	}

	registeredUser, err := h.services.AuthService.RegisterUser(r.Context(), user)
	if err != nil {
		return err
	}

	logger.FromRequest(r).Info().Int64("id", registeredUser.UserID).Msg("user registered")
	return h.issueToken(w, r, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request, _ *models.Session) error {
	var user models.User
	if err := utils.ReadJSON(r, &user); err != nil {
		return err
	}

	foundUser, err := h.services.AuthService.Login(r.Context(), user)
	if err != nil {
		return err
	}

	logger.FromRequest(r).Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")
	return h.issueToken(w, r, foundUser)
}

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, user models.User) error {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		return err
	}

	w.Header().Set("Authorization", "Bearer "+token.String())
	_, err = utils.WriteJSON(w, user, http.StatusOK)
	return err
}
