package http

import (
	"net/http"

	"github.com/MKhiriev/go-route-handler/internal/logger"
	"github.com/MKhiriev/go-route-handler/internal/utils"
	"github.com/MKhiriev/go-route-handler/models"
	"github.com/MKhiriev/go-route-handler/routehandler"
)

// authenticate is the Authenticate step of every gated route.
//
// It reads the bearer token from the "Authorization" header and validates
// it with [service.AuthService.ParseToken]. A missing, malformed, expired or
// foreign token denies the request; it never fails with an error.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) (routehandler.AuthResult[models.Session], error) {
	log := logger.FromRequest(r)

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
		return routehandler.Denied[models.Session](), nil
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		log.Debug().Err(err).Send()
		return routehandler.Denied[models.Session](), nil
	}

	token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
	if err != nil {
		log.Debug().Err(err).Msg("error occurred during parsing token")
		return routehandler.Denied[models.Session](), nil
	}

	return routehandler.Authorized(token.Session()), nil
}

// userID returns the owner of the request. session is nil only when a route
// forgot to gate the method.
func userID(session *models.Session) (int64, error) {
	if session == nil {
		return 0, ErrNoSession
	}
	return session.UserID, nil
}
