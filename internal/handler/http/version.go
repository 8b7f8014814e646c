package http

import (
	"net/http"

	"github.com/MKhiriev/go-route-handler/internal/utils"
	"github.com/MKhiriev/go-route-handler/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request, _ *models.Session) error {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	_, err := utils.WriteJSON(w, serverVersion, http.StatusOK)
	return err
}
