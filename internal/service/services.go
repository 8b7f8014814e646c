package service

import (
	"github.com/MKhiriev/go-route-handler/internal/config"
	"github.com/MKhiriev/go-route-handler/internal/logger"
	"github.com/MKhiriev/go-route-handler/internal/store"
	"github.com/MKhiriev/go-route-handler/models"
)

type Services struct {
	AuthService    AuthService
	NoteService    NoteService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		NoteService:    NewNoteService(storages.NoteRepository, logger),
		AppInfoService: NewAppInfoService(cfg.App, buildInfo, logger),
	}
}
