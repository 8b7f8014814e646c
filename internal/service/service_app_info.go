package service

import (
	"context"

	"github.com/MKhiriev/go-route-handler/internal/config"
	"github.com/MKhiriev/go-route-handler/internal/logger"
	"github.com/MKhiriev/go-route-handler/models"
)

type appInfoService struct {
	version models.VersionResponse

	logger *logger.Logger
}

// NewAppInfoService reports cfg.Version when set and the linker-provided
// build version otherwise.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		version: buildInfo.VersionResponse(cfg.Version),
		logger:  logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.VersionResponse {
	return s.version
}
