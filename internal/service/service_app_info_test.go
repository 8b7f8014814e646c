package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-route-handler/internal/config"
	"github.com/MKhiriev/go-route-handler/internal/logger"
	"github.com/MKhiriev/go-route-handler/models"
)

func TestGetAppVersion_ConfiguredVersionWins(t *testing.T) {
	svc := NewAppInfoService(config.App{Version: "3.1.4"}, models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc"), logger.Nop())

	got := svc.GetAppVersion(context.Background())

	assert.Equal(t, models.VersionResponse{Version: "3.1.4", Date: "2026-01-01", Commit: "abc"}, got)
}

func TestGetAppVersion_FallsBackToBuildVersion(t *testing.T) {
	svc := NewAppInfoService(config.App{}, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())

	got := svc.GetAppVersion(context.Background())

	assert.Equal(t, "1.0.0", got.Version)
	assert.Equal(t, "N/A", got.Date)
	assert.Equal(t, "N/A", got.Commit)
}

func TestGetAppVersion_VersionIsStable(t *testing.T) {
	svc := NewAppInfoService(config.App{Version: "0.0.1"}, models.NewAppBuildInfo("", "", ""), logger.Nop())

	ctx := context.Background()
	assert.Equal(t, svc.GetAppVersion(ctx), svc.GetAppVersion(ctx), "version must not change between calls")
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc := NewAppInfoService(config.App{Version: "1.0.0"}, models.NewAppBuildInfo("", "", ""), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx).Version)
}
