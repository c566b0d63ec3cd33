package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fleet-notify/internal/config"
	"github.com/MKhiriev/fleet-notify/internal/logger"
	"github.com/MKhiriev/fleet-notify/models"
)

type appInfoService struct {
	version string
	build   models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports the configured version, falling back to the
// version baked in at link time. It fails when neither is known.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" && build.BuildVersion() != "N/A" && build.BuildVersion() != "" {
		version = build.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().
		Str("version", version).
		Str("commit", build.BuildCommit()).
		Msg("app info service created")

	return &appInfoService{
		version: version,
		build:   build,
		logger:  logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	if commit := s.build.BuildCommit(); commit != "" && commit != "N/A" {
		return fmt.Sprintf("%s (%s)", s.version, commit)
	}
	return s.version
}
