package service

import (
	"github.com/MKhiriev/fleet-notify/internal/config"
	"github.com/MKhiriev/fleet-notify/internal/logger"
	"github.com/MKhiriev/fleet-notify/internal/store"
	"github.com/MKhiriev/fleet-notify/models"
)

// Services is what the dashboard server exposes.
type Services struct {
	DashboardService DashboardService
	AppInfoService   AppInfoService
	SyncFactory      NotificationSyncFactory
}

// NewServices wires the server services. querier replaces the Postgres
// notification repository for select_all when non-nil (the PostgREST
// adapter); change events always come from the storages' listener.
func NewServices(storages *store.Storages, querier NotificationQuerier, cfg *config.ServerConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	if querier == nil {
		querier = storages.NotificationRepository
	}
	backend := NewNotificationBackend(querier, storages.ChangeListener)

	return &Services{
		DashboardService: NewDashboardService(storages.DashboardRepository, logger),
		AppInfoService:   appInfo,
		SyncFactory:      NewNotificationSyncFactory(backend, cfg.Workers, logger),
	}, nil
}
