package service

import (
	"github.com/MKhiriev/fleet-notify/internal/config"
	"github.com/MKhiriev/fleet-notify/internal/logger"
	"github.com/MKhiriev/fleet-notify/internal/store"
	"github.com/MKhiriev/fleet-notify/internal/validators"
)

// ClientServices is what the terminal driver app uses.
type ClientServices struct {
	LoginService LoginService
	Sync         NotificationSync
}

// NewClientServices wires the driver app. backend may be unconfigured, in
// which case the notification screen stays empty.
func NewClientServices(local *store.ClientStorages, backend NotificationBackend, workers config.Workers, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		LoginService: NewLoginService(local.PreferenceRepository, validators.NewRequestValidator(), logger),
		Sync:         NewNotificationSyncClient(backend, workers, logger),
	}
}
