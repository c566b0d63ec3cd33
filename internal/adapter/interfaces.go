package adapter

import (
	"context"

	"github.com/MKhiriev/fleet-notify/models"
)

// NotificationQuerier runs select_all queries against a remote endpoint.
type NotificationQuerier interface {
	SelectAll(ctx context.Context, query models.SelectQuery) ([]models.Notification, error)
}
