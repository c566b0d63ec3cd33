package store

import (
	"context"
	"time"

	"github.com/MKhiriev/fleet-notify/models"
)

// NotificationRepository reads driver notifications from the hosted database.
type NotificationRepository interface {
	SelectAll(ctx context.Context, query models.SelectQuery) ([]models.Notification, error)
}

// DashboardRepository reads the rows the dashboard aggregates.
type DashboardRepository interface {
	TaskStatuses(ctx context.Context) ([]models.DriverTask, error)
	TaskEntriesSince(ctx context.Context, since time.Time) ([]models.TaskEntry, error)
	DriverZones(ctx context.Context) ([]models.Driver, error)
	ActiveSitesCount(ctx context.Context) (int, error)
}

// PreferenceRepository is the local key/value store of driver preferences.
type PreferenceRepository interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
