package service

import (
	"context"
	"time"

	"github.com/MKhiriev/fleet-notify/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NotificationQuerier is the select_all half of the notification backend.
type NotificationQuerier interface {
	SelectAll(ctx context.Context, query models.SelectQuery) ([]models.Notification, error)
}

// ChangeFeed is the subscribe/unsubscribe half of the notification backend.
// onEvent may be called from any goroutine and must not block.
type ChangeFeed interface {
	Subscribe(ctx context.Context, spec models.SubscriptionSpec, onEvent func(models.ChangeEvent)) (string, error)
	Unsubscribe(handleID string)
}

// NotificationBackend is everything the sync client needs from the remote
// store. When Configured reports false the sync client does nothing.
type NotificationBackend interface {
	NotificationQuerier
	ChangeFeed
	Configured() bool
}

// NotificationSync keeps a local view of one driver's notifications in sync
// with the backend.
type NotificationSync interface {
	Activate(ctx context.Context, driver string) *SyncSession
	Fetch(ctx context.Context, driver string) []models.Notification
	Deactivate(session *SyncSession)
	Observe(fn func(models.NotificationView)) (cancel func())
	View() models.NotificationView
	Reset()
	Close()
}

// NotificationSyncFactory creates one independent sync client per consumer,
// for example per streaming HTTP connection.
type NotificationSyncFactory interface {
	NewSync() NotificationSync
}

type DashboardService interface {
	Summary(ctx context.Context, now time.Time) (models.DashboardSummary, error)
}

type LoginService interface {
	Login(ctx context.Context, form models.LoginForm) (string, error)
	RememberedDriver(ctx context.Context) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
