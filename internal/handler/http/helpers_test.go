package http

import (
	"testing"
	"time"

	"github.com/MKhiriev/fleet-notify/internal/config"
	"github.com/MKhiriev/fleet-notify/internal/logger"
	"github.com/MKhiriev/fleet-notify/internal/mock"
	"github.com/MKhiriev/fleet-notify/internal/service"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

type testMocks struct {
	dashboard *mock.MockDashboardService
	appInfo   *mock.MockAppInfoService
	factory   *mock.MockNotificationSyncFactory
	sync      *mock.MockNotificationSync
}

// newTestHandler builds a Handler over gomock services and a fixed clock.
func newTestHandler(t *testing.T) (*Handler, testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := testMocks{
		dashboard: mock.NewMockDashboardService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
		factory:   mock.NewMockNotificationSyncFactory(ctrl),
		sync:      mock.NewMockNotificationSync(ctrl),
	}

	h := NewHandler(&service.Services{
		DashboardService: m.dashboard,
		AppInfoService:   m.appInfo,
		SyncFactory:      m.factory,
	}, config.Server{RequestTimeout: time.Second}, logger.Nop())
	h.now = func() time.Time { return fixedNow }

	return h, m
}
