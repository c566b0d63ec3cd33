// Package tui is the terminal driver app: a login screen followed by the live
// list of the driver's notifications.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/fleet-notify/internal/logger"
	"github.com/MKhiriev/fleet-notify/internal/service"
	"github.com/MKhiriev/fleet-notify/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoClientServices = errors.New("client services are not provided")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.LoginService == nil || services.Sync == nil {
		return nil, errNoClientServices
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the app until the driver quits or ctx is cancelled. The sync
// client is closed on return.
func (t *TUI) Run(ctx context.Context) error {
	updates := make(chan models.NotificationView, 1)
	stopObserving := t.services.Sync.Observe(forwardViews(updates))
	defer func() {
		stopObserving()
		t.services.Sync.Close()
	}()

	model := NewModel(ctx, t.services, updates, t.buildInfo)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		t.logger.Info().Str("func", "TUI.Run").Msg("driver app interrupted")
		return nil
	}
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("driver app stopped with error")
		return err
	}
	return nil
}

// forwardViews returns an observer that hands snapshots to the update loop
// without blocking. Only the newest pending snapshot is kept.
func forwardViews(updates chan models.NotificationView) func(models.NotificationView) {
	return func(view models.NotificationView) {
		for {
			select {
			case updates <- view:
				return
			default:
			}
			select {
			case <-updates:
			default:
			}
		}
	}
}
