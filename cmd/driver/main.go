package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/fleet-notify/internal/adapter"
	"github.com/MKhiriev/fleet-notify/internal/config"
	"github.com/MKhiriev/fleet-notify/internal/logger"
	"github.com/MKhiriev/fleet-notify/internal/service"
	"github.com/MKhiriev/fleet-notify/internal/store"
	"github.com/MKhiriev/fleet-notify/internal/tui"
	"github.com/MKhiriev/fleet-notify/internal/workers"
	"github.com/MKhiriev/fleet-notify/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetDriverConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("fleet-notify-driver", cfg.App.LogFile)
	log.Info().
		Str("version", build.BuildVersion()).
		Str("commit", build.BuildCommit()).
		Msg("driver app starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	local, err := store.NewClientStorages(ctx, cfg.Local, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer local.Close()

	backend, background := newBackend(ctx, cfg, log)

	go func() {
		if err := background.Run(ctx); err != nil {
			log.Err(err).Msg("change listener stopped, live updates disabled")
		}
	}()

	services := service.NewClientServices(local, backend, cfg.Workers, log)

	ui, err := tui.New(services, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	if err = ui.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("driver app run error")
	}
}

// newBackend connects the hosted database when it is configured. Without it,
// or when it cannot be reached, the app runs with notification sync disabled.
func newBackend(ctx context.Context, cfg *config.DriverConfig, log *logger.Logger) (service.NotificationBackend, *workers.Workers) {
	disabled := service.NewNotificationBackend(nil, nil)
	if !cfg.SyncConfigured() {
		log.Info().Msg("hosted database is not configured, notification sync disabled")
		return disabled, workers.NewWorkers(log)
	}

	storages, err := store.NewStorages(ctx, cfg.DB, cfg.Workers, log)
	if err != nil {
		log.Err(err).Msg("hosted database unreachable, notification sync disabled")
		return disabled, workers.NewWorkers(log)
	}

	var querier service.NotificationQuerier = storages.NotificationRepository
	if cfg.Adapter.RESTURL != "" {
		querier, err = adapter.NewPostgRESTAdapter(cfg.Adapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating PostgREST adapter")
		}
	}

	return service.NewNotificationBackend(querier, storages.ChangeListener), workers.NewWorkers(log, storages.ChangeListener)
}
