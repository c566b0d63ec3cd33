package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/fleet-notify/internal/adapter"
	"github.com/MKhiriev/fleet-notify/internal/config"
	"github.com/MKhiriev/fleet-notify/internal/handler"
	"github.com/MKhiriev/fleet-notify/internal/logger"
	"github.com/MKhiriev/fleet-notify/internal/server"
	"github.com/MKhiriev/fleet-notify/internal/service"
	"github.com/MKhiriev/fleet-notify/internal/store"
	"github.com/MKhiriev/fleet-notify/internal/workers"
	"github.com/MKhiriev/fleet-notify/models"
	"golang.org/x/sync/errgroup"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("fleet-notify-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.DB, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	if err = storages.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	var querier service.NotificationQuerier
	if cfg.Adapter.RESTURL != "" {
		querier, err = adapter.NewPostgRESTAdapter(cfg.Adapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating PostgREST adapter")
		}
	}

	services, err := service.NewServices(storages, querier, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(log, storages.ChangeListener)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return background.Run(gctx)
	})
	g.Go(func() error {
		return srv.RunServer(gctx)
	})

	if err = g.Wait(); err != nil {
		log.Err(err).Msg("server stopped with error")
		return
	}
	log.Info().Msg("server stopped")
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
