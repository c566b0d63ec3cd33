package http

import (
	"time"

	"github.com/MKhiriev/fleet-notify/internal/config"
	"github.com/MKhiriev/fleet-notify/internal/logger"
	"github.com/MKhiriev/fleet-notify/internal/metrics"
	"github.com/MKhiriev/fleet-notify/internal/service"
	"github.com/MKhiriev/fleet-notify/internal/utils"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	now               func() time.Time
	keepAliveInterval time.Duration
	traceIDs          *utils.UUIDGenerator

	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:          services,
		cfg:               cfg,
		now:               time.Now,
		keepAliveInterval: defaultKeepAliveInterval,
		traceIDs:          utils.NewUUIDGenerator(),
		metrics:           metrics.GetMetrics(),
		logger:            logger,
	}
}
