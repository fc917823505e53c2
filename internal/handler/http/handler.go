package http

import (
	"github.com/MKhiriev/go-auth-sessions/internal/logger"
	"github.com/MKhiriev/go-auth-sessions/internal/metrics"
	"github.com/MKhiriev/go-auth-sessions/internal/service"
)

type Handler struct {
	services *service.Services

	metrics *metrics.Collector

	logger *logger.Logger
}

func NewHandler(services *service.Services, collector *metrics.Collector, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  collector,
		logger:   logger,
	}
}
