package service

import (
	"github.com/MKhiriev/go-auth-sessions/internal/config"
	"github.com/MKhiriev/go-auth-sessions/internal/logger"
	"github.com/MKhiriev/go-auth-sessions/internal/store"
)

// Services aggregates every service exposed to the transport layer.
type Services struct {
	AuthService AuthService
}

// NewServices wires all services to their repositories and configuration.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	logger.Info().Msg("creating new services...")

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg, logger),
	}
}
