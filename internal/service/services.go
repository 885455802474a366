package service

import (
	"github.com/MKhiriev/go-pdf-desk/internal/config"
	"github.com/MKhiriev/go-pdf-desk/internal/logger"
)

type Services struct {
	StubService StubService
}

func NewServices(cfg *config.ServerConfig, logger *logger.Logger) *Services {
	return &Services{
		StubService: NewStubService(cfg.Stub, logger),
	}
}
