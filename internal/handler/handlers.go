package handler

import (
	"github.com/MKhiriev/go-pdf-desk/internal/config"
	"github.com/MKhiriev/go-pdf-desk/internal/handler/http"
	"github.com/MKhiriev/go-pdf-desk/internal/logger"
	"github.com/MKhiriev/go-pdf-desk/internal/service"
	"github.com/MKhiriev/go-pdf-desk/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.ServerConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.MaxUploadSize, buildInfo, logger),
	}, nil
}
