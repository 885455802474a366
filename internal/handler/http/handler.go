package http

import (
	"github.com/MKhiriev/go-pdf-desk/internal/logger"
	"github.com/MKhiriev/go-pdf-desk/internal/service"
	"github.com/MKhiriev/go-pdf-desk/models"
)

type Handler struct {
	services      *service.Services
	maxUploadSize int64
	buildInfo     models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(services *service.Services, maxUploadSize int64, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Int64("max_upload_size", maxUploadSize).Msg("http handler created")
	return &Handler{
		services:      services,
		maxUploadSize: maxUploadSize,
		buildInfo:     buildInfo,
		logger:        logger,
	}
}
