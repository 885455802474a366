package service

import (
	"github.com/MKhiriev/go-pdf-desk/internal/adapter"
	"github.com/MKhiriev/go-pdf-desk/internal/logger"
	"github.com/MKhiriev/go-pdf-desk/internal/store"
)

type ClientServices struct {
	UploadService ClientUploadService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		UploadService: NewClientUploadService(storages, serverAdapter, logger),
	}
}
