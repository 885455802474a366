package store

import (
	"fmt"

	"github.com/MKhiriev/go-pdf-desk/internal/config"
	"github.com/MKhiriev/go-pdf-desk/internal/logger"
)

// ClientStorages groups the client-side storages into a single value that
// can be passed to the service layer. Downloads saves operation results into
// the download directory, LocalFiles reads the PDFs picked for upload.
type ClientStorages struct {
	Downloads  DownloadStorage
	LocalFiles LocalFileReader
}

// NewClientStorages initialises the client storage layer. The download
// directory is created if it does not exist yet.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("download_dir", cfg.DownloadDir).Msg("creating new storages...")

	downloads, err := NewDownloadFileStorage(cfg.DownloadDir, logger)
	if err != nil {
		return nil, fmt.Errorf("download storage: %w", err)
	}

	return &ClientStorages{
		Downloads:  downloads,
		LocalFiles: NewPDFFileReader(logger),
	}, nil
}
