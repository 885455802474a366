package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-pdf-desk/internal/logger"
	"github.com/MKhiriev/go-pdf-desk/models"
)

// maxNameAttempts bounds the "name (n).ext" search.
const maxNameAttempts = 1000

type downloadFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewDownloadFileStorage returns a [DownloadStorage] writing into dir.
func NewDownloadFileStorage(dir string, logger *logger.Logger) (DownloadStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create download dir: %w", err)
	}

	return &downloadFileStorage{dir: dir, logger: logger}, nil
}

func (s *downloadFileStorage) Save(ctx context.Context, d models.Download) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := safeFileName(d.FileName)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for i := 0; i < maxNameAttempts; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, i, ext)
		}
		path := filepath.Join(s.dir, candidate)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create download file: %w", err)
		}

		if _, err = f.Write(d.Payload); err != nil {
			_ = f.Close()
			_ = os.Remove(path)
			return "", fmt.Errorf("write download file: %w", err)
		}
		if err = f.Close(); err != nil {
			return "", fmt.Errorf("close download file: %w", err)
		}

		s.logger.Info().Str("path", path).Int("size", len(d.Payload)).Msg("download saved")
		return path, nil
	}

	return "", fmt.Errorf("%w: %s", ErrNoFreeFileName, name)
}

// safeFileName reduces a server-suggested name to a bare file name so that
// a download can never escape the download directory.
func safeFileName(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = filepath.Base(strings.TrimSpace(name))

	switch name {
	case "", ".", "..", "/":
		return models.DefaultDownloadName
	}
	return name
}
