package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-pdf-desk/internal/logger"
	"github.com/MKhiriev/go-pdf-desk/models"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

type pdfFileReader struct {
	logger *logger.Logger
}

// NewPDFFileReader returns a [LocalFileReader] that uses pdfcpu to count the
// pages of picked files.
func NewPDFFileReader(logger *logger.Logger) LocalFileReader {
	return &pdfFileReader{logger: logger}
}

func (r *pdfFileReader) Inspect(ctx context.Context, path string) (models.LocalFile, error) {
	st, err := os.Stat(path)
	if err != nil {
		return models.LocalFile{}, err
	}
	if !st.Mode().IsRegular() {
		return models.LocalFile{}, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	file := models.LocalFile{
		Path: path,
		Name: filepath.Base(path),
		Size: st.Size(),
	}

	if err = ctx.Err(); err != nil {
		return file, err
	}

	pages, err := api.PageCountFile(path)
	if err != nil {
		// The server decides what is a valid PDF; the count is informational.
		r.logger.Debug().Err(err).Str("path", path).Msg("page count unavailable")
		return file, nil
	}
	file.Pages = pages

	return file, nil
}

func (r *pdfFileReader) Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}
