package service

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/MKhiriev/go-pdf-desk/internal/config"
	"github.com/MKhiriev/go-pdf-desk/internal/logger"
	"github.com/MKhiriev/go-pdf-desk/internal/validators"
	"github.com/MKhiriev/go-pdf-desk/models"
)

// Download names used by the PDF server.
const (
	MergedFileName     = "merged.pdf"
	SplitFileName      = "split_pages.zip"
	CompressedFileName = "compressed.pdf"
	ImagesFileName     = "images.zip"

	firstPageFileName = "page_1.pdf"
)

type stubService struct {
	stub      config.Stub
	validator validators.Validator

	logger *logger.Logger
}

func NewStubService(cfg config.Stub, logger *logger.Logger) StubService {
	return &stubService{
		stub:      cfg,
		validator: validators.NewUploadValidator(),
		logger:    logger,
	}
}

func (s *stubService) Produce(ctx context.Context, req models.SubmitRequest) (models.Download, error) {
	if s.stub.FailStatus != 0 {
		return models.Download{}, &ForcedFailureError{StatusCode: s.stub.FailStatus, Message: s.stub.FailMessage}
	}

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Download{}, err
	}

	first, err := io.ReadAll(req.Files[0].Reader)
	if err != nil {
		return models.Download{}, fmt.Errorf("read %s: %w", req.Files[0].FileName, err)
	}

	switch req.Operation.Key {
	case models.OperationMerge:
		return models.Download{FileName: MergedFileName, ContentType: models.PDFContentType, Payload: first}, nil
	case models.OperationCompress:
		return models.Download{FileName: CompressedFileName, ContentType: models.PDFContentType, Payload: first}, nil
	case models.OperationSplit:
		archive, err := zipEntries(map[string][]byte{firstPageFileName: first})
		if err != nil {
			return models.Download{}, err
		}
		return models.Download{FileName: SplitFileName, ContentType: models.ZipContentType, Payload: archive}, nil
	case models.OperationPDF2Img:
		name := path.Base(req.Files[0].FileName)
		if name == "." || name == "/" {
			name = firstPageFileName
		}
		archive, err := zipEntries(map[string][]byte{name: first})
		if err != nil {
			return models.Download{}, err
		}
		return models.Download{FileName: ImagesFileName, ContentType: models.ZipContentType, Payload: archive}, nil
	default:
		return models.Download{}, validators.ErrUnknownOperation
	}
}

func zipEntries(entries map[string][]byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for name, data := range entries {
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("zip entry %s: %w", name, err)
		}
		if _, err = w.Write(data); err != nil {
			return nil, fmt.Errorf("zip entry %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close zip: %w", err)
	}
	return buf.Bytes(), nil
}
