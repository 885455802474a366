package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/MKhiriev/go-pdf-desk/internal/adapter"
	"github.com/MKhiriev/go-pdf-desk/internal/logger"
	"github.com/MKhiriev/go-pdf-desk/internal/store"
	"github.com/MKhiriev/go-pdf-desk/internal/utils"
	"github.com/MKhiriev/go-pdf-desk/models"
)

type clientUploadService struct {
	downloads  store.DownloadStorage
	localFiles store.LocalFileReader
	adapter    adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientUploadService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientUploadService {
	return &clientUploadService{
		downloads:  storages.Downloads,
		localFiles: storages.LocalFiles,
		adapter:    serverAdapter,
		logger:     logger,
	}
}

func (s *clientUploadService) Operations() []models.OperationDescriptor {
	return models.Operations()
}

func (s *clientUploadService) Inspect(ctx context.Context, path string) (models.LocalFile, error) {
	file, err := s.localFiles.Inspect(ctx, path)
	if err != nil {
		return models.LocalFile{}, fmt.Errorf("inspect %s: %w", filepath.Base(path), err)
	}
	return file, nil
}

func (s *clientUploadService) Submit(ctx context.Context, op models.OperationDescriptor, paths []string) (models.SubmitResult, error) {
	if op.Key == "" {
		return models.SubmitResult{}, ErrNoOperation
	}

	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = utils.NewTraceID()
		ctx = utils.WithTraceID(ctx, traceID)
	}
	log := s.logger.WithTraceID(traceID)

	log.Info().
		Str("operation", string(op.Key)).
		Int("files", len(paths)).
		Msg("submitting operation")

	files, closeAll, err := s.openAll(paths)
	if err != nil {
		log.Err(err).Msg("failed to open files for upload")
		return models.SubmitResult{}, err
	}
	defer closeAll()

	download, err := s.adapter.Submit(ctx, models.SubmitRequest{
		Operation: op,
		Files:     files,
		TraceID:   traceID,
	})
	if err != nil {
		var serverErr *adapter.ServerError
		if errors.As(err, &serverErr) {
			log.Warn().Int("status", serverErr.StatusCode).Str("reason", serverErr.Message).Msg("server rejected operation")
			return models.SubmitResult{}, err
		}
		log.Err(err).Msg("operation request failed")
		return models.SubmitResult{}, fmt.Errorf("submit %s: %w", op.Key, err)
	}

	savedPath, err := s.downloads.Save(ctx, download)
	if err != nil {
		log.Err(err).Str("file_name", download.FileName).Msg("failed to save download")
		return models.SubmitResult{}, fmt.Errorf("save %s: %w", download.FileName, err)
	}

	log.Info().
		Str("operation", string(op.Key)).
		Str("saved_path", savedPath).
		Int("size", len(download.Payload)).
		Msg("operation result saved")

	return models.SubmitResult{
		Operation: op,
		FileName:  download.FileName,
		SavedPath: savedPath,
		Size:      int64(len(download.Payload)),
	}, nil
}

// openAll opens paths in order. On failure every already opened file is
// closed before returning.
func (s *clientUploadService) openAll(paths []string) ([]models.UploadFile, func(), error) {
	files := make([]models.UploadFile, 0, len(paths))
	closers := make([]io.Closer, 0, len(paths))
	closeAll := func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}

	for _, p := range paths {
		rc, err := s.localFiles.Open(p)
		if err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("open %s: %w", filepath.Base(p), err)
		}
		closers = append(closers, rc)
		files = append(files, models.UploadFile{FileName: filepath.Base(p), Reader: rc})
	}

	return files, closeAll, nil
}
