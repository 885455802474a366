// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-pdf-desk/internal/adapter"
	"github.com/MKhiriev/go-pdf-desk/internal/logger"
	"github.com/MKhiriev/go-pdf-desk/internal/mock"
	"github.com/MKhiriev/go-pdf-desk/internal/store"
	"github.com/MKhiriev/go-pdf-desk/internal/utils"
	"github.com/MKhiriev/go-pdf-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// trackedReader records whether Close was called.
type trackedReader struct {
	io.Reader
	closed bool
}

func (r *trackedReader) Close() error {
	r.closed = true
	return nil
}

func newTrackedReader(s string) *trackedReader {
	return &trackedReader{Reader: strings.NewReader(s)}
}

// newTestUploadSvc builds clientUploadService with mocks
func newTestUploadSvc(t *testing.T, ctrl *gomock.Controller) (
	*clientUploadService,
	*mock.MockDownloadStorage,
	*mock.MockLocalFileReader,
	*mock.MockServerAdapter,
) {
	t.Helper()
	downloads := mock.NewMockDownloadStorage(ctrl)
	localFiles := mock.NewMockLocalFileReader(ctrl)
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	storages := &store.ClientStorages{Downloads: downloads, LocalFiles: localFiles}
	svc := NewClientUploadService(storages, serverAdapter, logger.Nop()).(*clientUploadService)

	return svc, downloads, localFiles, serverAdapter
}

func mustOperation(t *testing.T, key models.OperationKey) models.OperationDescriptor {
	t.Helper()
	op, ok := models.LookupOperation(string(key))
	require.True(t, ok)
	return op
}

// ── Operations ───────────────────────────────────────────────────────────────

func TestClientUploadService_Operations(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestUploadSvc(t, ctrl)

	ops := svc.Operations()

	require.Len(t, ops, 4)
	assert.Equal(t, models.OperationMerge, ops[0].Key)
	assert.True(t, ops[0].AcceptsMultipleFiles)
}

// ── Inspect ──────────────────────────────────────────────────────────────────

func TestClientUploadService_Inspect(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, localFiles, _ := newTestUploadSvc(t, ctrl)
	ctx := context.Background()

	want := models.LocalFile{Path: "/tmp/a.pdf", Name: "a.pdf", Size: 10, Pages: 2}
	localFiles.EXPECT().Inspect(ctx, "/tmp/a.pdf").Return(want, nil)

	got, err := svc.Inspect(ctx, "/tmp/a.pdf")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientUploadService_Inspect_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, localFiles, _ := newTestUploadSvc(t, ctrl)

	localFiles.EXPECT().Inspect(gomock.Any(), "/tmp/dir").Return(models.LocalFile{}, store.ErrNotRegularFile)

	_, err := svc.Inspect(context.Background(), "/tmp/dir")
	require.ErrorIs(t, err, store.ErrNotRegularFile)
	assert.Contains(t, err.Error(), "dir")
}

// ── Submit ───────────────────────────────────────────────────────────────────

func TestClientUploadService_Submit_NoOperation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestUploadSvc(t, ctrl)

	_, err := svc.Submit(context.Background(), models.OperationDescriptor{}, []string{"/tmp/a.pdf"})
	assert.ErrorIs(t, err, ErrNoOperation)
}

func TestClientUploadService_Submit_MergeSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, downloads, localFiles, serverAdapter := newTestUploadSvc(t, ctrl)
	op := mustOperation(t, models.OperationMerge)

	a, b := newTrackedReader("A"), newTrackedReader("B")
	localFiles.EXPECT().Open("/docs/a.pdf").Return(a, nil)
	localFiles.EXPECT().Open("/docs/b.pdf").Return(b, nil)

	download := models.Download{FileName: "merged.pdf", ContentType: models.PDFContentType, Payload: []byte("%PDF-merged")}
	serverAdapter.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req models.SubmitRequest) (models.Download, error) {
			assert.Equal(t, op, req.Operation)
			require.Len(t, req.Files, 2)
			assert.Equal(t, "a.pdf", req.Files[0].FileName)
			assert.Equal(t, "b.pdf", req.Files[1].FileName)
			assert.NotEmpty(t, req.TraceID)

			traceID, ok := utils.GetTraceIDFromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, req.TraceID, traceID)
			return download, nil
		})
	downloads.EXPECT().Save(gomock.Any(), download).Return("/out/merged.pdf", nil)

	res, err := svc.Submit(context.Background(), op, []string{"/docs/a.pdf", "/docs/b.pdf"})
	require.NoError(t, err)

	assert.Equal(t, models.SubmitResult{
		Operation: op,
		FileName:  "merged.pdf",
		SavedPath: "/out/merged.pdf",
		Size:      int64(len(download.Payload)),
	}, res)
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}

func TestClientUploadService_Submit_KeepsTraceIDFromContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, downloads, localFiles, serverAdapter := newTestUploadSvc(t, ctrl)
	op := mustOperation(t, models.OperationCompress)
	ctx := utils.WithTraceID(context.Background(), "trace-1")

	localFiles.EXPECT().Open("/docs/a.pdf").Return(newTrackedReader("A"), nil)
	serverAdapter.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.SubmitRequest) (models.Download, error) {
			assert.Equal(t, "trace-1", req.TraceID)
			return models.Download{FileName: "compressed.pdf", Payload: []byte("x")}, nil
		})
	downloads.EXPECT().Save(gomock.Any(), gomock.Any()).Return("/out/compressed.pdf", nil)

	_, err := svc.Submit(ctx, op, []string{"/docs/a.pdf"})
	require.NoError(t, err)
}

func TestClientUploadService_Submit_ServerRejected_NoSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, localFiles, serverAdapter := newTestUploadSvc(t, ctrl)
	op := mustOperation(t, models.OperationMerge)

	r := newTrackedReader("A")
	localFiles.EXPECT().Open("/docs/a.pdf").Return(r, nil)
	serverAdapter.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(models.Download{}, &adapter.ServerError{StatusCode: 400, Message: "Upload at least two PDF files to merge."})
	// downloads.Save must not be called

	_, err := svc.Submit(context.Background(), op, []string{"/docs/a.pdf"})
	require.Error(t, err)

	var serverErr *adapter.ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.Equal(t, "Upload at least two PDF files to merge.", serverErr.Message)
	assert.True(t, r.closed)
}

func TestClientUploadService_Submit_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, localFiles, serverAdapter := newTestUploadSvc(t, ctrl)
	op := mustOperation(t, models.OperationSplit)
	transportErr := errors.New("connection refused")

	localFiles.EXPECT().Open("/docs/a.pdf").Return(newTrackedReader("A"), nil)
	serverAdapter.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(models.Download{}, transportErr)

	_, err := svc.Submit(context.Background(), op, []string{"/docs/a.pdf"})
	require.ErrorIs(t, err, transportErr)
	assert.False(t, errors.Is(err, adapter.ErrServerRejected))
}

func TestClientUploadService_Submit_OpenError_ClosesOpened(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, localFiles, _ := newTestUploadSvc(t, ctrl)
	op := mustOperation(t, models.OperationMerge)
	openErr := errors.New("permission denied")

	first := newTrackedReader("A")
	localFiles.EXPECT().Open("/docs/a.pdf").Return(first, nil)
	localFiles.EXPECT().Open("/docs/b.pdf").Return(nil, openErr)

	_, err := svc.Submit(context.Background(), op, []string{"/docs/a.pdf", "/docs/b.pdf"})
	require.ErrorIs(t, err, openErr)
	assert.Contains(t, err.Error(), "b.pdf")
	assert.True(t, first.closed)
}

func TestClientUploadService_Submit_MissingFile_SingleDescription(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	storages := &store.ClientStorages{
		Downloads:  mock.NewMockDownloadStorage(ctrl),
		LocalFiles: store.NewPDFFileReader(logger.Nop()),
	}
	svc := NewClientUploadService(storages, serverAdapter, logger.Nop())
	missing := filepath.Join(t.TempDir(), "missing.pdf")

	_, err := svc.Submit(context.Background(), mustOperation(t, models.OperationCompress), []string{missing})

	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, "open missing.pdf: open "+missing+": no such file or directory", err.Error())
}

func TestClientUploadService_Submit_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, downloads, localFiles, serverAdapter := newTestUploadSvc(t, ctrl)
	op := mustOperation(t, models.OperationPDF2Img)
	saveErr := errors.New("disk full")

	localFiles.EXPECT().Open("/docs/a.pdf").Return(newTrackedReader("A"), nil)
	serverAdapter.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(models.Download{FileName: "images.zip", Payload: []byte("PK")}, nil)
	downloads.EXPECT().Save(gomock.Any(), gomock.Any()).Return("", saveErr)

	_, err := svc.Submit(context.Background(), op, []string{"/docs/a.pdf"})
	require.ErrorIs(t, err, saveErr)
	assert.Contains(t, err.Error(), "images.zip")
}

func TestClientUploadService_Submit_NoFiles_StillCallsServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, serverAdapter := newTestUploadSvc(t, ctrl)
	op := mustOperation(t, models.OperationSplit)

	serverAdapter.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.SubmitRequest) (models.Download, error) {
			assert.Empty(t, req.Files)
			return models.Download{}, &adapter.ServerError{StatusCode: 400, Message: "Upload one PDF file to split."}
		})

	_, err := svc.Submit(context.Background(), op, nil)
	assert.ErrorIs(t, err, adapter.ErrServerRejected)
}

func TestNewClientServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.ClientStorages{
		Downloads:  mock.NewMockDownloadStorage(ctrl),
		LocalFiles: mock.NewMockLocalFileReader(ctrl),
	}

	services := NewClientServices(storages, mock.NewMockServerAdapter(ctrl), logger.Nop())

	require.NotNil(t, services)
	assert.NotNil(t, services.UploadService)
}
