// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the client's local file-system layer: reading the
// PDFs a user picked for upload and saving the results the server returns.
package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-pdf-desk/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// DownloadStorage persists operation results.
type DownloadStorage interface {
	// Save writes d.Payload under a name derived from d.FileName and returns
	// the path of the written file. Existing files are never overwritten.
	Save(ctx context.Context, d models.Download) (string, error)
}

// LocalFileReader gives access to files picked for upload.
type LocalFileReader interface {
	// Inspect returns size and page count of the file at path.
	// A file that is not a readable PDF is still returned, with zero Pages.
	Inspect(ctx context.Context, path string) (models.LocalFile, error)

	// Open opens the file at path for reading.
	Open(path string) (io.ReadCloser, error)
}
