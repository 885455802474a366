// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pdf-desk/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientUploadService defines the client-side contract for running a PDF
// operation: listing the operations, describing picked files, uploading them
// and saving the returned result.
type ClientUploadService interface {
	// Operations returns the fixed operation table in display order.
	Operations() []models.OperationDescriptor

	// Inspect returns size and page count of a picked file.
	// Returns an error if the path is not a readable regular file.
	Inspect(ctx context.Context, path string) (models.LocalFile, error)

	// Submit opens every file in paths, uploads them in a single request to
	// the endpoint of op and writes the returned payload into the download
	// directory. No retry is made.
	//
	// Returns ErrNoOperation when op is the zero descriptor, the adapter's
	// *adapter.ServerError when the server rejected the request, and a
	// wrapped error for every local or transport failure. Nothing is saved
	// unless the server answered with success.
	Submit(ctx context.Context, op models.OperationDescriptor, paths []string) (models.SubmitResult, error)
}
