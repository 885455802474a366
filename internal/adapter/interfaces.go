// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the PDF desk client
// and the PDF server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from HTTP. Failures reported by the server are returned as
// [*ServerError]; everything else (refused connections, timeouts, broken
// bodies) is returned as a wrapped transport error.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pdf-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the PDF server.
type ServerAdapter interface {
	// Submit uploads req.Files as multipart form data to the endpoint of
	// req.Operation and returns the binary result. The field name is taken
	// from the operation: "files" for multi-file operations, "file"
	// otherwise. A single attempt is made.
	//
	// A non-2xx answer is returned as [*ServerError].
	Submit(ctx context.Context, req models.SubmitRequest) (models.Download, error)
}
