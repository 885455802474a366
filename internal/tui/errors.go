// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-pdf-desk/internal/adapter"
	"github.com/MKhiriev/go-pdf-desk/models"
)

// Status texts shown under the upload form.
const (
	PendingText     = "Processing... please wait."
	SuccessText     = "Download started."
	serverErrPrefix = "Error: "
	transportPrefix = "An error occurred: "
)

var ErrUserQuit = errors.New("user quit")

// statusFromResult maps the outcome of a submission to the status line.
// Server rejections show the server's reason; every other failure shows the
// full error description.
func statusFromResult(err error) models.Status {
	if err == nil {
		return models.Status{Kind: models.StatusSuccess, Text: SuccessText}
	}

	var serverErr *adapter.ServerError
	if errors.As(err, &serverErr) {
		msg := serverErr.Message
		if msg == "" {
			msg = adapter.UnknownErrorMessage
		}
		return models.Status{Kind: models.StatusFailure, Text: serverErrPrefix + msg}
	}

	return models.Status{Kind: models.StatusFailure, Text: transportPrefix + err.Error()}
}
