package service

import (
	"context"

	"github.com/MKhiriev/go-pdf-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// StubService produces the canned result the stub server returns for an
// operation. It never transforms the uploaded documents.
type StubService interface {
	// Produce validates req and returns the download for req.Operation.
	// Validation failures are returned as validators errors whose text is
	// the message of the PDF server; a configured canned failure is returned
	// as *ForcedFailureError.
	Produce(ctx context.Context, req models.SubmitRequest) (models.Download, error)
}
