package validators

import (
	"context"

	"github.com/MKhiriev/go-pdf-desk/models"
)

// Field name constants accepted by [UploadValidator.Validate].
const (
	// FieldOperation checks that the request targets a known operation.
	FieldOperation = "operation"

	// FieldFiles checks the number of uploaded parts against the operation.
	FieldFiles = "files"

	// FieldFileNames checks that every uploaded part has a filename.
	FieldFileNames = "file_names"
)

// UploadValidator validates [models.SubmitRequest] values received by the
// stub server.
type UploadValidator struct{}

func NewUploadValidator() Validator {
	return &UploadValidator{}
}

func (v *UploadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SubmitRequest:
		return v.validateSubmitRequest(ctx, value, fields...)
	case *models.SubmitRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSubmitRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UploadValidator) validateSubmitRequest(_ context.Context, req models.SubmitRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOperation, FieldFiles}
	}

	for _, f := range fields {
		switch f {
		case FieldOperation:
			if _, ok := models.LookupOperation(string(req.Operation.Key)); !ok {
				return ErrUnknownOperation
			}
		case FieldFiles:
			if err := minFilesError(req.Operation.Key, len(req.Files)); err != nil {
				return err
			}
		case FieldFileNames:
			for _, file := range req.Files {
				if file.FileName == "" {
					return ErrEmptyFileName
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// minFilesError returns the error of key when n parts are not enough.
func minFilesError(key models.OperationKey, n int) error {
	switch key {
	case models.OperationMerge:
		if n < 2 {
			return ErrMergeNeedsTwoFiles
		}
	case models.OperationSplit:
		if n < 1 {
			return ErrSplitNeedsFile
		}
	case models.OperationCompress:
		if n < 1 {
			return ErrCompressNeedsFile
		}
	case models.OperationPDF2Img:
		if n < 1 {
			return ErrConvertNeedsFile
		}
	default:
		return ErrUnknownOperation
	}
	return nil
}
