// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// DefaultDownloadName is used when the server does not suggest a filename.
const DefaultDownloadName = "output.pdf"

// PDFContentType is the content type attached to every uploaded part.
const PDFContentType = "application/pdf"

// ZipContentType is the content type of multi-file results.
const ZipContentType = "application/zip"

// UploadFile is a single multipart part of a submission.
type UploadFile struct {
	FileName string
	Reader   io.Reader
}

// SubmitRequest is everything the transport needs to call an operation.
type SubmitRequest struct {
	Operation OperationDescriptor
	Files     []UploadFile
	TraceID   string
}

// Download is the binary result of a successful submission.
type Download struct {
	FileName    string
	ContentType string
	Payload     []byte
}

// SubmitResult describes a download after it has been written to disk.
type SubmitResult struct {
	Operation OperationDescriptor
	FileName  string
	SavedPath string
	Size      int64
}

// LocalFile is a file the user picked for upload.
type LocalFile struct {
	Path string
	Name string
	Size int64
	// Pages is the number of pages reported by the PDF reader, or 0 when
	// the file could not be inspected.
	Pages int
}
