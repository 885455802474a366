// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OperationKey identifies one of the PDF operations offered by the server.
type OperationKey string

const (
	OperationMerge    OperationKey = "merge"
	OperationSplit    OperationKey = "split"
	OperationCompress OperationKey = "compress"
	OperationPDF2Img  OperationKey = "pdf2img"
)

// Multipart field names used for uploaded files.
const (
	FieldFiles = "files"
	FieldFile  = "file"
)

// OperationDescriptor is the static description of a single PDF operation:
// its label, the server endpoint it calls and how many files it accepts.
//
// Descriptors are values; the table returned by [Operations] is fixed at
// startup and is never mutated.
type OperationDescriptor struct {
	Key                  OperationKey
	Title                string
	Endpoint             string
	AcceptsMultipleFiles bool
}

// FieldName returns the multipart field under which files are sent:
// "files" (repeated) for multi-file operations and "file" otherwise.
func (o OperationDescriptor) FieldName() string {
	if o.AcceptsMultipleFiles {
		return FieldFiles
	}
	return FieldFile
}

var operations = []OperationDescriptor{
	{Key: OperationMerge, Title: "Merge PDFs", Endpoint: "/api/merge", AcceptsMultipleFiles: true},
	{Key: OperationSplit, Title: "Split PDF", Endpoint: "/api/split"},
	{Key: OperationCompress, Title: "Compress PDF", Endpoint: "/api/compress"},
	{Key: OperationPDF2Img, Title: "Convert PDF to Images (PNG)", Endpoint: "/api/pdf2img"},
}

// Operations returns the supported operations in display order.
// The returned slice is a copy and may be modified by the caller.
func Operations() []OperationDescriptor {
	out := make([]OperationDescriptor, len(operations))
	copy(out, operations)
	return out
}

// LookupOperation returns the descriptor registered under key.
// ok is false for unknown keys.
func LookupOperation(key string) (OperationDescriptor, bool) {
	for _, op := range operations {
		if string(op.Key) == key {
			return op, true
		}
	}
	return OperationDescriptor{}, false
}
