// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// PDF desk stub server handlers and services.
//
// All Msg* constants are human-readable message strings written into the
// "error" field of JSON response bodies. They match the wording of the PDF
// server so the client shows the same text against both.
package app

const (
	// MsgMergeNeedsTwoFiles is returned when /api/merge receives fewer than
	// two "files" parts.
	MsgMergeNeedsTwoFiles = "Upload at least two PDF files to merge."

	// MsgSplitNeedsFile is returned when /api/split receives no "file" part.
	MsgSplitNeedsFile = "Upload one PDF file to split."

	// MsgCompressNeedsFile is returned when /api/compress receives no "file"
	// part.
	MsgCompressNeedsFile = "Upload PDF file to compress."

	// MsgConvertNeedsFile is returned when /api/pdf2img receives no "file"
	// part.
	MsgConvertNeedsFile = "Upload PDF file to convert to images."

	// MsgFileTooLarge is returned when the request body exceeds the
	// configured upload limit.
	MsgFileTooLarge = "file too large"

	// MsgInvalidDataProvided is returned when the multipart body cannot be
	// parsed.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgMethodNotAllowed is returned for any method other than POST on an
	// operation endpoint.
	MsgMethodNotAllowed = "method not allowed"
)
