// Package http implements the HTTP transport of the PDF stub server.
//
// It wires the operation routes (/api/merge, /api/split, /api/compress,
// /api/pdf2img) to the stub service and carries the cross-cutting concerns
// of every request: trace ids, access logging, panic recovery, upload size
// limits and method checks.
package http
