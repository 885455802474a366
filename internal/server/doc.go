// Package server runs the HTTP transport of the PDF stub server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown on SIGINT, SIGTERM and SIGQUIT.
package server
