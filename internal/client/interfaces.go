// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is what cmd/client runs: the TUI session plus the services behind
// it.
type Client interface {
	// Run blocks until the user leaves the UI. A ctrl+c quit is not an
	// error.
	Run() error
}
