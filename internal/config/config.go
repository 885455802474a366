// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by both
// binaries. It is populated by merging values from a config file,
// environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings of the interactive client process itself.
	App App `envPrefix:"APP_"`

	// Adapter holds settings of the client transport towards the PDF server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds settings of the local download storage.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen address and limits of the stub server.
	Server Server `envPrefix:"SERVER_"`

	// Stub holds the forced-failure switch of the stub server.
	Stub Stub `envPrefix:"STUB_"`

	// ConfigFilePath is the optional path to a JSON or TOML config file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds client process settings.
type App struct {
	// StartDir is the directory the file picker opens in.
	// Env: APP_START_DIR
	StartDir string `env:"START_DIR"`

	// LogFile is the file the client appends its JSON log to.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds the client-side transport settings.
type Adapter struct {
	// HTTPAddress is the base URL of the PDF server
	// (e.g. "http://localhost:5000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a whole submission, upload and download included.
	// Zero disables the timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds the local download storage settings.
type Storage struct {
	// DownloadDir is the directory results are saved to.
	// Env: STORAGE_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`
}

// Server holds the stub server network settings and limits.
type Server struct {
	// HTTPAddress is the TCP address the stub server listens on,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for reading a request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadSize is the largest accepted request body in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Stub configures canned failures of the stub server.
type Stub struct {
	// FailStatus, when non-zero, makes every endpoint fail with this status.
	// Env: STUB_FAIL_STATUS
	FailStatus int `env:"FAIL_STATUS"`

	// FailMessage is the "error" field sent with FailStatus. An empty
	// message produces a body without the field.
	// Env: STUB_FAIL_MESSAGE
	FailMessage string `env:"FAIL_MESSAGE"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources, using the process environment and os.Args.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withFile().
		build()
}
