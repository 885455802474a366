package config

import (
	"fmt"
	"time"
)

// Stub server defaults.
const (
	DefaultServerAddress = "localhost:5000"
	// DefaultMaxUploadSize matches the upload limit of the PDF server.
	DefaultMaxUploadSize int64 = 200 * 1024 * 1024
)

// ServerConfig is the stub server configuration view.
type ServerConfig struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	MaxUploadSize  int64
	Stub           Stub
}

// GetServerConfig builds and validates the stub server config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		MaxUploadSize:  cfg.Server.MaxUploadSize,
		Stub:           cfg.Stub,
	}

	if serverCfg.HTTPAddress == "" {
		serverCfg.HTTPAddress = DefaultServerAddress
	}
	if serverCfg.MaxUploadSize == 0 {
		serverCfg.MaxUploadSize = DefaultMaxUploadSize
	}

	return serverCfg
}
