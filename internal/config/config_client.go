package config

import (
	"fmt"
	"time"
)

// Client defaults.
const (
	DefaultServerURL   = "http://localhost:5000"
	DefaultDownloadDir = "."
	DefaultStartDir    = "."
)

// ClientApp holds client process settings.
type ClientApp struct {
	StartDir string
	LogFile  string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the PDF server base URL, without trailing slash.
	BaseURL string
	// RequestTimeout bounds one submission; zero means no timeout.
	RequestTimeout time.Duration
}

// ClientStorage groups download storage settings.
type ClientStorage struct {
	DownloadDir string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			StartDir: cfg.App.StartDir,
			LogFile:  cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DownloadDir: cfg.Storage.DownloadDir,
		},
	}

	if clientCfg.Adapter.BaseURL == "" {
		clientCfg.Adapter.BaseURL = DefaultServerURL
	}
	if clientCfg.Storage.DownloadDir == "" {
		clientCfg.Storage.DownloadDir = DefaultDownloadDir
	}
	if clientCfg.App.StartDir == "" {
		clientCfg.App.StartDir = DefaultStartDir
	}

	return clientCfg
}
