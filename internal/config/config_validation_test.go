package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientConfig_Defaults(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{})

	assert.Equal(t, DefaultServerURL, cfg.Adapter.BaseURL)
	assert.Equal(t, DefaultDownloadDir, cfg.Storage.DownloadDir)
	assert.Equal(t, DefaultStartDir, cfg.App.StartDir)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	require.NoError(t, cfg.validate())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *ClientConfig) {}},
		{name: "https", mutate: func(c *ClientConfig) { c.Adapter.BaseURL = "https://pdf.example.com" }},
		{name: "no scheme", mutate: func(c *ClientConfig) { c.Adapter.BaseURL = "localhost:5000" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "ftp scheme", mutate: func(c *ClientConfig) { c.Adapter.BaseURL = "ftp://host" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "negative timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = -time.Second }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no download dir", mutate: func(c *ClientConfig) { c.Storage.DownloadDir = "" }, wantErr: ErrInvalidStorageConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newClientConfig(&StructuredConfig{})
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewServerConfig_Defaults(t *testing.T) {
	cfg := newServerConfig(&StructuredConfig{})

	assert.Equal(t, DefaultServerAddress, cfg.HTTPAddress)
	assert.Equal(t, DefaultMaxUploadSize, cfg.MaxUploadSize)
	assert.Zero(t, cfg.Stub.FailStatus)
	require.NoError(t, cfg.validate())
}

func TestServerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ServerConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *ServerConfig) {}},
		{name: "forced 413", mutate: func(c *ServerConfig) { c.Stub.FailStatus = 413 }},
		{name: "forced 200", mutate: func(c *ServerConfig) { c.Stub.FailStatus = 200 }, wantErr: ErrInvalidStubConfigs},
		{name: "forced 600", mutate: func(c *ServerConfig) { c.Stub.FailStatus = 600 }, wantErr: ErrInvalidStubConfigs},
		{name: "negative size", mutate: func(c *ServerConfig) { c.MaxUploadSize = -1 }, wantErr: ErrInvalidServerConfigs},
		{name: "empty address", mutate: func(c *ServerConfig) { c.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newServerConfig(&StructuredConfig{})
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
