// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: server URL %q must be http(s)://host[:port]", ErrInvalidAdapterConfigs, cfg.Adapter.BaseURL)
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	if cfg.Storage.DownloadDir == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.MaxUploadSize < 0 || cfg.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Stub.FailStatus != 0 && (cfg.Stub.FailStatus < 400 || cfg.Stub.FailStatus > 599) {
		return fmt.Errorf("%w: fail status %d", ErrInvalidStubConfigs, cfg.Stub.FailStatus)
	}

	return nil
}
