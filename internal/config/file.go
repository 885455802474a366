package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ErrUnsupportedConfigFormat is returned for config files whose extension is
// neither .json nor .toml.
var ErrUnsupportedConfigFormat = errors.New("unsupported config file format")

// StructuredFileConfig is the on-disk shape of a config file. The same
// layout is accepted as JSON and as TOML.
type StructuredFileConfig struct {
	App struct {
		StartDir string `json:"start_dir" toml:"start_dir"`
		LogFile  string `json:"log_file" toml:"log_file"`
	} `json:"app,omitempty" toml:"app"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"adapter,omitempty" toml:"adapter"`

	Storage struct {
		DownloadDir string `json:"download_dir" toml:"download_dir"`
	} `json:"storage,omitempty" toml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
		MaxUploadSize  int64    `json:"max_upload_size" toml:"max_upload_size"`
	} `json:"server,omitempty" toml:"server"`

	Stub struct {
		FailStatus  int    `json:"fail_status" toml:"fail_status"`
		FailMessage string `json:"fail_message" toml:"fail_message"`
	} `json:"stub,omitempty" toml:"stub"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".toml":
		if err = toml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding toml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFormat, path)
	}

	return &StructuredConfig{
		App: App{
			StartDir: fileCfg.App.StartDir,
			LogFile:  fileCfg.App.LogFile,
		},
		Adapter: Adapter{
			HTTPAddress:    fileCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DownloadDir: fileCfg.Storage.DownloadDir,
		},
		Server: Server{
			HTTPAddress:    fileCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(fileCfg.Server.RequestTimeout),
			MaxUploadSize:  fileCfg.Server.MaxUploadSize,
		},
		Stub: Stub{
			FailStatus:  fileCfg.Stub.FailStatus,
			FailMessage: fileCfg.Stub.FailMessage,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in JSON and TOML, and from integer nanoseconds in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalText(b []byte) error {
	tmp, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
