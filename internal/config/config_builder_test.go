package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Nil(t, b.fileCfg)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterLayerWins verifies that non-zero fields of later layers
// override earlier ones while zero fields leave them intact.
func TestBuild_LaterLayerWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://env:5000", RequestTimeout: time.Minute}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://flag:5000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://flag:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
}

func TestBuild_FileIsLowestLayer(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{DownloadDir: "/from-env"}})
	b.fileCfg = &StructuredConfig{
		Storage: Storage{DownloadDir: "/from-file"},
		App:     App{StartDir: "/file-start"},
	}

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/from-env", cfg.Storage.DownloadDir)
	assert.Equal(t, "/file-start", cfg.App.StartDir)
}

func TestWithFile_UsesLastPath(t *testing.T) {
	first := writeConfigFile(t, "first.json", `{"storage": {"download_dir": "/first"}}`)
	second := writeConfigFile(t, "second.json", `{"storage": {"download_dir": "/second"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{ConfigFilePath: first},
		&StructuredConfig{ConfigFilePath: second},
	)

	cfg, err := b.withFile().build()
	require.NoError(t, err)
	assert.Equal(t, "/second", cfg.Storage.DownloadDir)
}

func TestWithFile_NoPath(t *testing.T) {
	b := newConfigBuilder().withFile()
	assert.NoError(t, b.err)
	assert.Nil(t, b.fileCfg)
}

func TestWithFile_ErrorIsCollected(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: filepath.Join(t.TempDir(), "missing.json")})

	cfg, err := b.withFile().build()
	assert.Nil(t, cfg)
	require.Error(t, err)
}

func TestWithFlags_ErrorIsCollected(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-definitely-unknown"})
	assert.Error(t, b.err)
}

func TestWithDotEnv_LoadsMissingVariablesOnly(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_START_DIR", "/already-set")

	p := writeConfigFile(t, ".env", "ADAPTER_ADDRESS=http://dotenv:5000\nAPP_START_DIR=/from-dotenv\n")

	b := newConfigBuilder()
	b.dotEnvAt = []string{p, filepath.Join(t.TempDir(), "absent.env")}

	cfg, err := b.withDotEnv().withEnv().build()
	require.NoError(t, err)
	assert.Equal(t, "http://dotenv:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/already-set", cfg.App.StartDir)
}

func TestFullChain_Precedence(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ADAPTER_ADDRESS", "http://env:5000")
	t.Setenv("STORAGE_DOWNLOAD_DIR", "/env-dl")

	file := writeConfigFile(t, "c.toml", `
[adapter]
http_address = "http://file:5000"
request_timeout = "10s"

[app]
start_dir = "/file-start"
`)

	b := newConfigBuilder()
	b.dotEnvAt = nil
	cfg, err := b.withDotEnv().
		withEnv().
		withFlags([]string{"-o", "/flag-dl", "-c", file}).
		withFile().
		build()
	require.NoError(t, err)

	assert.Equal(t, "http://env:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/flag-dl", cfg.Storage.DownloadDir)
	assert.Equal(t, "/file-start", cfg.App.StartDir)
}
