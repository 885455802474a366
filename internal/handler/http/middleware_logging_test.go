package http

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-pdf-desk/internal/config"
	"github.com/MKhiriev/go-pdf-desk/internal/logger"
	"github.com/MKhiriev/go-pdf-desk/internal/service"
	"github.com/MKhiriev/go-pdf-desk/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newLoggedRouter returns the stub router whose request logs go to buf.
func newLoggedRouter(t *testing.T, maxUploadSize int64, buf *bytes.Buffer) http.Handler {
	t.Helper()
	log := &logger.Logger{Logger: zerolog.New(buf)}
	cfg := &config.ServerConfig{HTTPAddress: ":0", MaxUploadSize: maxUploadSize}
	return NewHandler(service.NewServices(cfg, logger.Nop()), maxUploadSize, models.AppBuildInfo{}, log).Init()
}

// requestEntry returns the access log line written by withLogging.
func requestEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry))
		if _, ok := entry["uri"]; ok {
			return entry
		}
	}
	t.Fatal("no request log entry written")
	return nil
}

func TestWithLogging_UploadRejectedAsTooLarge(t *testing.T) {
	var buf bytes.Buffer
	router := newLoggedRouter(t, 64, &buf)

	body, contentType := multipartBody(t, part{field: "files", name: "big.pdf", content: strings.Repeat("x", 512)})
	size := body.Len()
	req := httptest.NewRequest(http.MethodPost, "/api/merge", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	entry := requestEntry(t, &buf)
	assert.Equal(t, "/api/merge", entry["uri"])
	assert.Equal(t, http.MethodPost, entry["method"])
	assert.EqualValues(t, http.StatusRequestEntityTooLarge, entry["status"])
	assert.EqualValues(t, size, entry["content_length"])
	assert.EqualValues(t, rec.Body.Len(), entry["size"])
	assert.NotEmpty(t, entry["trace_id"])
}

func TestWithLogging_MethodNotAllowed(t *testing.T) {
	var buf bytes.Buffer
	router := newLoggedRouter(t, 1<<20, &buf)

	req := httptest.NewRequest(http.MethodGet, "/api/split", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	entry := requestEntry(t, &buf)
	assert.Equal(t, "/api/split", entry["uri"])
	assert.Equal(t, http.MethodGet, entry["method"])
	assert.EqualValues(t, http.StatusMethodNotAllowed, entry["status"])
	assert.EqualValues(t, rec.Body.Len(), entry["size"])
}

func TestWithLogging_DownloadSize(t *testing.T) {
	var buf bytes.Buffer
	router := newLoggedRouter(t, 1<<20, &buf)

	pdf := "%PDF-1.4\n" + strings.Repeat("\x00\xff", 300)
	rec := post(t, router, "/api/compress", part{field: "file", name: "in.pdf", content: pdf})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, pdf, rec.Body.String())

	entry := requestEntry(t, &buf)
	assert.Equal(t, "/api/compress", entry["uri"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.EqualValues(t, len(pdf), entry["size"])
}
