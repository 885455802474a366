package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.buildInfo.BuildVersion()
	if version == "" {
		version = "N/A"
	}

	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(version))
}
