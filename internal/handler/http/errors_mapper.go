package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pdf-desk/internal/app"
	"github.com/MKhiriev/go-pdf-desk/internal/logger"
	"github.com/MKhiriev/go-pdf-desk/internal/service"
	"github.com/MKhiriev/go-pdf-desk/internal/utils"
	"github.com/MKhiriev/go-pdf-desk/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrMergeNeedsTwoFiles: http.StatusBadRequest,
	validators.ErrSplitNeedsFile:     http.StatusBadRequest,
	validators.ErrCompressNeedsFile:  http.StatusBadRequest,
	validators.ErrConvertNeedsFile:   http.StatusBadRequest,
	validators.ErrEmptyFileName:      http.StatusBadRequest,
	validators.ErrUnknownOperation:   http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError writes the failure body for an error of the stub service.
// Client errors carry their own message; anything else is reported as an
// internal error.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var forced *service.ForcedFailureError
	if errors.As(err, &forced) {
		log.Info().Int("status", forced.StatusCode).Msg("answering with forced failure")
		_, _ = utils.WriteError(w, forced.Message, forced.StatusCode)
		return
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("failed to produce result")
		_, _ = utils.WriteError(w, app.MsgInternalServerError, status)
		return
	}

	log.Debug().Err(err).Int("status", status).Msg("request rejected")
	_, _ = utils.WriteError(w, err.Error(), status)
}
