package http

import (
	"errors"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-pdf-desk/internal/app"
	"github.com/MKhiriev/go-pdf-desk/internal/logger"
	"github.com/MKhiriev/go-pdf-desk/internal/utils"
	"github.com/MKhiriev/go-pdf-desk/models"
)

// multipartMemory is the part of a multipart body kept in memory; the rest
// is spooled to temporary files by the standard library.
const multipartMemory = 32 << 20

// operation returns the handler of op's endpoint.
func (h *Handler) operation(op models.OperationDescriptor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if h.maxUploadSize > 0 {
			if r.ContentLength > h.maxUploadSize {
				log.Warn().Int64("content_length", r.ContentLength).Msg("upload rejected before reading")
				_, _ = utils.WriteError(w, app.MsgFileTooLarge, http.StatusRequestEntityTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
		}

		files, cleanup, err := h.uploadedFiles(r, op)
		defer cleanup()
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				log.Warn().Int64("limit", tooLarge.Limit).Msg("upload exceeds limit")
				_, _ = utils.WriteError(w, app.MsgFileTooLarge, http.StatusRequestEntityTooLarge)
				return
			}
			log.Err(err).Msg("failed to parse multipart body")
			_, _ = utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		traceID, _ := utils.GetTraceIDFromContext(r.Context())
		download, err := h.services.StubService.Produce(r.Context(), models.SubmitRequest{
			Operation: op,
			Files:     files,
			TraceID:   traceID,
		})
		if err != nil {
			h.writeServiceError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", download.ContentType)
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": download.FileName}))
		w.Header().Set("Content-Length", strconv.Itoa(len(download.Payload)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(download.Payload)
	}
}

// uploadedFiles parses the multipart body and opens the parts stored under
// op's field name. Single-file operations only look at the first part. A
// request that is not multipart yields no files, so validation can answer
// with the operation's own message.
func (h *Handler) uploadedFiles(r *http.Request, op models.OperationDescriptor) ([]models.UploadFile, func(), error) {
	opened := make([]multipart.File, 0)
	cleanup := func() {
		for _, f := range opened {
			_ = f.Close()
		}
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, cleanup, nil
		}
		return nil, cleanup, err
	}

	headers := r.MultipartForm.File[op.FieldName()]
	if !op.AcceptsMultipleFiles && len(headers) > 1 {
		headers = headers[:1]
	}

	files := make([]models.UploadFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, cleanup, err
		}
		opened = append(opened, f)
		files = append(files, models.UploadFile{FileName: fh.Filename, Reader: f})
	}

	return files, cleanup, nil
}
