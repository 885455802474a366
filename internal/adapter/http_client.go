package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pdf-desk/internal/config"
	"github.com/MKhiriev/go-pdf-desk/internal/logger"
	"github.com/MKhiriev/go-pdf-desk/internal/utils"
	"github.com/MKhiriev/go-pdf-desk/models"
	"github.com/go-resty/resty/v2"
)

var errEmptyEndpoint = errors.New("operation has no endpoint")

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter returns a [ServerAdapter] talking to cfg.BaseURL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	if cfg.BaseURL == "" {
		return nil, config.ErrInvalidAdapterConfigs
	}

	log.Info().Str("base_url", cfg.BaseURL).Dur("timeout", cfg.RequestTimeout).Msg("http server adapter created")

	return &httpServerAdapter{
		client: utils.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout),
		logger: log,
	}, nil
}

func (h *httpServerAdapter) Submit(ctx context.Context, req models.SubmitRequest) (models.Download, error) {
	if req.Operation.Endpoint == "" {
		return models.Download{}, errEmptyEndpoint
	}

	field := req.Operation.FieldName()
	parts := make([]*resty.MultipartField, 0, len(req.Files))
	for _, f := range req.Files {
		parts = append(parts, &resty.MultipartField{
			Param:       field,
			FileName:    f.FileName,
			ContentType: models.PDFContentType,
			Reader:      f.Reader,
		})
	}

	r := h.client.R().
		SetContext(ctx).
		SetMultipartFields(parts...)
	if req.TraceID != "" {
		r.SetHeader(utils.TraceIDHeader, req.TraceID)
	}

	resp, err := r.Post(req.Operation.Endpoint)
	if err != nil {
		return models.Download{}, fmt.Errorf("%s request: %w", req.Operation.Key, err)
	}

	h.logger.Debug().
		Str("trace_id", req.TraceID).
		Str("endpoint", req.Operation.Endpoint).
		Int("status", resp.StatusCode()).
		Int("size", len(resp.Body())).
		Dur("duration", resp.Time()).
		Msg("operation response received")

	if err = mapHTTPError(resp); err != nil {
		return models.Download{}, err
	}

	return models.Download{
		FileName:    FileNameFromDisposition(resp.Header().Get("Content-Disposition")),
		ContentType: resp.Header().Get("Content-Type"),
		Payload:     resp.Body(),
	}, nil
}
