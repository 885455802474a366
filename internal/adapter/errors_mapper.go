package adapter

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pdf-desk/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &ServerError{
		StatusCode: resp.StatusCode(),
		Message:    errorMessageFromBody(resp.Body()),
	}
}

// errorMessageFromBody extracts the "error" field of a JSON failure body.
// Empty bodies, non-JSON bodies and bodies without a string "error" field
// all yield [UnknownErrorMessage].
func errorMessageFromBody(body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == "" {
		return UnknownErrorMessage
	}
	return errResp.Error
}
