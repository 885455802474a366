package models

// ErrorResponse is the JSON body the PDF server returns on failure.
// The field is optional on the wire.
type ErrorResponse struct {
	Error string `json:"error,omitempty"`
}
