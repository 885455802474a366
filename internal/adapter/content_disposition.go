package adapter

import (
	"strings"

	"github.com/MKhiriev/go-pdf-desk/models"
)

// FileNameFromDisposition returns the download name suggested by a
// Content-Disposition header value: the text after "filename=", cut at the
// next ";", with surrounding spaces and double quotes removed.
// [models.DefaultDownloadName] is returned when no name is present.
func FileNameFromDisposition(disposition string) string {
	_, after, found := strings.Cut(disposition, "filename=")
	if !found {
		return models.DefaultDownloadName
	}

	name, _, _ := strings.Cut(after, ";")
	name = strings.Trim(strings.TrimSpace(name), `"`)
	if name == "" {
		return models.DefaultDownloadName
	}

	return name
}
