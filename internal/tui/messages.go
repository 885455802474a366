package tui

import (
	"github.com/MKhiriev/go-pdf-desk/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks [RootModel] to switch to Page. A non-nil Payload is
// delivered to the page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// OperationSelected is emitted by the picker when the user activates an
// operation.
type OperationSelected struct {
	Operation models.OperationDescriptor
}

// SessionCancelled is emitted by the upload form on cancel.
type SessionCancelled struct{}

// sessionStarted opens the upload form for a freshly selected operation.
type sessionStarted struct {
	operation models.OperationDescriptor
}

type fileInspectedMsg struct {
	seq  int
	file models.LocalFile
	err  error
}

type submitDoneMsg struct {
	seq    int
	result models.SubmitResult
	err    error
}

type copiedMsg struct {
	err error
}
