package tui

import (
	"github.com/MKhiriev/go-pdf-desk/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names registered in [RootModel].
const (
	PagePicker = "picker"
	PageUpload = "upload"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) owns the session (the selected operation)
// 3) handles global Ctrl+C quit and the build info window
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model
	page    string

	selected    models.OperationDescriptor
	hasSelected bool

	window     tea.WindowSizeMsg
	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		page:      startPage,
		buildInfo: buildInfo,
	}
}

// Selected returns the operation of the current session.
func (r RootModel) Selected() (models.OperationDescriptor, bool) {
	return r.selected, r.hasSelected
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.version) && r.page == PagePicker:
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.window = msg
	case OperationSelected:
		op, ok := models.LookupOperation(string(msg.Operation.Key))
		if !ok {
			return r, nil
		}
		r.selected, r.hasSelected = op, true
		return r.navigate(PageUpload, sessionStarted{operation: op})
	case SessionCancelled:
		r.selected, r.hasSelected = models.OperationDescriptor{}, false
		return r.navigate(PagePicker, nil)
	case NavigateTo:
		if msg.Page == PagePicker {
			r.selected, r.hasSelected = models.OperationDescriptor{}, false
		}
		return r.navigate(msg.Page, msg.Payload)
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

// navigate switches to page. The last window size is replayed so pages that
// were hidden while the terminal resized can lay themselves out.
func (r RootModel) navigate(page string, payload tea.Msg) (tea.Model, tea.Cmd) {
	next, exists := r.pages[page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = next
	r.page = page

	var cmds []tea.Cmd
	if payload != nil {
		cmds = append(cmds, func() tea.Msg { return payload })
	} else {
		cmds = append(cmds, r.current.Init())
	}
	if r.window.Width > 0 || r.window.Height > 0 {
		window := r.window
		cmds = append(cmds, func() tea.Msg { return window })
	}

	return r, tea.Batch(cmds...)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("PDF DESK", "", "")
	}
	return r.current.View()
}
