package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-pdf-desk/internal/service"
	"github.com/MKhiriev/go-pdf-desk/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultPickerHeight = 10
	formChromeHeight    = 16
)

// UploadModel is the upload form of one session: it collects PDF files for
// the selected operation, submits them and shows the outcome.
type UploadModel struct {
	ctx      context.Context
	service  service.ClientUploadService
	startDir string

	picker  filepicker.Model
	spinner spinner.Model

	operation models.OperationDescriptor
	files     []models.LocalFile

	status    models.Status
	savedPath string
	note      string

	pending bool
	// session drops inspections of a cancelled session, seq drops
	// results of a cancelled or superseded submission.
	session int
	seq     int
	cancel  context.CancelFunc

	height int
	copyFn func(string) error
}

func NewUploadModel(ctx context.Context, uploadService service.ClientUploadService, startDir string) *UploadModel {
	m := &UploadModel{
		ctx:      ctx,
		service:  uploadService,
		startDir: startDir,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		copyFn:   clipboard.WriteAll,
	}
	m.picker = m.newPicker()
	return m
}

func (m *UploadModel) newPicker() filepicker.Model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".pdf"}
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.ShowHidden = false
	fp.AutoHeight = false
	fp.Height = m.pickerHeight()
	if m.startDir != "" {
		fp.CurrentDirectory = m.startDir
	}
	return fp
}

func (m *UploadModel) pickerHeight() int {
	if m.height <= 0 {
		return defaultPickerHeight
	}
	return max(m.height-formChromeHeight-len(m.files), 3)
}

func (m *UploadModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Operation returns the operation the form was opened for.
func (m *UploadModel) Operation() models.OperationDescriptor {
	return m.operation
}

// Files returns the current selection.
func (m *UploadModel) Files() []models.LocalFile {
	return m.files
}

// Status returns the current status line.
func (m *UploadModel) Status() models.Status {
	return m.status
}

func (m *UploadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStarted:
		m.reset()
		m.operation = msg.operation
		m.picker = m.newPicker()
		return m, m.picker.Init()

	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.picker.Height = m.pickerHeight()
		return m, nil

	case fileInspectedMsg:
		if msg.seq != m.session {
			return m, nil
		}
		if msg.err != nil {
			m.note = fmt.Sprintf("cannot use %s: %v", msg.file.Name, msg.err)
			return m, nil
		}
		m.addFile(msg.file)
		return m, nil

	case submitDoneMsg:
		if msg.seq != m.seq || !m.pending {
			return m, nil
		}
		m.pending = false
		m.cancel = nil
		m.status = statusFromResult(msg.err)
		if msg.err == nil {
			m.savedPath = msg.result.SavedPath
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.note = "copy failed: " + msg.err.Error()
		} else {
			m.note = "Path copied to clipboard."
		}
		return m, nil

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.reset()
			return m, func() tea.Msg { return SessionCancelled{} }
		case key.Matches(msg, keys.submit):
			return m, m.submit()
		case key.Matches(msg, keys.remove):
			if len(m.files) > 0 {
				m.files = m.files[:len(m.files)-1]
				m.picker.Height = m.pickerHeight()
			}
			return m, nil
		case key.Matches(msg, keys.copy):
			if m.savedPath == "" {
				return m, nil
			}
			path, copyFn := m.savedPath, m.copyFn
			return m, func() tea.Msg { return copiedMsg{err: copyFn(path)} }
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.note = ""
		return m, tea.Batch(cmd, m.inspect(path))
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.note = filepath.Base(path) + " is not a PDF file."
		return m, cmd
	}

	return m, cmd
}

// addFile appends f for multi-file operations and replaces the selection
// otherwise.
func (m *UploadModel) addFile(f models.LocalFile) {
	if !m.operation.AcceptsMultipleFiles {
		m.files = []models.LocalFile{f}
		return
	}
	m.files = append(m.files, f)
	m.picker.Height = m.pickerHeight()
}

func (m *UploadModel) inspect(path string) tea.Cmd {
	ctx, svc, seq := m.ctx, m.service, m.session
	return func() tea.Msg {
		file, err := svc.Inspect(ctx, path)
		if err != nil {
			file = models.LocalFile{Path: path, Name: filepath.Base(path)}
		}
		return fileInspectedMsg{seq: seq, file: file, err: err}
	}
}

// submit starts the upload of the current selection. It is a no-op without
// an operation and while a previous submission is still running.
func (m *UploadModel) submit() tea.Cmd {
	if m.operation.Key == "" || m.pending {
		return nil
	}

	paths := make([]string, 0, len(m.files))
	for _, f := range m.files {
		paths = append(paths, f.Path)
	}

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	m.pending = true
	m.seq++
	m.status = models.Status{Kind: models.StatusPending, Text: PendingText}
	m.savedPath = ""
	m.note = ""

	svc, op, seq := m.service, m.operation, m.seq
	run := func() tea.Msg {
		defer cancel()
		result, err := svc.Submit(ctx, op, paths)
		return submitDoneMsg{seq: seq, result: result, err: err}
	}

	return tea.Batch(run, m.spinner.Tick)
}

// reset cancels a running submission and clears selection and status.
func (m *UploadModel) reset() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.operation = models.OperationDescriptor{}
	m.files = nil
	m.status = models.Status{}
	m.savedPath = ""
	m.note = ""
	m.pending = false
	m.seq++
	m.session++
}

func (m *UploadModel) View() string {
	var b strings.Builder

	hint := "choose one PDF file"
	if m.operation.AcceptsMultipleFiles {
		hint = "choose PDF files, each one is added to the list"
	}
	b.WriteString(helpStyle.Render(hint))
	b.WriteString("\n\n")
	b.WriteString(m.picker.View())
	b.WriteString("\n\n")

	b.WriteString("Selected:\n")
	if len(m.files) == 0 {
		b.WriteString("  -\n")
	}
	for i, f := range m.files {
		pages := "?"
		if f.Pages > 0 {
			pages = fmt.Sprint(f.Pages)
		}
		b.WriteString(fmt.Sprintf("  %d. %s  %s, %s pages\n", i+1, fitText(f.Name, 48), humanSize(f.Size), pages))
	}

	if m.note != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.note))
		b.WriteString("\n")
	}

	if !m.status.IsZero() {
		b.WriteString("\n")
		line := m.status.Text
		if m.pending {
			line = m.spinner.View() + " " + line
		}
		b.WriteString(statusStyle(m.status.Kind).Render(line))
		b.WriteString("\n")
		if m.savedPath != "" {
			b.WriteString("Saved to: ")
			b.WriteString(m.savedPath)
			b.WriteString("\n")
		}
	}

	hotKeys := "enter: pick │ ctrl+s: submit │ backspace: remove last │ esc: back"
	if m.savedPath != "" {
		hotKeys += " │ c: copy path"
	}

	title := strings.ToUpper(m.operation.Title)
	if title == "" {
		title = "UPLOAD"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}
