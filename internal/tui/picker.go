package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-pdf-desk/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PickerModel is the operation picker: one row per operation, activated with
// enter or the row's digit.
type PickerModel struct {
	operations []models.OperationDescriptor
	idx        int
}

func NewPickerModel(operations []models.OperationDescriptor) *PickerModel {
	return &PickerModel{operations: operations}
}

func (m *PickerModel) Init() tea.Cmd {
	return nil
}

func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.operations)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.idx < len(m.operations) {
			return m, m.Activate(string(m.operations[m.idx].Key))
		}
	default:
		if n, err := strconv.Atoi(keyMsg.String()); err == nil && n >= 1 && n <= len(m.operations) {
			m.idx = n - 1
			return m, m.Activate(string(m.operations[m.idx].Key))
		}
	}

	return m, nil
}

// Activate returns the command selecting the operation registered under
// opKey, or nil for an unknown key.
func (m *PickerModel) Activate(opKey string) tea.Cmd {
	op, ok := models.LookupOperation(opKey)
	if !ok {
		return nil
	}
	return func() tea.Msg { return OperationSelected{Operation: op} }
}

func (m *PickerModel) View() string {
	var b strings.Builder

	idColWidth := lipgloss.Width(strconv.Itoa(len(m.operations))) + 2
	titleColWidth := lipgloss.Width("Operation")
	for _, op := range m.operations {
		if w := lipgloss.Width(op.Title); w > titleColWidth {
			titleColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s │ %s\n", idColWidth, "#", titleColWidth, "Operation", "Files"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", titleColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 8))
	b.WriteString("\n")

	for i, op := range m.operations {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		files := "one"
		if op.AcceptsMultipleFiles {
			files = "multiple"
		}
		row := fmt.Sprintf("%-*s │ %-*s │ %s", idColWidth, fmt.Sprintf("%s %d", cursor, i+1), titleColWidth, op.Title, files)
		if i == m.idx {
			row = cursorStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	return renderPage("PDF TOOLS", strings.TrimRight(b.String(), "\n"), "enter/1-4: choose │ ↑/↓: navigate │ v: version")
}
