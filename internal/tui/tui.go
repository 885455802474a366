package tui

import (
	"context"

	"github.com/MKhiriev/go-pdf-desk/internal/logger"
	"github.com/MKhiriev/go-pdf-desk/internal/service"
	"github.com/MKhiriev/go-pdf-desk/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	startDir  string
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, startDir string, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		services:  services,
		startDir:  startDir,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows the operation picker and blocks until the user quits.
// Returns ErrUserQuit when the user left with ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		PagePicker: NewPickerModel(t.services.UploadService.Operations()),
		PageUpload: NewUploadModel(ctx, t.services.UploadService, t.startDir),
	}

	root := NewRootModel(pages, PagePicker, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("user quit")
		return ErrUserQuit
	}

	return nil
}
