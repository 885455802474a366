package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pdf-desk/internal/logger"
	"github.com/MKhiriev/go-pdf-desk/internal/service"
	"github.com/MKhiriev/go-pdf-desk/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (Client, error) {
	if services == nil || ui == nil {
		return nil, ErrIncompleteApp
	}
	return &App{services: services, tui: ui, logger: logger}, nil
}

// Run blocks until the user leaves the UI. Quitting with ctrl+c is a normal
// exit. Submissions still in flight are cancelled on return.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.logger.Info().Msg("client started")

	err := a.tui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("client stopped by user")
		return nil
	}
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
