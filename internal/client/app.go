package client

import (
	"context"

	"github.com/snapsift/snapsift/internal/config"
	"github.com/snapsift/snapsift/internal/logger"
	"github.com/snapsift/snapsift/internal/service"
	"github.com/snapsift/snapsift/internal/tui"
)

type App struct {
	services *service.Services
	tui      *tui.TUI
	workers  config.Workers
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, workers config.Workers, log *logger.Logger) (*App, error) {
	return &App{services: services, tui: ui, workers: workers, logger: log}, nil
}

// Run starts the background refresh job and blocks in the interactive UI
// until the user quits. The initial synchronization is triggered by the UI
// itself so the first screen can show progress.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.services.RefreshJob.Start(ctx, a.workers.RefreshInterval)
	defer a.services.RefreshJob.Stop()

	return a.tui.Run(ctx)
}
