// Package tui implements the snapsift terminal user interface on top of
// bubbletea. The UI is a thin shell over the service layer: every state
// transition happens in the services, and the models only render the
// resulting collections.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/snapsift/snapsift/internal/logger"
	"github.com/snapsift/snapsift/internal/service"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.Services
	freeQuota int
}

func New(services *service.Services, freeQuota int, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, freeQuota: freeQuota}, nil
}

// Run drives the interactive session until the user quits. The initial
// refresh is kicked off from the model's Init.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.freeQuota)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.err != nil && !errors.Is(result.err, ErrUserQuit) {
		return result.err
	}
	return nil
}
