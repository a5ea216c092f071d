// Package tui implements the terminal editing surface: a single textarea
// page wired to the sync engine, with save, revert and clipboard keys.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mikevskater/sheet-todo/internal/service"
)

type TUI struct {
	services *service.ClientServices
	surface  *service.BufferSurface
}

func New(services *service.ClientServices, surface *service.BufferSurface) (*TUI, error) {
	return &TUI{services: services, surface: surface}, nil
}

// Run drives the editor until the user quits. The caller is responsible for
// calling SyncService.Close afterwards to persist an unsaved draft.
func (t *TUI) Run(ctx context.Context) error {
	model := newEditorModel(ctx, t.services, t.surface)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	if _, ok := finalModel.(editorModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}
