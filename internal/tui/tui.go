// Package tui implements the terminal dialog that edits the name, version and
// summary of a composite solution.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-uaa/internal/adapter"
	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/models"
)

// TUI runs dialogs on the terminal.
type TUI struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *TUI {
	return &TUI{adapter: serverAdapter, logger: logger}
}

// CompositeDialog opens the dialog for solution and blocks until it closes.
// It returns nil when the user cancels, otherwise the update that the server
// accepted.
func (t *TUI) CompositeDialog(ctx context.Context, solution models.Solution) (*models.CompositeSolutionUpdate, error) {
	model := NewCompositeDialogModel(ctx, t.adapter, solution)

	finalModel, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return nil, err
	}

	result, ok := finalModel.(*CompositeDialogModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}

	if result.Result() == nil {
		t.logger.Debug().Str("uuid", solution.UUID).Msg("composite dialog cancelled")
	}
	return result.Result(), nil
}
