package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calvinalkan/agent-todo/internal/config"
	"github.com/calvinalkan/agent-todo/internal/todo"
)

// Run starts the full-screen UI on in/out and blocks until the user quits
// or ctx is cancelled. Cancellation is not an error.
func Run(ctx context.Context, ctrl *todo.Controller, cfg config.Config, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(
		New(ctrl, cfg),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}

		return fmt.Errorf("running ui: %w", err)
	}

	return nil
}
