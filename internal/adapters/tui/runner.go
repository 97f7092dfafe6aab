package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run displays the live cart view until the user quits or the context is
// cancelled.
func Run(ctx context.Context, cart CartView, currency string, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	program := tea.NewProgram(NewModel(cart, currency), opts...)
	_, err := program.Run()
	if err != nil && ctx.Err() != nil {
		// Cancellation is the normal shutdown path, not a failure.
		return nil
	}
	return err
}
