// Package tui implements the live cart view using Bubble Tea.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/shopfront/internal/core/domain"
	"go.trai.ch/shopfront/internal/ui/render"
	"go.trai.ch/shopfront/internal/ui/style"
)

// CartView is the read side of the cart store consumed by the view.
type CartView interface {
	// LinesWithProducts returns the joined view of cart lines and
	// resolved product records.
	LinesWithProducts() []domain.HydratedLine

	// Changes returns the coalesced change signal channel.
	Changes() <-chan struct{}
}

// refreshMsg signals that the cart state changed and the view must re-read it.
type refreshMsg struct{}

var footerStyle = lipgloss.NewStyle().Foreground(style.Slate)

// Model renders the cart and re-reads it on every change signal.
type Model struct {
	cart     CartView
	currency string
	lines    []domain.HydratedLine
}

// NewModel creates a live view over the given cart.
func NewModel(cart CartView, currency string) Model {
	return Model{
		cart:     cart,
		currency: currency,
		lines:    cart.LinesWithProducts(),
	}
}

// Init starts listening for cart changes.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

// Update handles change signals and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		m.lines = m.cart.LinesWithProducts()
		return m, m.waitForChange()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the current cart with a key hint footer.
func (m Model) View() string {
	return render.Cart(m.lines, m.currency) + footerStyle.Render("press q to quit") + "\n"
}

// waitForChange blocks on the change channel and converts the signal into
// a refresh message. Consumers re-read the store rather than receiving
// state through the channel, so bursts coalesce naturally.
func (m Model) waitForChange() tea.Cmd {
	return func() tea.Msg {
		<-m.cart.Changes()
		return refreshMsg{}
	}
}
