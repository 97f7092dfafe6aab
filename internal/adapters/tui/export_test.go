// export_test.go exports internals for white-box testing.
package tui

import tea "github.com/charmbracelet/bubbletea"

// RefreshMsg exposes the internal refresh message for tests.
func RefreshMsg() tea.Msg {
	return refreshMsg{}
}
