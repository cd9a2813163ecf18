package components

import (
	tea "github.com/charmbracelet/bubbletea"
)

var _ tea.Model = (*exitModel)(nil)

// exitModel is returned by components which were interrupted by the user
// (ctrl+c). Callers translate it into an error.
type exitModel struct{}

func (exitModel) Init() tea.Cmd {
	return nil
}

func (m exitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}

func (exitModel) View() string {
	return ""
}

func (exitModel) Message() string {
	return "interrupted by user"
}
