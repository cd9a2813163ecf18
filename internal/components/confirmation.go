package components

import (
	"fmt"

	"github.com/benchkit/benchkit-cli/internal/styles"
	tea "github.com/charmbracelet/bubbletea"
)

// newConfirmation blocks until user presses enter
func newConfirmation(text string) error {
	_, err := tea.NewProgram(confirmationModel{
		text: text,
	}).Run()
	return err
}

var _ tea.Model = (*confirmationModel)(nil)

type confirmationModel struct {
	text string
}

func (m confirmationModel) View() string {
	return fmt.Sprintf(
		"%s\n\n%s\n\n",
		m.text,
		styles.ItalicText.Render("Press enter to continue..."),
	)
}

func (m confirmationModel) Init() tea.Cmd {
	return nil
}

func (m confirmationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "enter":
			return m, tea.Quit
		}
	}
	return m, nil
}
