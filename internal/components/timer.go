package components

import (
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
)

// newTimer displays a countdown for given timeout and returns when it expires
func newTimer(timeout time.Duration, title string) error {
	_, err := tea.NewProgram(timerModel{
		timer: timer.NewWithInterval(timeout, time.Second),
		title: title,
	}).Run()
	return err
}

var _ tea.Model = (*timerModel)(nil)

type timerModel struct {
	timer timer.Model
	title string
}

func (m timerModel) Init() tea.Cmd {
	return m.timer.Init()
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timer.TickMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd
	case timer.TimeoutMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m timerModel) View() string {
	return m.title + " " + m.timer.View() + "\n"
}
