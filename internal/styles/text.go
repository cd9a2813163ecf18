package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	BenchTeal = lipgloss.Color("#0f7173")
)

// Texts
var (
	TealBgText = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(BenchTeal)

	ErrorText = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#9a031e")).
			PaddingLeft(1).
			PaddingRight(1)

	SuccessText = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#09814a")).
			PaddingLeft(1).
			PaddingRight(1)

	AlertImportant = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#9a031e")).
			PaddingLeft(1).
			PaddingRight(1)

	ItalicText = lipgloss.NewStyle().
			Italic(true)

	GrayText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#777777"))
)

var (
	Button = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fefefe")).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 3, 0, 3)

	ButtonActive = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fefefe")).
			Border(lipgloss.RoundedBorder()).
			Background(BenchTeal).
			Underline(true).
			Padding(0, 3, 0, 3)
)

// PrintCommandTitle prints the title line of an executed cli action
func PrintCommandTitle(title string) {
	fmt.Println(
		ItalicText.Copy().
			Foreground(BenchTeal).
			MarginTop(1).
			MarginBottom(1).
			Render(title),
	)
}
