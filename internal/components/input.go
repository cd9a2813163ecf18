package components

import (
	"fmt"

	"github.com/benchkit/benchkit-cli/internal/styles"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type TextInputOpt interface {
	Apply(*inputModel)
}

func newInput(opts ...TextInputOpt) (string, error) {
	ti := textinput.New()
	ti.Focus()
	mdl := inputModel{
		textInput: ti,
		err:       nil,
	}

	for _, opt := range opts {
		opt.Apply(&mdl)
	}

	p := tea.NewProgram(mdl)
	m, err := p.Run()
	if err != nil {
		return "", err
	}

	return m.(inputModel).textInput.Value(), nil
}

type (
	errMsg error
)

type inputModel struct {
	textInput textinput.Model
	err       error

	denyEmpty bool

	validate    func(string) bool
	validateMsg string

	invalidInput bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if m.denyEmpty && m.textInput.Value() == "" {
				m.invalidInput = true
				return m, nil
			}
			if m.validate != nil && !m.validate(m.textInput.Value()) {
				m.invalidInput = true
				return m, nil
			}
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}

	// We handle errors just like any other message
	case errMsg:
		m.err = msg
		return m, nil
	}

	m.invalidInput = false
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	view := m.textInput.View()
	if m.invalidInput {
		reason := "input must not be empty"
		if m.validateMsg != "" {
			reason = m.validateMsg
		}
		view += "\n" + styles.ErrorText.Render(reason)
	}
	return fmt.Sprintf("%s\n\n", view)
}

var _ TextInputOpt = (*textInputOptPlaceholder)(nil)

type textInputOptPlaceholder struct {
	val string
}

func (t textInputOptPlaceholder) Apply(s *inputModel) {
	s.textInput.Placeholder = t.val
}

func TextInputOptPlaceholder(placeholder string) TextInputOpt {
	return textInputOptPlaceholder{placeholder}
}

var _ TextInputOpt = (*textInputOptValue)(nil)

type textInputOptValue struct {
	val string
}

func (t textInputOptValue) Apply(s *inputModel) {
	s.textInput.SetValue(t.val)
}

func TextInputOptValue(val string) TextInputOpt {
	return textInputOptValue{val}
}

var _ TextInputOpt = (*textInputOptMasked)(nil)

type textInputOptMasked struct{}

func (t textInputOptMasked) Apply(s *inputModel) {
	s.textInput.EchoMode = textinput.EchoPassword
	s.textInput.EchoCharacter = '*'
}

// TextInputOptMasked masks the entered value. Used for secrets.
func TextInputOptMasked() TextInputOpt {
	return textInputOptMasked{}
}

var _ TextInputOpt = (*textInputOptDenyEmpty)(nil)

type textInputOptDenyEmpty struct{}

func (t textInputOptDenyEmpty) Apply(s *inputModel) {
	s.denyEmpty = true
}

// TextInputOptDenyEmpty prevents submitting an empty value
func TextInputOptDenyEmpty() TextInputOpt {
	return textInputOptDenyEmpty{}
}

var _ TextInputOpt = (*textInputOptValidation)(nil)

type textInputOptValidation struct {
	validate func(string) bool
	message  string
}

func (t textInputOptValidation) Apply(s *inputModel) {
	s.validate = t.validate
	s.validateMsg = t.message
}

// TextInputOptValidation prevents submitting a value for which validate
// returns false. Message is shown to the user on invalid input.
func TextInputOptValidation(validate func(string) bool, message string) TextInputOpt {
	return textInputOptValidation{validate, message}
}
