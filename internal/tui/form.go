package tui

import (
	"fmt"
	"strings"

	"codeberg.org/randseq/server/internal/sequence"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var fieldLabels = [...]string{"count", "minimum", "maximum", "duplicates"}

// returns a new generator form with the web form's defaults
func NewForm(generator sequence.Generator) *FormModel {
	defaults := [...]string{"6", "0", "9"}
	inputs := make([]textinput.Model, len(defaults))

	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 20
		ti.Width = 24
		ti.Prompt = "> "
		ti.PromptStyle = lipgloss.NewStyle().Foreground(colorLightGray)
		ti.TextStyle = lipgloss.NewStyle().Foreground(colorWhite)
		ti.SetValue(defaults[i])
		inputs[i] = ti
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorBlue)

	return &FormModel{
		inputs:          inputs,
		allowDuplicates: true,
		spinner:         s,
		generator:       generator,
	}
}

func (m *FormModel) Init() tea.Cmd {
	return m.focus(fieldCount)
}

// moves focus to field i
func (m *FormModel) focus(i int) tea.Cmd {
	m.focused = (i + fieldTotal) % fieldTotal

	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focused {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}

	return cmd
}

func (m *FormModel) Update(msg tea.Msg) (*FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return m, m.focus(m.focused + 1)

		case "shift+tab", "up":
			return m, m.focus(m.focused - 1)

		case "enter":
			if m.isFetching {
				return m, nil
			}
			m.isFetching = true
			m.errMessage = ""
			m.errKind = ""
			return m, tea.Batch(m.spinner.Tick, generateCmd(m.generator,
				m.inputs[fieldCount].Value(),
				m.inputs[fieldMin].Value(),
				m.inputs[fieldMax].Value(),
				m.allowDuplicates,
			))

		case "ctrl+l":
			m.output = ""
			m.errMessage = ""
			m.errKind = ""
			return m, nil
		}

		if m.focused == fieldDuplicates {
			switch msg.String() {
			case " ", "left", "right", "x":
				m.allowDuplicates = !m.allowDuplicates
			}
			return m, nil
		}

	case GenerateResultMsg:
		m.isFetching = false
		m.output = msg.result.Display
		return m, nil

	case GenerateErrorMsg:
		m.isFetching = false
		m.output = ""
		m.errKind = sequence.KindOf(msg.err)
		m.errMessage = msg.err.Error()
		return m, nil

	case spinner.TickMsg:
		if !m.isFetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	if m.focused < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *FormModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("GENERATE NUMBERS"))
	b.WriteString("\n")

	for i := range m.inputs {
		b.WriteString(m.label(i))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString(m.label(fieldDuplicates))
	b.WriteString(m.toggleView())
	b.WriteString("\n\n")

	switch {
	case m.isFetching:
		b.WriteString(m.spinner.View() + infoStyle.Render(" generating..."))
	case m.errMessage != "":
		b.WriteString(errorStyle.Render(fmt.Sprintf("%s: %s", m.errKind, m.errMessage)))
	case m.output != "":
		box := outputStyle
		if m.width > 8 {
			box = box.MaxWidth(m.width - 4)
		}
		b.WriteString(box.Render(m.output))
	default:
		b.WriteString(infoStyle.Render("press enter to generate"))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("[Tab: next field] [Space: toggle duplicates] [Enter: generate] [Ctrl+L: clear] [Esc: back]"))

	return b.String()
}

func (m *FormModel) label(i int) string {
	if i == m.focused {
		return focusedLabelStyle.Render(fieldLabels[i])
	}

	return labelStyle.Render(fieldLabels[i])
}

func (m *FormModel) toggleView() string {
	allowed, unique := "( ) allow", "( ) unique only"
	if m.allowDuplicates {
		allowed = "(•) allow"
	} else {
		unique = "(•) unique only"
	}

	style := promptStyle
	if m.focused == fieldDuplicates {
		style = inputStyle
	}

	return style.Render(allowed + "   " + unique)
}

// returns the last successful display string
func (m *FormModel) Output() string {
	return m.output
}
