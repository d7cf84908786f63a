package tui

import (
	"fmt"

	"codeberg.org/randseq/server/internal/sequence"
	tea "github.com/charmbracelet/bubbletea"
)

// creates the application; source names where generation runs ("local" or an endpoint)
func NewApp(mode, source string, generator sequence.Generator) *Model {
	return &Model{
		state:   StateWelcome,
		mode:    mode,
		source:  source,
		welcome: NewWelcome(mode, source),
		form:    NewForm(generator),
		help:    NewHelp(80),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// only quit from welcome screen
		if msg.String() == "ctrl+c" && m.state == StateWelcome {
			return m, tea.Quit
		}

		// elsewhere ctrl+c and esc go back to welcome
		if (msg.String() == "ctrl+c" || msg.String() == "esc") && m.state != StateWelcome {
			m.state = StateWelcome
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help = NewHelp(msg.Width)
		m.form, _ = m.form.Update(msg)
		return m, nil

	case ErrorMsg:
		m.err = msg.err
		return m, nil

	case EnterFormMsg:
		m.state = StateForm
		m.err = nil
		return m, m.form.Init()

	case EnterHelpMsg:
		m.state = StateHelp
		m.err = nil
		return m, nil

	case BackMsg:
		m.state = StateWelcome
		return m, nil
	}

	switch m.state {
	case StateWelcome:
		return m.updateWelcome(msg)

	case StateForm:
		return m.updateForm(msg)

	default:
		return m, nil
	}
}

func (m *Model) View() string {
	switch m.state {
	case StateWelcome:
		if m.err != nil {
			return m.welcome.View() + "\n\n" + errorView(m.err)
		}
		return m.welcome.View()

	case StateForm:
		return m.form.View()

	case StateHelp:
		return m.help.View()

	default:
		return "Unknown state"
	}
}

func (m *Model) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.welcome, cmd = m.welcome.Update(msg)

	return m, cmd
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)

	return m, cmd
}

func errorView(err error) string {
	return errorStyle.Render(fmt.Sprintf("  error: %v", err))
}
