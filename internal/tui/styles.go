package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorBlue      = lipgloss.Color("#3B82F6")
	colorRed       = lipgloss.Color("#F87171")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue).
			MarginTop(1).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			MarginBottom(1)

	commandStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	commandDescStyle = lipgloss.NewStyle().
				Foreground(colorGray).
				PaddingLeft(1)

	inputStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorLightGray)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			Width(16)

	focusedLabelStyle = labelStyle.
				Foreground(colorWhite).
				Bold(true)

	outputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Foreground(colorWhite).
			Bold(true).
			Padding(1, 2)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true).
			MarginTop(1)
)

const logo = `
  ┏━┓┏━┓┏┓╻╺┳┓┏━┓┏━╸┏━┓
  ┣┳┛┣━┫┃┗┫ ┃┃┗━┓┣╸ ┃┓┃
  ╹┗╸╹ ╹╹ ╹╺┻┛┗━┛┗━╸┗┻┛
`
