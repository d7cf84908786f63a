package tui

import (
	"codeberg.org/randseq/server/internal/sequence"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

// represents the current state of the TUI
type AppState int

const (
	StateWelcome AppState = iota
	StateForm
	StateHelp
)

// main TUI application model
type Model struct {
	state   AppState
	mode    string
	source  string
	width   int
	height  int
	err     error
	welcome *Welcome
	form    *FormModel
	help    *HelpModel
}

// sent when an error occurs
type ErrorMsg struct {
	err error
}

// sent to transition to the generator form
type EnterFormMsg struct{}

// sent to transition to the help screen
type EnterHelpMsg struct{}

// sent to go back to the welcome screen
type BackMsg struct{}

// form field positions, in tab order
const (
	fieldCount = iota
	fieldMin
	fieldMax
	fieldDuplicates
	fieldTotal
)

// generator form: three numeric inputs plus the duplicate toggle
type FormModel struct {
	inputs          []textinput.Model
	focused         int
	allowDuplicates bool
	width           int
	isFetching      bool
	spinner         spinner.Model
	generator       sequence.Generator
	output          string
	errMessage      string
	errKind         sequence.Kind
}

// sent when a generation completes
type GenerateResultMsg struct {
	result *sequence.Result
}

// sent when a generation fails
type GenerateErrorMsg struct {
	err error
}

// welcome screen model
type Welcome struct {
	mode     string
	source   string
	input    string
	commands []Command
}

// represents an available TUI command
type Command struct {
	Name        string
	Description string
}

// rendered help page
type HelpModel struct {
	content string
}
