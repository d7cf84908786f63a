package tui

import (
	"context"
	"time"

	"codeberg.org/randseq/server/internal/sequence"
	tea "github.com/charmbracelet/bubbletea"
)

// timeout for one generation, local or remote
const generateTimeout = 20 * time.Second

// returns a tea.Cmd that parses the form fields and runs the generator
func generateCmd(generator sequence.Generator, count, min, max string, allowDuplicates bool) tea.Cmd {
	return func() tea.Msg {
		mode := sequence.ModeUniqueNumbers
		if allowDuplicates {
			mode = sequence.ModeAllowDuplicates
		}

		req, err := sequence.ParseRequest(count, min, max, string(mode))
		if err != nil {
			return GenerateErrorMsg{err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()

		result, err := generator.Generate(ctx, req)
		if err != nil {
			return GenerateErrorMsg{err: err}
		}

		return GenerateResultMsg{result: result}
	}
}
