package main

import (
	"fmt"
	"os"

	"codeberg.org/randseq/server/internal/client"
	"codeberg.org/randseq/server/internal/config"
	"codeberg.org/randseq/server/internal/logger"
	"codeberg.org/randseq/server/internal/sequence"
	"codeberg.org/randseq/server/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
)

func main() {
	flags := config.ParseTUIFlags()

	if !term.IsTerminal(os.Stdout.Fd()) {
		fmt.Println("randseq tui needs an interactive terminal")
		os.Exit(1)
	}

	// the program owns the terminal; keep log output off it
	logger.Discard()

	var generator sequence.Generator = sequence.Local{MaxCount: config.DefaultMaxCount}
	source := "local"

	if flags.Remote {
		generator = client.New(flags.Endpoint)
		source = flags.Endpoint
	}

	app := tui.NewApp(flags.Mode, source, generator)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running randseq: %v\n", err)
		os.Exit(1)
	}
}
