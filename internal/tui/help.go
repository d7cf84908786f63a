package tui

import (
	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# randseq

Draws **count** integers from the inclusive range **[min, max]**.

## Duplicates

- *allowed*: every value is an independent draw, repeats are possible
- *unique*: values are drawn without repetition; count must not exceed
  ` + "`max - min + 1`" + `

## Output

| range | output |
|---|---|
| 0 to 9 | digits joined together, e.g. ` + "`04271`" + ` |
| anything wider or negative | values separated by spaces, e.g. ` + "`4 71 0`" + ` |

Values keep the order they were drawn in.

## Keys

` + "`tab`" + ` next field, ` + "`space`" + ` toggle duplicates, ` + "`enter`" + ` generate,
` + "`ctrl+l`" + ` clear, ` + "`esc`" + ` back.
`

// renders the help page for the given width; falls back to plain markdown
func NewHelp(width int) *HelpModel {
	if width < 20 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return &HelpModel{content: helpMarkdown}
	}

	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		return &HelpModel{content: helpMarkdown}
	}

	return &HelpModel{content: out}
}

func (m *HelpModel) View() string {
	return m.content + helpStyle.Render("  press esc to go back.")
}
