package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// theme is the colour palette of the run report.
type theme struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

func defaultTheme() theme {
	return theme{
		Primary: lipgloss.Color("#7C3AED"), // Purple
		Muted:   lipgloss.Color("#6C7086"), // Medium gray
		Success: lipgloss.Color("#A6E3A1"), // Green
		Warning: lipgloss.Color("#F9E2AF"), // Yellow
		Error:   lipgloss.Color("#F38BA8"), // Red
	}
}

// styles are the lipgloss styles used for command output.
// Colours are dropped automatically when the output is not a terminal.
type styles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Link    lipgloss.Style
}

// newStyles creates styles rendering for w.
func newStyles(w io.Writer) *styles {
	r := lipgloss.NewRenderer(w)
	t := defaultTheme()

	return &styles{
		Title:   r.NewStyle().Bold(true).Foreground(t.Primary),
		Muted:   r.NewStyle().Foreground(t.Muted),
		Success: r.NewStyle().Foreground(t.Success),
		Warning: r.NewStyle().Foreground(t.Warning),
		Error:   r.NewStyle().Foreground(t.Error),
		Link:    r.NewStyle().Underline(true),
	}
}
