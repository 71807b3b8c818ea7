package timer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/rounds/internal/config"
	"github.com/ayoisaiah/rounds/internal/engine"
)

const (
	padding  = 2
	maxWidth = 80
)

// Style holds the lipgloss styles used by the timer views.
type Style struct {
	Base      lipgloss.Style
	Title     lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Invalid   lipgloss.Style
	Phase     map[engine.Phase]lipgloss.Style
}

func newStyle(d config.DisplayConfig) Style {
	accent := lipgloss.Color(d.Color)

	text := lipgloss.Color("#1F1F1F")
	muted := lipgloss.Color("#6C6C6C")

	if d.DarkTheme {
		text = lipgloss.Color("#F5F5F5")
		muted = lipgloss.Color("#9A9A9A")
	}

	return Style{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(text),
		Secondary: lipgloss.NewStyle().Foreground(text),
		Hint:      lipgloss.NewStyle().Foreground(muted),
		Invalid:   lipgloss.NewStyle().Foreground(lipgloss.Color("#E06C75")),
		Phase: map[engine.Phase]lipgloss.Style{
			engine.Running: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B0DB43")),
			engine.Paused:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E5C07B")),
			engine.Stopped: lipgloss.NewStyle().Bold(true).Foreground(muted),
		},
	}
}
