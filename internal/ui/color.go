package ui

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/rounds/internal/engine"
)

// DarkTheme switches every helper to the light variant of its colour so
// that text stays readable on dark terminals.
var DarkTheme bool

type shade struct {
	light pterm.Color
	dark  pterm.Color
}

var (
	green     = shade{light: pterm.FgGreen, dark: pterm.FgLightGreen}
	cyan      = shade{light: pterm.FgCyan, dark: pterm.FgLightCyan}
	magenta   = shade{light: pterm.FgMagenta, dark: pterm.FgLightMagenta}
	blue      = shade{light: pterm.FgBlue, dark: pterm.FgLightBlue}
	red       = shade{light: pterm.FgRed, dark: pterm.FgLightRed}
	highlight = shade{light: pterm.FgBlack, dark: pterm.FgLightWhite}
)

func (s shade) paint(a any) string {
	if DarkTheme {
		return s.dark.Sprint(a)
	}

	return s.light.Sprint(a)
}

func Green(a any) string     { return green.paint(a) }
func Cyan(a any) string      { return cyan.paint(a) }
func Magenta(a any) string   { return magenta.paint(a) }
func Blue(a any) string      { return blue.paint(a) }
func Red(a any) string       { return red.paint(a) }
func Highlight(a any) string { return highlight.paint(a) }

// PhaseLabel renders a phase as a coloured "[Phase]" tag.
func PhaseLabel(p engine.Phase) string {
	label := fmt.Sprintf("[%s]", p)

	switch p {
	case engine.Running:
		return Green(label)
	case engine.Paused:
		return Magenta(label)
	default:
		return Red(label)
	}
}
