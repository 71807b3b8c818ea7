package ui

import (
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/rounds/internal/engine"
)

func TestPhaseLabel(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	assert.Equal(t, "[Running]", PhaseLabel(engine.Running))
	assert.Equal(t, "[Paused]", PhaseLabel(engine.Paused))
	assert.Equal(t, "[Stopped]", PhaseLabel(engine.Stopped))
}

func TestDarkThemeUsesLightShades(t *testing.T) {
	pterm.EnableColor()

	DarkTheme = true
	t.Cleanup(func() { DarkTheme = false })

	assert.Equal(t, pterm.FgLightGreen.Sprint("ok"), Green("ok"))

	DarkTheme = false

	assert.Equal(t, pterm.FgGreen.Sprint("ok"), Green("ok"))
}
