package timer

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/rounds/internal/engine"
)

// start begins a new run with a fresh tick generation.
func (t *Timer) start() tea.Cmd {
	t.blurInputs()
	t.dispatch(engine.Start{})
	t.tickID++

	return t.tick()
}

func (t *Timer) pause() tea.Cmd {
	if t.engine.State().Run.Phase != engine.Running {
		return nil
	}

	t.dispatch(engine.Pause{})
	t.tickID++

	return nil
}

func (t *Timer) resume() tea.Cmd {
	if t.engine.State().Run.Phase != engine.Paused {
		return nil
	}

	t.dispatch(engine.Resume{})
	t.tickID++

	return t.tick()
}

func (t *Timer) stop() tea.Cmd {
	if t.engine.State().Run.Phase == engine.Stopped {
		return nil
	}

	t.dispatch(engine.Stop{})
	t.tickID++

	return t.focusInput(t.focused)
}

func (t *Timer) quit() tea.Cmd {
	// an unfinished run is recorded as abandoned
	if t.engine.State().Run.Phase != engine.Stopped {
		t.dispatch(engine.Stop{})
	}

	t.tickID++
	t.quitting = true

	return tea.Quit
}

// handleTick advances the run by one second. Stale ticks are dropped so
// that pausing and resuming quickly never counts a second twice.
func (t *Timer) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.id != t.tickID {
		return t, nil
	}

	next := t.dispatch(engine.Tick{})

	if next.Run.Phase != engine.Running {
		// the run completed
		t.tickID++
		return t, t.focusInput(t.focused)
	}

	return t, t.tick()
}

func (t *Timer) blurInputs() {
	for i := range t.inputs {
		t.inputs[i].Blur()
	}
}

func (t *Timer) focusInput(i int) tea.Cmd {
	t.blurInputs()
	t.focused = i

	return t.inputs[i].Focus()
}

// handleInput passes a key press to the focused field and forwards the new
// text to the engine whenever it changes.
func (t *Timer) handleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	before := t.inputs[t.focused].Value()
	t.inputs[t.focused], cmd = t.inputs[t.focused].Update(msg)

	after := t.inputs[t.focused].Value()
	if after == before {
		return t, cmd
	}

	switch t.focused {
	case intervalField:
		t.dispatch(engine.SetIntervalText{Text: after})
	case roundsField:
		t.dispatch(engine.SetRoundsText{Text: after})
	}

	return t, cmd
}

// handleEditKey handles keys while no run is in progress. Apart from the
// keys that start a run, switch field or quit, every key goes to the focused
// field, so letters that are commands during a run are typed as text.
func (t *Timer) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.exit):
		return t, t.quit()

	case key.Matches(msg, defaultKeymap.start):
		return t, t.start()

	case key.Matches(msg, defaultKeymap.nextField):
		return t, t.focusInput((t.focused + 1) % len(t.inputs))

	case key.Matches(msg, defaultKeymap.prevField):
		return t, t.focusInput((t.focused + len(t.inputs) - 1) % len(t.inputs))
	}

	return t.handleInput(msg)
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	phase := t.engine.State().Run.Phase

	if phase == engine.Stopped {
		return t.handleEditKey(msg)
	}

	switch {
	case key.Matches(msg, defaultKeymap.quit, defaultKeymap.exit):
		return t, t.quit()

	case key.Matches(msg, defaultKeymap.start):
		return t, t.start()

	case key.Matches(msg, defaultKeymap.toggle):
		if phase == engine.Paused {
			return t, t.resume()
		}

		return t, t.pause()

	case key.Matches(msg, defaultKeymap.pause):
		return t, t.pause()

	case key.Matches(msg, defaultKeymap.resume):
		return t, t.resume()

	case key.Matches(msg, defaultKeymap.stop):
		return t, t.stop()
	}

	// the fields are read-only during a run
	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tickMsg); !ok && t.logger.Enabled(context.Background(), slog.LevelDebug) {
		t.logger.Debug("message received", slog.String("msg", spew.Sdump(msg)))
	}

	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick(msg)

	case autoStartMsg:
		return t, t.start()

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		width := min(msg.Width-padding*2-4, maxWidth)

		t.roundBar.Width = width
		t.totalBar.Width = width

		return t, nil
	}

	var cmd tea.Cmd

	// cursor blink
	t.inputs[t.focused], cmd = t.inputs[t.focused].Update(msg)

	return t, cmd
}
