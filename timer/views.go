package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/rounds/internal/engine"
	"github.com/ayoisaiah/rounds/internal/timeutil"
)

func clamp(f float64) float64 {
	return min(max(f, 0), 1)
}

func (t *Timer) statusView(s engine.State) string {
	phase := s.Run.Phase

	label := t.style.Phase[phase].Render(fmt.Sprintf("[%s]", phase))

	if phase == engine.Stopped {
		return label
	}

	return label + " " + t.style.Secondary.Render(fmt.Sprintf(
		"Round %d/%d",
		s.Run.RoundNumber,
		s.Config.NumRounds,
	))
}

// configView shows the editable fields between runs and their text, read
// only, during one.
func (t *Timer) configView(s engine.State) string {
	var b strings.Builder

	if s.Run.Phase != engine.Stopped {
		b.WriteString(t.style.Hint.Render(fmt.Sprintf(
			"%s%s  %s%s",
			t.inputs[intervalField].Prompt,
			s.Config.IntervalInput,
			t.inputs[roundsField].Prompt,
			s.Config.RoundsInput,
		)))

		return b.String()
	}

	b.WriteString(t.inputs[intervalField].View())

	if !s.Config.IntervalInputValid() {
		b.WriteString(t.style.Invalid.Render(
			fmt.Sprintf("  invalid, using %d", s.Config.IntervalSecs),
		))
	}

	b.WriteString("\n")
	b.WriteString(t.inputs[roundsField].View())

	if !s.Config.RoundsInputValid() {
		b.WriteString(t.style.Invalid.Render(
			fmt.Sprintf("  invalid, using %d", s.Config.NumRounds),
		))
	}

	return b.String()
}

func (t *Timer) clockView(s engine.State) string {
	var b strings.Builder

	b.WriteString(t.style.Main.Render(timeutil.FormatClock(s.RoundRemainingSecs())))
	b.WriteString("\n\n")
	b.WriteString(t.roundBar.ViewAs(clamp(s.RoundProgress())))
	b.WriteString("\n\n")
	b.WriteString(t.style.Hint.Render(
		"Total remaining " + timeutil.FormatClock(s.RemainingTotalSecs()),
	))
	b.WriteString("\n\n")
	b.WriteString(t.totalBar.ViewAs(clamp(s.OverallProgress())))

	return b.String()
}

func (t *Timer) helpView(phase engine.Phase) string {
	bindings := []key.Binding{
		defaultKeymap.start,
		defaultKeymap.nextField,
		defaultKeymap.exit,
	}

	switch phase {
	case engine.Running:
		bindings = []key.Binding{
			defaultKeymap.toggle,
			defaultKeymap.stop,
			defaultKeymap.quit,
		}
	case engine.Paused:
		bindings = []key.Binding{
			defaultKeymap.toggle,
			defaultKeymap.stop,
			defaultKeymap.start,
			defaultKeymap.quit,
		}
	}

	return t.help.ShortHelpView(bindings)
}

func (t *Timer) View() string {
	if t.quitting {
		return ""
	}

	s := t.engine.State()

	var b strings.Builder

	b.WriteString(t.style.Title.Render("Rounds"))
	b.WriteString("  ")
	b.WriteString(t.statusView(s))
	b.WriteString("\n\n")
	b.WriteString(t.configView(s))
	b.WriteString("\n\n")
	b.WriteString(t.clockView(s))
	b.WriteString("\n\n")
	b.WriteString(t.helpView(s.Run.Phase))

	return t.style.Base.Render(b.String())
}
