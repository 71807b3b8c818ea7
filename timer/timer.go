// Package timer drives the round timer engine from the terminal, either
// through an interactive interface or headless from standard input
package timer

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/rounds/internal/config"
	"github.com/ayoisaiah/rounds/internal/engine"
	"github.com/ayoisaiah/rounds/store"
)

const (
	intervalField = iota
	roundsField
)

// tickMsg is delivered once a second while a run is in progress. Ticks from
// an earlier run, or from before a pause, carry a stale id and are dropped.
type tickMsg struct {
	id int
}

type autoStartMsg struct{}

// Option configures a Timer.
type Option func(*Timer)

// WithLogger sets the logger used by the timer and its engine.
func WithLogger(l *slog.Logger) Option {
	return func(t *Timer) {
		t.logger = l
	}
}

// WithStatusFile sets where the timer status is written for the status
// command.
func WithStatusFile(path string) Option {
	return func(t *Timer) {
		t.statusPath = path
	}
}

// Timer is the interactive bubbletea model for the round timer. All engine
// events are dispatched from Update, which bubbletea calls from a single
// goroutine.
type Timer struct {
	opts       *config.Config
	engine     *engine.Engine
	session    *session
	logger     *slog.Logger
	statusPath string
	style      Style
	help       help.Model
	inputs     []textinput.Model
	roundBar   progress.Model
	totalBar   progress.Model
	focused    int
	tickID     int
	quitting   bool
}

// New creates a timer loaded with the configured interval and rounds.
func New(
	opts *config.Config,
	db store.DB,
	player engine.Chimer,
	options ...Option,
) *Timer {
	t := &Timer{
		opts:   opts,
		logger: slog.Default(),
		style:  newStyle(opts.Display),
		help:   help.New(),
	}

	for _, o := range options {
		o(t)
	}

	t.engine = engine.New(player, engine.WithLogger(t.logger))
	t.session = newSession(opts, db, t.logger, t.statusPath)

	t.engine.Dispatch(engine.SetIntervalText{Text: opts.IntervalText()})
	t.engine.Dispatch(engine.SetRoundsText{Text: opts.RoundsText()})

	t.inputs = []textinput.Model{
		t.newInput("Interval (secs): ", opts.IntervalText()),
		t.newInput("Rounds: ", opts.RoundsText()),
	}

	t.inputs[intervalField].Focus()

	t.roundBar = progress.New(
		progress.WithSolidFill(opts.Display.Color),
		progress.WithoutPercentage(),
	)
	t.totalBar = progress.New(
		progress.WithDefaultGradient(),
		progress.WithoutPercentage(),
	)

	return t
}

func (t *Timer) newInput(prompt, value string) textinput.Model {
	in := textinput.New()
	in.Prompt = prompt
	in.CharLimit = 10
	in.Width = 12
	in.PromptStyle = t.style.Secondary
	in.TextStyle = t.style.Main
	in.SetValue(value)

	return in
}

// State returns the current engine state.
func (t *Timer) State() engine.State {
	return t.engine.State()
}

// dispatch hands an event to the engine and lets the session react to the
// transition.
func (t *Timer) dispatch(ev engine.Event) engine.State {
	prev := t.engine.State()
	next := t.engine.Dispatch(ev)

	t.session.observe(prev, next, ev)

	return next
}

func (t *Timer) tick() tea.Cmd {
	id := t.tickID

	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

// Init starts the cursor blinking and, when configured, the first run.
func (t *Timer) Init() tea.Cmd {
	t.session.writeStatus(t.engine.State())

	if t.opts.Settings.AutoStart {
		return func() tea.Msg {
			return autoStartMsg{}
		}
	}

	return textinput.Blink
}

// Run starts the interactive timer and blocks until the user quits.
func (t *Timer) Run() error {
	defer t.session.close()

	_, err := tea.NewProgram(t).Run()

	return err
}
