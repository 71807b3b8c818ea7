package timer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ayoisaiah/rounds/internal/config"
	"github.com/ayoisaiah/rounds/internal/engine"
	"github.com/ayoisaiah/rounds/internal/timeutil"
	"github.com/ayoisaiah/rounds/internal/ui"
	"github.com/ayoisaiah/rounds/store"
)

const quitCommand = "quit"

// lockedWriter serialises writes from the input reader and the engine loop.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) printf(format string, a ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.w, format+"\n", a...)
}

// headless runs the engine without a terminal interface. Commands are read
// one per line and progress is printed as plain lines.
type headless struct {
	engine  *engine.Engine
	session *session
	out     *lockedWriter
	logger  *slog.Logger
	cancel  context.CancelFunc
	// tick is the wall clock length of a timer second
	tick time.Duration

	inputDone atomic.Bool
}

func newHeadless(
	opts *config.Config,
	db store.DB,
	player engine.Chimer,
	out io.Writer,
	options ...Option,
) *headless {
	// reuse the interactive options for the logger and status file
	t := &Timer{logger: slog.Default()}
	for _, o := range options {
		o(t)
	}

	h := &headless{
		engine:  engine.New(player, engine.WithLogger(t.logger)),
		session: newSession(opts, db, t.logger, t.statusPath),
		out:     &lockedWriter{w: out},
		logger:  t.logger,
		tick:    time.Second,
	}

	h.engine.Dispatch(engine.SetIntervalText{Text: opts.IntervalText()})
	h.engine.Dispatch(engine.SetRoundsText{Text: opts.RoundsText()})

	return h
}

// RunHeadless runs the timer without an interactive interface, reading
// commands from in and writing progress to out. Once input ends, it returns
// as soon as no run is in progress. It also returns on "quit" or when ctx is
// done, and then reports ErrRunIncomplete if a run was still in progress.
func RunHeadless(
	ctx context.Context,
	opts *config.Config,
	db store.DB,
	player engine.Chimer,
	in io.Reader,
	out io.Writer,
	options ...Option,
) error {
	h := newHeadless(opts, db, player, out, options...)

	return h.run(ctx, in, opts.Settings.AutoStart)
}

func (h *headless) run(ctx context.Context, in io.Reader, autoStart bool) error {
	defer h.session.close()

	ctx, h.cancel = context.WithCancel(ctx)
	defer h.cancel()

	events := make(chan engine.Event)

	h.describe(h.engine.State())

	// the reader may stay blocked on input after the loop ends, so only the
	// ticker is waited for
	go h.readCommands(ctx, in, events, autoStart)

	tickerDone := make(chan struct{})

	go func() {
		defer close(tickerDone)
		h.runTicker(ctx, events)
	}()

	err := h.engine.Serve(ctx, events, h.observe)

	h.cancel()
	<-tickerDone

	if err != nil && !errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	// Serve has returned, so the engine can be driven directly again
	prev := h.engine.State()
	if prev.Run.Phase == engine.Stopped {
		return nil
	}

	next := h.engine.Dispatch(engine.Stop{})
	h.observe(prev, next, engine.Stop{})

	return ErrRunIncomplete
}

func send(ctx context.Context, events chan<- engine.Event, ev engine.Event) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

func (h *headless) readCommands(
	ctx context.Context,
	in io.Reader,
	events chan<- engine.Event,
	autoStart bool,
) {
	if autoStart && !send(ctx, events, engine.Start{}) {
		return
	}

	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.EqualFold(line, quitCommand) {
			h.cancel()
			return
		}

		ev, err := engine.ParseCommand(line)
		if err != nil {
			if line != "" {
				h.out.printf("%s", ui.Red(err.Error()))
			}

			continue
		}

		if !send(ctx, events, ev) {
			return
		}
	}

	if err := scanner.Err(); err != nil {
		h.logger.Error("reading commands failed", slog.Any("error", err))
	}

	// the loop exits at the next event that finds no run in progress
	h.inputDone.Store(true)
}

func (h *headless) runTicker(ctx context.Context, events chan<- engine.Event) {
	ticker := time.NewTicker(h.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !send(ctx, events, engine.Tick{}) {
				return
			}
		}
	}
}

// observe runs on the Serve goroutine after every event.
func (h *headless) observe(prev, next engine.State, ev engine.Event) {
	h.session.observe(prev, next, ev)
	h.report(prev, next, ev)

	if next.Run.Phase == engine.Stopped && h.inputDone.Load() {
		h.cancel()
	}
}

func (h *headless) describe(s engine.State) {
	h.out.printf(
		"%s %d rounds of %s (total %s)",
		ui.Blue("[Ready]"),
		s.Config.NumRounds,
		timeutil.FormatClock(s.Config.IntervalSecs),
		timeutil.FormatClock(s.Run.TotalDurationSecs),
	)
}

// report prints a line for every transition worth telling the user about.
func (h *headless) report(prev, next engine.State, ev engine.Event) {
	if engine.Completed(prev, next) {
		h.out.printf(
			"%s %d rounds in %s",
			ui.Green("[Completed]"),
			next.Config.NumRounds,
			timeutil.FormatClock(next.Run.ElapsedSecs),
		)

		return
	}

	switch ev := ev.(type) {
	case engine.SetIntervalText:
		h.reportSetting("interval", ev.Text, next.Config.IntervalInputValid(), next.Config.IntervalSecs)
	case engine.SetRoundsText:
		h.reportSetting("rounds", ev.Text, next.Config.RoundsInputValid(), next.Config.NumRounds)
	case engine.Start:
		h.out.printf(
			"%s round %d/%d, %s per round (total %s)",
			ui.PhaseLabel(next.Run.Phase),
			next.Run.RoundNumber,
			next.Config.NumRounds,
			timeutil.FormatClock(next.Config.IntervalSecs),
			timeutil.FormatClock(next.Run.TotalDurationSecs),
		)
	case engine.Pause, engine.Resume:
		if prev.Run.Phase == next.Run.Phase {
			return
		}

		h.out.printf(
			"%s round %d/%d, %s left in round",
			ui.PhaseLabel(next.Run.Phase),
			next.Run.RoundNumber,
			next.Config.NumRounds,
			timeutil.FormatClock(next.RoundRemainingSecs()),
		)
	case engine.Stop:
		if prev.Run.Phase == engine.Stopped {
			return
		}

		h.out.printf(
			"%s after %s at round %d/%d",
			ui.PhaseLabel(engine.Stopped),
			timeutil.FormatClock(prev.Run.ElapsedSecs),
			prev.Run.RoundNumber,
			prev.Config.NumRounds,
		)
	case engine.Tick:
		if next.Run.RoundNumber != prev.Run.RoundNumber {
			h.out.printf(
				"%s %d/%d",
				ui.Cyan("[Round]"),
				next.Run.RoundNumber,
				next.Config.NumRounds,
			)
		}
	}
}

func (h *headless) reportSetting(name, text string, valid bool, inUse uint64) {
	if valid {
		h.out.printf("%s set to %d", name, inUse)
		return
	}

	h.out.printf("%s", ui.Red(fmt.Sprintf("%s %q is not a positive number, keeping %d", name, text, inUse)))
}
