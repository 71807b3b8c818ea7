package engine

import (
	"context"
	"log/slog"
)

// Chimer plays the interval chime. Play is fire-and-forget: it must return
// promptly and must not report failure to the engine.
type Chimer interface {
	Play()
}

// Observer is notified after each event handled by Serve.
type Observer func(prev, next State, ev Event)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for phase changes.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithState replaces the initial state. It is mostly useful in tests.
func WithState(s State) Option {
	return func(e *Engine) {
		e.state = s
	}
}

// Engine owns one timer state and carries out the intents produced by
// Transition. An Engine is not safe for concurrent use; share it between
// goroutines only through Serve.
type Engine struct {
	chimer Chimer
	logger *slog.Logger
	state  State
}

// New returns a stopped engine with the default configuration. chimer may be
// nil, in which case chimes are silently dropped.
func New(chimer Chimer, opts ...Option) *Engine {
	e := &Engine{
		chimer: chimer,
		logger: slog.Default(),
		state:  NewState(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	return e.state
}

// Dispatch applies a single event and returns the new state.
func (e *Engine) Dispatch(ev Event) State {
	prev := e.state

	next, intents := Transition(prev, ev)
	e.state = next

	if prev.Run.Phase != next.Run.Phase {
		e.logger.Debug(
			"phase changed",
			slog.String("from", prev.Run.Phase.String()),
			slog.String("to", next.Run.Phase.String()),
			slog.Uint64("elapsed_secs", next.Run.ElapsedSecs),
			slog.Uint64("round", next.Run.RoundNumber),
		)
	}

	for _, intent := range intents {
		e.perform(intent)
	}

	return next
}

func (e *Engine) perform(intent Intent) {
	switch intent {
	case PlayChime:
		if e.chimer != nil {
			e.chimer.Play()
		}
	}
}

// Serve is the single writer for the engine: it applies events from the
// channel one at a time until the channel is closed or ctx is done. observe
// (which may be nil) runs on the Serve goroutine after every event.
func (e *Engine) Serve(
	ctx context.Context,
	events <-chan Event,
	observe Observer,
) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}

			prev := e.state
			next := e.Dispatch(ev)

			if observe != nil {
				observe(prev, next, ev)
			}
		}
	}
}

// Completed reports whether the transition from prev to next finished a run
// by reaching its total duration.
func Completed(prev, next State) bool {
	return prev.Run.Phase == Running &&
		next.Run.Phase == Stopped &&
		next.Run.ElapsedSecs > 0 &&
		next.Run.ElapsedSecs >= next.Run.TotalDurationSecs
}

// Abandoned reports whether the transition from prev to next ended a run
// before it reached its total duration. Restarting a run in progress counts
// as abandoning it.
func Abandoned(prev, next State, ev Event) bool {
	if prev.Run.Phase == Stopped {
		return false
	}

	switch ev.(type) {
	case Stop, Start:
		return true
	}

	return false
}
