package engine

import (
	"strings"
)

// Event is a single input to the state machine. The set of events is closed:
// only the types declared in this file implement it.
type Event interface {
	event()
}

type (
	// SetIntervalText carries the raw text of the interval field.
	SetIntervalText struct{ Text string }

	// SetRoundsText carries the raw text of the rounds field.
	SetRoundsText struct{ Text string }

	Start  struct{}
	Pause  struct{}
	Resume struct{}
	Stop   struct{}

	// Tick advances a running timer by one second.
	Tick struct{}
)

func (SetIntervalText) event() {}
func (SetRoundsText) event()   {}
func (Start) event()           {}
func (Pause) event()           {}
func (Resume) event()          {}
func (Stop) event()            {}
func (Tick) event()            {}

// Intent is a side effect requested by a transition.
type Intent int

const (
	// PlayChime asks the audio collaborator to play the chime once.
	PlayChime Intent = iota + 1
)

func (i Intent) String() string {
	if i == PlayChime {
		return "PlayChime"
	}

	return "Unknown"
}

// ParseCommand maps one line of the text command surface to an event. The
// argument of "interval" and "rounds" is passed through verbatim (including
// an empty string) so that the engine decides whether it is valid.
func ParseCommand(line string) (Event, error) {
	line = strings.TrimSpace(line)

	name, arg, _ := strings.Cut(line, " ")

	switch strings.ToLower(name) {
	case "start":
		return Start{}, nil
	case "pause":
		return Pause{}, nil
	case "resume":
		return Resume{}, nil
	case "stop":
		return Stop{}, nil
	case "tick":
		return Tick{}, nil
	case "interval":
		return SetIntervalText{Text: strings.TrimSpace(arg)}, nil
	case "rounds":
		return SetRoundsText{Text: strings.TrimSpace(arg)}, nil
	case "":
		return nil, errEmptyCommand
	}

	return nil, errUnknownCommand.Fmt(name)
}
