// Package engine implements the round timer as a pure state machine. Events
// go in, a new state and a list of side-effect intents come out. The engine
// never reads the clock and never touches audio hardware: the caller delivers
// ticks and carries out the intents.
package engine

import (
	"strconv"
	"strings"
)

// Phase is the top-level mode of the timer.
type Phase int

const (
	Stopped Phase = iota
	Running
	Paused
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	default:
		return "Stopped"
	}
}

const (
	DefaultIntervalSecs = 60
	DefaultRounds       = 20
)

// Config holds the interval and round settings. The raw inputs are kept
// alongside the last valid parsed values so that text which does not parse
// is still echoed back to the user.
type Config struct {
	IntervalInput string `json:"interval_input"`
	RoundsInput   string `json:"rounds_input"`
	IntervalSecs  uint64 `json:"interval_secs"`
	NumRounds     uint64 `json:"num_rounds"`
}

// Run is the progress of the current (or last) run.
type Run struct {
	Phase             Phase  `json:"phase"`
	ElapsedSecs       uint64 `json:"elapsed_secs"`
	TotalDurationSecs uint64 `json:"total_duration_secs"`
	RoundNumber       uint64 `json:"round_number"`
}

// State is the complete timer state.
type State struct {
	Config Config `json:"config"`
	Run    Run    `json:"run"`
}

// NewState returns a stopped timer with the default configuration.
func NewState() State {
	return State{
		Config: Config{
			IntervalInput: strconv.Itoa(DefaultIntervalSecs),
			RoundsInput:   strconv.Itoa(DefaultRounds),
			IntervalSecs:  DefaultIntervalSecs,
			NumRounds:     DefaultRounds,
		},
		Run: Run{
			Phase:             Stopped,
			TotalDurationSecs: DefaultIntervalSecs * DefaultRounds,
			RoundNumber:       1,
		},
	}
}

// parsePositive parses s as a base-10 integer in [1, MaxUint32], with an
// optional leading plus sign. Capping each factor at 32 bits keeps
// interval * rounds within a uint64.
func parsePositive(s string) (uint64, bool) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}

	return n, true
}

// IntervalInputValid reports whether the interval text is in use. When it is
// not, IntervalSecs still holds the last valid value.
func (c Config) IntervalInputValid() bool {
	_, ok := parsePositive(c.IntervalInput)
	return ok
}

// RoundsInputValid reports whether the rounds text is in use.
func (c Config) RoundsInputValid() bool {
	_, ok := parsePositive(c.RoundsInput)
	return ok
}
