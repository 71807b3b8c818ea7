package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProjections(t *testing.T) {
	cases := []struct {
		name          string
		interval      uint64
		total         uint64
		elapsed       uint64
		remaining     uint64
		inRound       uint64
		roundLeft     uint64
		overall       float64
		roundProgress float64
	}{
		{
			name:          "fresh run",
			interval:      10,
			total:         50,
			remaining:     50,
			roundLeft:     10,
			roundProgress: 1,
		},
		{
			name:          "mid round",
			interval:      10,
			total:         50,
			elapsed:       13,
			remaining:     37,
			inRound:       3,
			roundLeft:     7,
			overall:       0.26,
			roundProgress: 0.7,
		},
		{
			name:          "on a boundary",
			interval:      10,
			total:         50,
			elapsed:       20,
			remaining:     30,
			roundLeft:     10,
			overall:       0.4,
			roundProgress: 1,
		},
		{
			name:          "past the total saturates",
			interval:      10,
			total:         50,
			elapsed:       51,
			remaining:     0,
			inRound:       1,
			roundLeft:     9,
			overall:       1.02,
			roundProgress: 0.9,
		},
		{
			name:     "zero interval is guarded",
			interval: 0,
			total:    0,
			elapsed:  4,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := State{
				Config: Config{IntervalSecs: tc.interval},
				Run: Run{
					ElapsedSecs:       tc.elapsed,
					TotalDurationSecs: tc.total,
				},
			}

			if got := s.RemainingTotalSecs(); got != tc.remaining {
				t.Errorf("RemainingTotalSecs() = %d, want %d", got, tc.remaining)
			}

			if got := s.TimeInCurrentRound(); got != tc.inRound {
				t.Errorf("TimeInCurrentRound() = %d, want %d", got, tc.inRound)
			}

			if got := s.RoundRemainingSecs(); got != tc.roundLeft {
				t.Errorf("RoundRemainingSecs() = %d, want %d", got, tc.roundLeft)
			}

			approx := cmp.Comparer(func(a, b float64) bool {
				d := a - b
				return d < 1e-9 && d > -1e-9
			})

			if !cmp.Equal(s.OverallProgress(), tc.overall, approx) {
				t.Errorf("OverallProgress() = %v, want %v", s.OverallProgress(), tc.overall)
			}

			if !cmp.Equal(s.RoundProgress(), tc.roundProgress, approx) {
				t.Errorf("RoundProgress() = %v, want %v", s.RoundProgress(), tc.roundProgress)
			}
		})
	}
}

func TestSnapshot(t *testing.T) {
	s := NewState()
	s, _ = Transition(s, SetIntervalText{Text: "10"})
	s, _ = Transition(s, SetRoundsText{Text: "abc"})
	s, _ = Transition(s, Start{})
	s, _ = advance(s, 25)

	want := Snapshot{
		Phase:              "Running",
		IntervalInput:      "10",
		RoundsInput:        "abc",
		IntervalSecs:       10,
		NumRounds:          20,
		ElapsedSecs:        25,
		TotalDurationSecs:  200,
		RoundNumber:        3,
		RemainingTotalSecs: 175,
		RoundRemainingSecs: 5,
		OverallProgress:    0.125,
		RoundProgress:      0.5,
	}

	if diff := cmp.Diff(want, s.Snapshot()); diff != "" {
		t.Fatalf("Snapshot() mismatch (-want +got):\n%s", diff)
	}
}

func TestInputValid(t *testing.T) {
	s := NewState()

	s, _ = Transition(s, SetIntervalText{Text: "abc"})
	s, _ = Transition(s, SetRoundsText{Text: "007"})

	if s.Config.IntervalInputValid() {
		t.Errorf("interval %q reported valid", s.Config.IntervalInput)
	}

	if !s.Config.RoundsInputValid() {
		t.Errorf("rounds %q reported invalid", s.Config.RoundsInput)
	}

	if diff := cmp.Diff(uint64(DefaultIntervalSecs), s.Config.IntervalSecs); diff != "" {
		t.Errorf("interval (-want +got):\n%s", diff)
	}
}
