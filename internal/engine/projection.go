package engine

// RemainingTotalSecs is the time left in the run. It never goes below zero.
func (s State) RemainingTotalSecs() uint64 {
	if s.Run.ElapsedSecs >= s.Run.TotalDurationSecs {
		return 0
	}

	return s.Run.TotalDurationSecs - s.Run.ElapsedSecs
}

// TimeInCurrentRound is the number of seconds spent in the current round.
func (s State) TimeInCurrentRound() uint64 {
	if s.Config.IntervalSecs == 0 {
		return 0
	}

	return s.Run.ElapsedSecs % s.Config.IntervalSecs
}

// RoundRemainingSecs is the time left until the next chime. A round that has
// just begun (or just ended on a boundary) reports the full interval.
func (s State) RoundRemainingSecs() uint64 {
	if s.Config.IntervalSecs == 0 {
		return 0
	}

	inRound := s.TimeInCurrentRound()
	if inRound == 0 {
		return s.Config.IntervalSecs
	}

	return s.Config.IntervalSecs - inRound
}

// OverallProgress is the elapsed fraction of the run. Callers should clamp it
// to [0, 1] for display.
func (s State) OverallProgress() float64 {
	if s.Run.TotalDurationSecs == 0 {
		return 0
	}

	return float64(s.Run.ElapsedSecs) / float64(s.Run.TotalDurationSecs)
}

// RoundProgress is the remaining fraction of the current round.
func (s State) RoundProgress() float64 {
	if s.Config.IntervalSecs == 0 {
		return 0
	}

	return float64(s.RoundRemainingSecs()) / float64(s.Config.IntervalSecs)
}

// Snapshot is a read-only view of a state and its derived values, suitable
// for renderers and for serialisation.
type Snapshot struct {
	Phase              string  `json:"phase"`
	IntervalInput      string  `json:"interval_input"`
	RoundsInput        string  `json:"rounds_input"`
	IntervalSecs       uint64  `json:"interval_secs"`
	NumRounds          uint64  `json:"num_rounds"`
	ElapsedSecs        uint64  `json:"elapsed_secs"`
	TotalDurationSecs  uint64  `json:"total_duration_secs"`
	RoundNumber        uint64  `json:"round_number"`
	RemainingTotalSecs uint64  `json:"remaining_total_secs"`
	RoundRemainingSecs uint64  `json:"round_remaining_secs"`
	OverallProgress    float64 `json:"overall_progress"`
	RoundProgress      float64 `json:"round_progress"`
}

// Snapshot computes every derived projection of s.
func (s State) Snapshot() Snapshot {
	return Snapshot{
		Phase:              s.Run.Phase.String(),
		IntervalInput:      s.Config.IntervalInput,
		RoundsInput:        s.Config.RoundsInput,
		IntervalSecs:       s.Config.IntervalSecs,
		NumRounds:          s.Config.NumRounds,
		ElapsedSecs:        s.Run.ElapsedSecs,
		TotalDurationSecs:  s.Run.TotalDurationSecs,
		RoundNumber:        s.Run.RoundNumber,
		RemainingTotalSecs: s.RemainingTotalSecs(),
		RoundRemainingSecs: s.RoundRemainingSecs(),
		OverallProgress:    s.OverallProgress(),
		RoundProgress:      s.RoundProgress(),
	}
}
