package models

import "time"

// Run is a finished run as stored in the history database.
type Run struct {
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	IntervalSecs uint64    `json:"interval_secs"`
	NumRounds    uint64    `json:"num_rounds"`
	// ElapsedSecs is the timer time, excluding pauses
	ElapsedSecs uint64 `json:"elapsed_secs"`
	// RoundReached is the round in progress when the run ended
	RoundReached uint64 `json:"round_reached"`
	Completed    bool   `json:"completed"`
}

// TotalSecs is the planned length of the run.
func (r *Run) TotalSecs() uint64 {
	return r.IntervalSecs * r.NumRounds
}
