package engine

// Transition applies ev to s and returns the resulting state together with
// any side effects the caller must carry out. It is total: every event is
// valid in every phase, and events that make no sense in the current phase
// leave the state untouched.
func Transition(s State, ev Event) (State, []Intent) {
	switch ev := ev.(type) {
	case SetIntervalText:
		s.Config.IntervalInput = ev.Text

		if secs, ok := parsePositive(ev.Text); ok {
			s.Config.IntervalSecs = secs
			s.Run.TotalDurationSecs = s.Config.IntervalSecs * s.Config.NumRounds
		}

	case SetRoundsText:
		s.Config.RoundsInput = ev.Text

		if rounds, ok := parsePositive(ev.Text); ok {
			s.Config.NumRounds = rounds
			s.Run.TotalDurationSecs = s.Config.IntervalSecs * s.Config.NumRounds
		}

	case Start:
		s.Run.Phase = Running
		s.Run.ElapsedSecs = 0
		s.Run.RoundNumber = 1
		s.Run.TotalDurationSecs = s.Config.IntervalSecs * s.Config.NumRounds

	case Pause:
		if s.Run.Phase == Running {
			s.Run.Phase = Paused
		}

	case Resume:
		if s.Run.Phase == Paused {
			s.Run.Phase = Running
		}

	case Stop:
		if s.Run.Phase != Stopped {
			s.Run.Phase = Stopped
			s.Run.ElapsedSecs = 0
			s.Run.RoundNumber = 1
		}

	case Tick:
		return tick(s)
	}

	return s, nil
}

func tick(s State) (State, []Intent) {
	if s.Run.Phase != Running {
		return s, nil
	}

	var intents []Intent

	s.Run.ElapsedSecs++

	if s.Config.IntervalSecs > 0 && s.Run.ElapsedSecs%s.Config.IntervalSecs == 0 {
		intents = append(intents, PlayChime)

		// there is no round after the last boundary
		if s.Run.ElapsedSecs < s.Run.TotalDurationSecs {
			s.Run.RoundNumber++
		}
	}

	if s.Run.ElapsedSecs >= s.Run.TotalDurationSecs {
		s.Run.Phase = Stopped
	}

	return s, intents
}
