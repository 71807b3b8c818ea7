package timer

import "github.com/ayoisaiah/rounds/internal/apperr"

var (
	errInvalidCmd = &apperr.Error{
		Message: "unable to parse cmd option",
	}

	errCorruptStatus = &apperr.Error{
		Message: "the status file could not be read",
	}

	// ErrRunIncomplete is returned by RunHeadless when it exits before the
	// run in progress has finished.
	ErrRunIncomplete = &apperr.Error{
		Message: "the run was interrupted before its final round",
	}
)
