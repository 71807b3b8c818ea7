package engine

import "github.com/ayoisaiah/rounds/internal/apperr"

var (
	errEmptyCommand = &apperr.Error{
		Message: "empty command",
	}

	errUnknownCommand = &apperr.Error{
		Message: "unknown command %q: expected start, pause, resume, stop, tick, interval <secs> or rounds <n>",
	}
)
