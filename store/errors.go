package store

import "github.com/ayoisaiah/rounds/internal/apperr"

var errAlreadyRunning = &apperr.Error{
	Message: "is rounds already running? Only one timer can be active at a time",
}
