package app

import "github.com/ayoisaiah/rounds/internal/apperr"

var (
	errInvalidDate = &apperr.Error{
		Message: "invalid --%s date: %q",
	}

	errInvalidRange = &apperr.Error{
		Message: "--since (%s) must be before --until (%s)",
	}
)
