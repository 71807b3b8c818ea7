// Package osutil holds OS related constants.
package osutil

const (
	Windows = "windows"
	Darwin  = "darwin"
)

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
	// ExitIncomplete is returned when a headless run is stopped before its
	// final round ends.
	ExitIncomplete exitCode = 2
)

const (
	DirPermission  = 0o755
	FilePermission = 0o644
)
