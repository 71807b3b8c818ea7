// Package report prints errors that end the program
package report

import (
	"errors"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/rounds/internal/osutil"
)

// ExitCode returns the process exit code for err. Errors created with
// cli.Exit carry their own code.
func ExitCode(err error) int {
	if err == nil {
		return int(osutil.ExitOK)
	}

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return int(osutil.ExitError)
}

// Error prints err to w.
func Error(w io.Writer, err error) {
	pterm.Error.WithWriter(w).Println(err)
}

// Exit prints err to stderr and exits with its exit code.
func Exit(err error) {
	Error(os.Stderr, err)
	os.Exit(ExitCode(err))
}
