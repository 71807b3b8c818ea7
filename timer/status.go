package timer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ayoisaiah/rounds/internal/engine"
	"github.com/ayoisaiah/rounds/internal/osutil"
	"github.com/ayoisaiah/rounds/internal/timeutil"
	"github.com/ayoisaiah/rounds/store"
)

// Status is written to the status file whenever the timer state changes so
// that other processes can report on a running timer.
type Status struct {
	engine.Snapshot
	UpdatedAt time.Time `json:"updated_at"`
}

func writeStatusFile(path string, s Status) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, b, osutil.FilePermission); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

func readStatusFile(path string) (*Status, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Status

	if err := json.Unmarshal(b, &s); err != nil {
		return nil, errCorruptStatus.Wrap(err)
	}

	return &s, nil
}

// FormatStatus renders a one-line summary of s.
func FormatStatus(s *Status) string {
	rounds := fmt.Sprintf("%d/%d", s.RoundNumber, s.NumRounds)

	switch s.Phase {
	case engine.Running.String(), engine.Paused.String():
		return fmt.Sprintf(
			"[%s %s] %s (%s left)",
			s.Phase,
			rounds,
			timeutil.FormatClock(s.RoundRemainingSecs),
			timeutil.FormatClock(s.RemainingTotalSecs),
		)
	default:
		return fmt.Sprintf(
			"[%s] %d x %s",
			s.Phase,
			s.NumRounds,
			timeutil.FormatClock(s.IntervalSecs),
		)
	}
}

// ReportStatus prints the status of a timer running in another process.
// Nothing is printed when no timer is running.
func ReportStatus(w io.Writer, dbPath, statusPath string) error {
	running, err := store.Locked(dbPath)
	if err != nil {
		return err
	}

	if !running {
		return nil
	}

	s, err := readStatusFile(statusPath)
	if err != nil {
		// the timer may not have written its first status yet
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return err
	}

	_, err = fmt.Fprintln(w, FormatStatus(s))

	return err
}
