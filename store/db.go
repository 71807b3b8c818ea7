package store

import (
	"time"

	"github.com/ayoisaiah/rounds/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// SaveRun records a finished run. A run with the same start time is
	// overwritten
	SaveRun(run *models.Run) error
	// GetRuns returns the runs started within the specified period
	GetRuns(since, until time.Time) ([]models.Run, error)
	// DeleteRuns deletes one or more recorded runs
	DeleteRuns(runs []models.Run) error
	// DeleteAllRuns empties the run history
	DeleteAllRuns() error
	// Close ends the database connection
	Close() error
}
