// Package store connects to the data store and manages the run history
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/rounds/internal/models"
	"github.com/ayoisaiah/rounds/internal/timeutil"
)

const runBucket = "runs"

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// SaveRun stores a run keyed by its start time, overwriting any run with the
// same start time.
func (c *Client) SaveRun(run *models.Run) error {
	value, err := json.Marshal(run)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(runBucket)).Put(timeutil.ToKey(run.StartTime), value)
	})
}

// GetRuns returns the runs started within [since, until], oldest first. A
// zero since matches from the first recorded run.
func (c *Client) GetRuns(since, until time.Time) ([]models.Run, error) {
	var runs []models.Run

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(runBucket)).Cursor()

		maxKey := timeutil.ToKey(until)

		var k, v []byte
		if since.IsZero() {
			k, v = cur.First()
		} else {
			k, v = cur.Seek(timeutil.ToKey(since))
		}

		for ; k != nil && bytes.Compare(k, maxKey) <= 0; k, v = cur.Next() {
			var run models.Run

			if err := json.Unmarshal(v, &run); err != nil {
				return err
			}

			runs = append(runs, run)
		}

		return nil
	})

	return runs, err
}

// DeleteRuns removes the specified runs.
func (c *Client) DeleteRuns(runs []models.Run) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(runBucket))

		for i := range runs {
			err := b.Delete(timeutil.ToKey(runs[i].StartTime))
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// DeleteAllRuns empties the history.
func (c *Client) DeleteAllRuns() error {
	return c.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(runBucket)); err != nil {
			return err
		}

		_, err := tx.CreateBucket([]byte(runBucket))

		return err
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(runBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{db}, nil
}

// Locked reports whether another process holds the database at dbPath. A
// missing database is not locked.
func Locked(dbPath string) (bool, error) {
	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{
		Timeout:  100 * time.Millisecond,
		ReadOnly: true,
	})
	if err == nil {
		return false, db.Close()
	}

	if errors.Is(err, bolt.ErrTimeout) {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, err
}
