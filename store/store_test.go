package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/rounds/internal/models"
)

func newTestClient(t *testing.T) (*Client, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rounds.db")

	c, err := NewClient(path)
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c, path
}

func testRuns() []models.Run {
	base := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

	return []models.Run{
		{
			StartTime:    base,
			EndTime:      base.Add(20 * time.Minute),
			IntervalSecs: 60,
			NumRounds:    20,
			ElapsedSecs:  1200,
			RoundReached: 20,
			Completed:    true,
		},
		{
			StartTime:    base.Add(2 * time.Hour),
			EndTime:      base.Add(2*time.Hour + 3*time.Minute),
			IntervalSecs: 30,
			NumRounds:    10,
			ElapsedSecs:  150,
			RoundReached: 6,
		},
		{
			StartTime:    base.Add(26 * time.Hour),
			EndTime:      base.Add(26*time.Hour + 100*time.Second),
			IntervalSecs: 10,
			NumRounds:    10,
			ElapsedSecs:  100,
			RoundReached: 10,
			Completed:    true,
		},
	}
}

func seed(t *testing.T, c *Client) []models.Run {
	t.Helper()

	runs := testRuns()

	// insert out of order to exercise key ordering
	for _, i := range []int{2, 0, 1} {
		if err := c.SaveRun(&runs[i]); err != nil {
			t.Fatal(err)
		}
	}

	return runs
}

func TestGetRuns(t *testing.T) {
	c, _ := newTestClient(t)
	runs := seed(t, c)

	far := time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name         string
		since, until time.Time
		want         []models.Run
	}{
		{"all", time.Time{}, far, runs},
		{"first day", time.Time{}, runs[1].StartTime, runs[:2]},
		{"since second", runs[1].StartTime, far, runs[1:]},
		{"window", runs[0].StartTime.Add(time.Minute), runs[2].StartTime.Add(-time.Minute), runs[1:2]},
		{"nothing", far, far.Add(time.Hour), nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.GetRuns(tc.since, tc.until)
			if err != nil {
				t.Fatal(err)
			}

			if !assert.Len(t, got, len(tc.want)) {
				return
			}

			for i := range got {
				assert.True(t, tc.want[i].StartTime.Equal(got[i].StartTime))
				assert.Equal(t, tc.want[i].ElapsedSecs, got[i].ElapsedSecs)
				assert.Equal(t, tc.want[i].Completed, got[i].Completed)
			}
		})
	}
}

func TestSaveRunLocalTime(t *testing.T) {
	c, _ := newTestClient(t)

	zone := time.FixedZone("UTC-5", -5*60*60)
	start := time.Date(2024, time.March, 10, 4, 0, 0, 0, zone) // 09:00 UTC

	run := models.Run{StartTime: start, IntervalSecs: 5, NumRounds: 2}
	if err := c.SaveRun(&run); err != nil {
		t.Fatal(err)
	}

	got, err := c.GetRuns(
		time.Date(2024, time.March, 10, 8, 59, 0, 0, time.UTC),
		time.Date(2024, time.March, 10, 9, 1, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatal(err)
	}

	assert.Len(t, got, 1)
}

func TestDeleteRuns(t *testing.T) {
	c, _ := newTestClient(t)
	runs := seed(t, c)

	err := c.DeleteRuns(runs[:1])
	assert.NoError(t, err)

	got, err := c.GetRuns(time.Time{}, time.Now())
	assert.NoError(t, err)
	assert.Len(t, got, 2)

	assert.NoError(t, c.DeleteAllRuns())

	got, err = c.GetRuns(time.Time{}, time.Now())
	assert.NoError(t, err)
	assert.Empty(t, got)

	// the bucket is usable after being emptied
	assert.NoError(t, c.SaveRun(&runs[0]))
}

func TestLocked(t *testing.T) {
	c, path := newTestClient(t)

	locked, err := Locked(path)
	assert.NoError(t, err)
	assert.True(t, locked)

	_, err = NewClient(path)
	assert.True(t, errors.Is(err, errAlreadyRunning))

	assert.NoError(t, c.Close())

	locked, err = Locked(path)
	assert.NoError(t, err)
	assert.False(t, locked)

	locked, err = Locked(filepath.Join(t.TempDir(), "missing.db"))
	assert.NoError(t, err)
	assert.False(t, locked)
}
