package timer

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/rounds/internal/engine"
	"github.com/ayoisaiah/rounds/internal/testutil"
	"github.com/ayoisaiah/rounds/store"
)

type statusCase struct {
	Name       string
	GoldenFile string
	Events     []engine.Event
}

func (tc statusCase) Output() ([]byte, string) {
	s := engine.NewState()
	s, _ = engine.Transition(s, engine.SetIntervalText{Text: "45"})
	s, _ = engine.Transition(s, engine.SetRoundsText{Text: "8"})

	for _, ev := range tc.Events {
		s, _ = engine.Transition(s, ev)
	}

	return []byte(FormatStatus(&Status{Snapshot: s.Snapshot()}) + "\n"), tc.GoldenFile
}

func TestFormatStatus(t *testing.T) {
	cases := []statusCase{
		{
			Name:       "stopped",
			GoldenFile: "status_stopped",
		},
		{
			Name:       "running in the third round",
			GoldenFile: "status_running",
			Events:     append([]engine.Event{engine.Start{}}, ticks(100)...),
		},
		{
			Name:       "paused",
			GoldenFile: "status_paused",
			Events:     append(append([]engine.Event{engine.Start{}}, ticks(5)...), engine.Pause{}),
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			testutil.CompareGoldenFile(t, tc)
		})
	}
}

func TestReportStatus(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "rounds.db")
	statusPath := filepath.Join(dir, "status.json")

	var out bytes.Buffer

	// no timer has ever run
	assert.NoError(t, ReportStatus(&out, dbPath, statusPath))
	assert.Empty(t, out.String())

	db, err := store.NewClient(dbPath)
	if err != nil {
		t.Fatal(err)
	}

	// running, but no status written yet
	assert.NoError(t, ReportStatus(&out, dbPath, statusPath))
	assert.Empty(t, out.String())

	s := engine.NewState()
	s, _ = engine.Transition(s, engine.Start{})
	s, _ = engine.Transition(s, engine.Tick{})

	err = writeStatusFile(statusPath, Status{Snapshot: s.Snapshot(), UpdatedAt: time.Now()})
	if err != nil {
		t.Fatal(err)
	}

	assert.NoError(t, ReportStatus(&out, dbPath, statusPath))
	assert.Equal(t, "[Running 1/20] 00:59 (19:59 left)\n", out.String())

	assert.NoError(t, db.Close())

	// a stale status file left behind is ignored
	out.Reset()
	assert.NoError(t, ReportStatus(&out, dbPath, statusPath))
	assert.Empty(t, out.String())
}
