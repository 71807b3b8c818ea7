package timer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/rounds/internal/engine"
)

type call struct {
	name string
	args []string
	env  []string
}

type sessionFixture struct {
	session  *session
	db       *memDB
	engine   *engine.Engine
	notified []string
	calls    []call
}

func newSessionFixture(t *testing.T, interval, rounds int) *sessionFixture {
	t.Helper()

	f := &sessionFixture{db: &memDB{}}

	opts := testConfig(interval, rounds)
	opts.Notifications.Enabled = true
	opts.Settings.Cmd = `say "all done"`

	f.session = newSession(opts, f.db, nil, filepath.Join(t.TempDir(), "status.json"))
	f.session.now = fixedClock(t)
	f.session.notify = func(title, msg string) error {
		f.notified = append(f.notified, title+": "+msg)
		return nil
	}
	f.session.exec = func(name string, args, env []string) error {
		f.calls = append(f.calls, call{name, args, env})
		return nil
	}

	f.engine = engine.New(nil)
	f.dispatch(engine.SetIntervalText{Text: opts.IntervalText()})
	f.dispatch(engine.SetRoundsText{Text: opts.RoundsText()})

	return f
}

func (f *sessionFixture) dispatch(evs ...engine.Event) {
	for _, ev := range evs {
		prev := f.engine.State()
		next := f.engine.Dispatch(ev)
		f.session.observe(prev, next, ev)
	}
}

func ticks(n int) []engine.Event {
	evs := make([]engine.Event, n)
	for i := range evs {
		evs[i] = engine.Tick{}
	}

	return evs
}

func TestSessionCompletedRun(t *testing.T) {
	f := newSessionFixture(t, 2, 3)

	f.dispatch(engine.Start{})
	f.dispatch(ticks(6)...)
	f.session.close()

	if !assert.Len(t, f.db.runs, 1) {
		return
	}

	run := f.db.runs[0]
	assert.True(t, run.Completed)
	assert.Equal(t, uint64(6), run.ElapsedSecs)
	assert.Equal(t, uint64(3), run.RoundReached)
	assert.Equal(t, uint64(2), run.IntervalSecs)
	assert.Equal(t, uint64(3), run.NumRounds)
	assert.True(t, run.EndTime.After(run.StartTime))

	assert.Equal(t, []string{"Workout complete: 3 rounds of 00:02 done in 00:06"}, f.notified)

	if assert.Len(t, f.calls, 1) {
		assert.Equal(t, "say", f.calls[0].name)
		assert.Equal(t, []string{"all done"}, f.calls[0].args)
		assert.Contains(t, f.calls[0].env, "ROUNDS_ELAPSED_SECS=6")
	}
}

func TestSessionAbandonedRun(t *testing.T) {
	f := newSessionFixture(t, 10, 3)

	f.dispatch(engine.Start{})
	f.dispatch(ticks(13)...)
	f.dispatch(engine.Pause{}, engine.Stop{})
	f.session.close()

	if !assert.Len(t, f.db.runs, 1) {
		return
	}

	run := f.db.runs[0]
	assert.False(t, run.Completed)
	assert.Equal(t, uint64(13), run.ElapsedSecs)
	assert.Equal(t, uint64(2), run.RoundReached)

	assert.Empty(t, f.notified)
	assert.Empty(t, f.calls)
}

func TestSessionRestartRecordsPreviousRun(t *testing.T) {
	f := newSessionFixture(t, 10, 3)

	f.dispatch(engine.Start{})
	f.dispatch(ticks(4)...)
	f.dispatch(engine.Start{})
	f.dispatch(ticks(30)...)
	f.session.close()

	if !assert.Len(t, f.db.runs, 2) {
		return
	}

	assert.False(t, f.db.runs[0].Completed)
	assert.Equal(t, uint64(4), f.db.runs[0].ElapsedSecs)
	assert.True(t, f.db.runs[1].Completed)
	assert.True(t, f.db.runs[1].StartTime.After(f.db.runs[0].StartTime))
}

func TestSessionSkipsEmptyRuns(t *testing.T) {
	f := newSessionFixture(t, 10, 3)

	f.dispatch(engine.Start{}, engine.Stop{})
	f.session.close()

	assert.Empty(t, f.db.runs)
}

func TestSessionHistoryDisabled(t *testing.T) {
	f := newSessionFixture(t, 1, 2)
	f.session.opts.Settings.History = false
	f.session.opts.Notifications.Enabled = false

	f.dispatch(engine.Start{})
	f.dispatch(ticks(2)...)
	f.session.close()

	assert.Empty(t, f.db.runs)
	assert.Empty(t, f.notified)
	// the command still runs
	assert.Len(t, f.calls, 1)
}

func TestSessionHookFailuresAreIgnored(t *testing.T) {
	f := newSessionFixture(t, 1, 1)
	f.session.notify = func(_, _ string) error { return errors.New("no dbus") }
	f.session.exec = func(_ string, _, _ []string) error { return errors.New("exit status 1") }

	f.dispatch(engine.Start{}, engine.Tick{})
	f.session.close()

	assert.Len(t, f.db.runs, 1)
}

func TestSessionInvalidCmd(t *testing.T) {
	f := newSessionFixture(t, 1, 1)
	f.session.opts.Settings.Cmd = `say "unterminated`

	f.dispatch(engine.Start{}, engine.Tick{})
	f.session.close()

	assert.Empty(t, f.calls)
}

func TestSessionStatusFile(t *testing.T) {
	f := newSessionFixture(t, 10, 3)

	f.dispatch(engine.Start{})
	f.dispatch(ticks(12)...)

	s, err := readStatusFile(f.session.statusPath)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "Running", s.Phase)
	assert.Equal(t, uint64(12), s.ElapsedSecs)
	assert.Equal(t, uint64(2), s.RoundNumber)
	assert.Equal(t, uint64(8), s.RoundRemainingSecs)
	assert.False(t, s.UpdatedAt.IsZero())

	f.session.close()

	_, err = os.Stat(f.session.statusPath)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
