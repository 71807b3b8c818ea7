package timer

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestHeadless(t *testing.T, interval, rounds int) (*headless, *bytes.Buffer, *memDB, *countingChimer) {
	t.Helper()

	var out bytes.Buffer

	db := &memDB{}
	chimer := &countingChimer{}

	h := newHeadless(testConfig(interval, rounds), db, chimer, &out)
	h.session.now = fixedClock(t)
	h.tick = time.Millisecond

	return h, &out, db, chimer
}

func runWithTimeout(t *testing.T, h *headless, in io.Reader, autoStart bool) error {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return h.run(ctx, in, autoStart)
}

func TestHeadlessCompletesRun(t *testing.T) {
	h, out, db, chimer := newTestHeadless(t, 60, 20)

	script := "interval 1\nrounds 3\nstart\n"

	err := runWithTimeout(t, h, strings.NewReader(script), false)
	assert.NoError(t, err)

	want := strings.Join([]string{
		"[Ready] 20 rounds of 01:00 (total 20:00)",
		"interval set to 1",
		"rounds set to 3",
		"[Running] round 1/3, 00:01 per round (total 00:03)",
		"[Round] 2/3",
		"[Round] 3/3",
		"[Completed] 3 rounds in 00:03",
	}, "\n") + "\n"

	assert.Equal(t, want, out.String())
	assert.Equal(t, 3, chimer.Count())

	if assert.Len(t, db.runs, 1) {
		assert.True(t, db.runs[0].Completed)
		assert.Equal(t, uint64(3), db.runs[0].ElapsedSecs)
	}
}

func TestHeadlessAutoStart(t *testing.T) {
	h, out, _, _ := newTestHeadless(t, 1, 2)

	err := runWithTimeout(t, h, strings.NewReader(""), true)
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "[Completed] 2 rounds in 00:02")
}

func TestHeadlessRejectsBadInput(t *testing.T) {
	h, out, _, _ := newTestHeadless(t, 60, 20)

	script := "interval abc\nbogus\n\nrounds 0\n"

	err := runWithTimeout(t, h, strings.NewReader(script), false)
	assert.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, `interval "abc" is not a positive number, keeping 60`)
	assert.Contains(t, s, `unknown command "bogus"`)
	assert.Contains(t, s, `rounds "0" is not a positive number, keeping 20`)
	assert.NotContains(t, s, "empty command")
	assert.NotContains(t, s, "[Running]")
}

func TestHeadlessQuitDuringRun(t *testing.T) {
	h, out, _, _ := newTestHeadless(t, 3600, 2)

	err := runWithTimeout(t, h, strings.NewReader("start\nQUIT\n"), false)
	assert.ErrorIs(t, err, ErrRunIncomplete)
	assert.Contains(t, out.String(), "[Stopped] after ")
}

func TestHeadlessContextCancelled(t *testing.T) {
	h, out, _, _ := newTestHeadless(t, 3600, 2)

	// input that never ends
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := h.run(ctx, r, true)
	assert.ErrorIs(t, err, ErrRunIncomplete)
	assert.Contains(t, out.String(), "[Running] round 1/2")
}

func TestHeadlessPauseAndResume(t *testing.T) {
	h, out, _, _ := newTestHeadless(t, 3600, 2)

	err := runWithTimeout(t, h, strings.NewReader("start\npause\npause\nresume\nstop\n"), false)
	assert.NoError(t, err)

	s := out.String()
	assert.Equal(t, 1, strings.Count(s, "[Paused] round 1/2"))
	assert.Contains(t, s, "[Running] round 1/2")
	assert.Contains(t, s, "[Stopped] after ")
}
